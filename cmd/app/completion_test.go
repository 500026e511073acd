// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
)

var _ = Describe("Completion", func() {
	var (
		root *cobra.Command
		out  bytes.Buffer
	)
	BeforeEach(func() {
		out.Reset()
		root = &cobra.Command{Use: "slackmarkdown"}
		root.AddCommand(newCompletionCmd())
		root.SetOut(&out)
	})
	It("documents every supported shell", func() {
		cmd, _, err := root.Find([]string{"completion"})
		Expect(err).NotTo(HaveOccurred())
		for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
			Expect(cmd.Long).To(ContainSubstring("slackmarkdown completion " + shell))
		}
	})
	It("writes the script for a shell", func() {
		root.SetArgs([]string{"completion", "bash"})
		Expect(root.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("slackmarkdown"))
	})
	It("rejects unknown shells", func() {
		root.SetArgs([]string{"completion", "tcsh"})
		root.SetErr(&bytes.Buffer{})
		Expect(root.Execute()).NotTo(Succeed())
	})
})
