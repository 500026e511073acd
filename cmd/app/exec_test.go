// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gardener/slackmarkdown/cmd/configuration"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"k8s.io/utils/pointer"
)

type fakeLoader struct {
	config *configuration.Config
	err    error
}

func (f *fakeLoader) Load() (*configuration.Config, error) {
	return f.config, f.err
}

var _ = Describe("Exec", func() {
	var (
		ctx    context.Context
		flags  []string
		args   []string
		input  string
		loader *fakeLoader
		out    bytes.Buffer
		err    error
	)
	BeforeEach(func() {
		ctx = context.Background()
		flags = nil
		args = nil
		input = ""
		loader = &fakeLoader{config: &configuration.Config{}}
		out.Reset()
	})
	JustBeforeEach(func() {
		vip := newViper()
		cmd := &cobra.Command{}
		configureFlags(cmd, vip)
		Expect(cmd.ParseFlags(flags)).To(Succeed())
		err = exec(ctx, vip, loader, args, strings.NewReader(input), &out)
	})

	When("no files are given", func() {
		BeforeEach(func() {
			input = "*hi* <b>"
		})
		It("converts the standard input", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("<strong>hi</strong> &lt;b&gt;"))
		})
	})
	When("the configuration disables escaping and sanitizing", func() {
		BeforeEach(func() {
			input = "<b>x</b>"
			loader.config = &configuration.Config{
				EscapeHTML: pointer.BoolPtr(false),
				Sanitize:   pointer.BoolPtr(false),
			}
		})
		It("keeps the HTML", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("<b>x</b>"))
		})
		Context("a flag enables escaping", func() {
			BeforeEach(func() {
				flags = []string{"--escape-html=true"}
			})
			It("takes precedence over the configuration", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(Equal("&lt;b&gt;x&lt;/b&gt;"))
			})
		})
	})
	When("escaping is disabled", func() {
		BeforeEach(func() {
			input = "<script>alert(1)</script>*a*"
			flags = []string{"--escape-html=false"}
		})
		It("sanitizes the output", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("<strong>a</strong>"))
		})
	})
	When("the environment sets an option", func() {
		BeforeEach(func() {
			input = "*a* <!here>"
			Expect(os.Setenv("SLACKMARKDOWN_SLACK_ONLY", "true")).To(Succeed())
			Expect(os.Setenv("SLACKMARKDOWN_NO_EXTRA_SPAN_TAGS", "true")).To(Succeed())
		})
		AfterEach(func() {
			Expect(os.Unsetenv("SLACKMARKDOWN_SLACK_ONLY")).To(Succeed())
			Expect(os.Unsetenv("SLACKMARKDOWN_NO_EXTRA_SPAN_TAGS")).To(Succeed())
		})
		It("applies it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("*a* @here"))
		})
	})
	When("mention templates are configured", func() {
		BeforeEach(func() {
			input = "<@U1|bob> <!date^1^{date}|today>"
			loader.config = &configuration.Config{
				Templates: map[string]string{
					"user": `<a href="/team/{{ .ID | html }}">{{ .Name }}</a>`,
					"date": `<time>{{ .Fallback }}</time>`,
				},
			}
		})
		It("renders mentions with the templates", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal(`<span class="s-mention s-user"><a href="/team/U1">bob</a></span> <span class="s-mention s-date"><time>today</time></span>`))
		})
	})
	When("a template kind is unknown", func() {
		BeforeEach(func() {
			loader.config = &configuration.Config{Templates: map[string]string{"bot": "x"}}
		})
		It("fails", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown template kind bot"))
		})
	})
	When("css module names are set", func() {
		BeforeEach(func() {
			input = "<#C1|general>"
			flags = []string{"--css-module-names=s-channel=ch_1"}
		})
		It("remaps the class names", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal(`<span class="s-mention ch_1">#general</span>`))
		})
	})
	When("loading the configuration fails", func() {
		BeforeEach(func() {
			loader.err = errors.New("broken config")
		})
		It("fails", func() {
			Expect(err).To(MatchError("broken config"))
		})
	})

	When("files are given", func() {
		var dir, dest string
		BeforeEach(func() {
			dir = filepath.Join(os.TempDir(), "test"+uuid.New().String())
			dest = filepath.Join(dir, "out")
			Expect(os.MkdirAll(filepath.Join(dir, "in", "random"), os.ModePerm)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "in", "general.mrkdwn"), []byte("_hello_"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "in", "random", "2020.slack"), []byte("~bye~"), 0644)).To(Succeed())
			args = []string{filepath.Join(dir, "in")}
			flags = []string{"--destination", dest, "--workers", "2"}
		})
		AfterEach(func() {
			Expect(os.RemoveAll(dir)).To(Succeed())
		})
		It("converts them into the destination", func() {
			Expect(err).NotTo(HaveOccurred())
			b, err := os.ReadFile(filepath.Join(dest, "general.html"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(Equal("<em>hello</em>"))
			b, err = os.ReadFile(filepath.Join(dest, "random", "2020.html"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(Equal("<del>bye</del>"))
		})
		Context("in dry run mode", func() {
			BeforeEach(func() {
				flags = append(flags, "--dry-run")
			})
			It("reports the files without writing them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(ContainSubstring("general.html (14 bytes)"))
				Expect(out.String()).To(ContainSubstring("2020.html (14 bytes)"))
				_, statErr := os.Stat(dest)
				Expect(os.IsNotExist(statErr)).To(BeTrue())
			})
		})
		Context("destination is missing", func() {
			BeforeEach(func() {
				flags = nil
			})
			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring("destination is required")))
			})
		})
	})
})
