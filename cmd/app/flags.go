// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("destination", "d", "",
		"Destination path for converted files. Required when converting files.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().Bool("escape-html", true,
		"Escape HTML in plain text segments. When disabled, the output is sanitized unless --sanitize=false.")
	_ = vip.BindPFlag("escape-html", command.Flags().Lookup("escape-html"))

	command.Flags().Bool("sanitize", true,
		"Sanitize the output with a user generated content policy when HTML escaping is disabled.")
	_ = vip.BindPFlag("sanitize", command.Flags().Lookup("sanitize"))

	command.Flags().Bool("slack-only", false,
		"Convert only mentions, emoji and line breaks.")
	_ = vip.BindPFlag("slack-only", command.Flags().Lookup("slack-only"))

	command.Flags().Bool("no-extra-span-tags", false,
		"Do not wrap mentions in span tags.")
	_ = vip.BindPFlag("no-extra-span-tags", command.Flags().Lookup("no-extra-span-tags"))

	command.Flags().Bool("no-extra-emoji-span-tags", false,
		"Do not wrap emoji in span tags.")
	_ = vip.BindPFlag("no-extra-emoji-span-tags", command.Flags().Lookup("no-extra-emoji-span-tags"))

	command.Flags().StringToString("css-module-names", map[string]string{},
		"Replacements for the generated CSS class names (example: s-mention=mention_1x2).")
	_ = vip.BindPFlag("css-module-names", command.Flags().Lookup("css-module-names"))

	command.Flags().StringToString("templates", map[string]string{},
		"Go templates rendering mentions per kind: user, channel, usergroup, athere, atchannel, ateveryone and date (example: user='@{{.Name}}').")
	_ = vip.BindPFlag("templates", command.Flags().Lookup("templates"))

	command.Flags().StringSlice("extensions", []string{".mrkdwn", ".slack", ".txt"},
		"Extensions of the files converted when walking directories.")
	_ = vip.BindPFlag("extensions", command.Flags().Lookup("extensions"))

	command.Flags().Int("workers", 25,
		"Number of parallel workers converting files.")
	_ = vip.BindPFlag("workers", command.Flags().Lookup("workers"))

	command.Flags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
	_ = vip.BindPFlag("fail-fast", command.Flags().Lookup("fail-fast"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file/folder hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))
}
