// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

// options are the command settings resolved from flags, environment
// and configuration file
type options struct {
	DestinationPath      string            `mapstructure:"destination"`
	EscapeHTML           bool              `mapstructure:"escape-html"`
	Sanitize             bool              `mapstructure:"sanitize"`
	SlackOnly            bool              `mapstructure:"slack-only"`
	NoExtraSpanTags      bool              `mapstructure:"no-extra-span-tags"`
	NoExtraEmojiSpanTags bool              `mapstructure:"no-extra-emoji-span-tags"`
	CSSModuleNames       map[string]string `mapstructure:"css-module-names"`
	Templates            map[string]string `mapstructure:"templates"`
	Extensions           []string          `mapstructure:"extensions"`
	Workers              int               `mapstructure:"workers"`
	FailFast             bool              `mapstructure:"fail-fast"`
	DryRun               bool              `mapstructure:"dry-run"`
}
