// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config holds the conversion settings read from the configuration
// file. Unset fields keep the command defaults and explicitly set
// flags take precedence.
type Config struct {
	EscapeHTML           *bool             `yaml:"escapeHTML,omitempty"`
	SlackOnly            *bool             `yaml:"slackOnly,omitempty"`
	NoExtraSpanTags      *bool             `yaml:"noExtraSpanTags,omitempty"`
	NoExtraEmojiSpanTags *bool             `yaml:"noExtraEmojiSpanTags,omitempty"`
	Sanitize             *bool             `yaml:"sanitize,omitempty"`
	Workers              *int              `yaml:"workers,omitempty"`
	Extensions           []string          `yaml:"extensions,omitempty"`
	CSSModuleNames       map[string]string `yaml:"cssModuleNames,omitempty"`
	// Templates are Go templates rendering mentions keyed by kind:
	// user, channel, usergroup, athere, atchannel, ateveryone and date
	Templates map[string]string `yaml:"templates,omitempty"`
}
