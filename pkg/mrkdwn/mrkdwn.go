// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package mrkdwn converts Slack flavored markup into HTML. Conversion is
// driven by a table of rules, each one matching, parsing and rendering a
// single construct: emphasis, strong, strikethrough, code, block quotes,
// links, emoji and the Slack mention tokens.
package mrkdwn

import (
	"github.com/gardener/slackmarkdown/pkg/mrkdwn/emoji"
)

// Options control a conversion. The zero value of each field, except
// EscapeHTML, is the default.
type Options struct {
	// EscapeHTML escapes HTML in plain text segments. Nil means true.
	EscapeHTML *bool
	// SlackOnly restricts conversion to mentions, emoji and line breaks
	SlackOnly bool
	// Callbacks override the mention rendering per kind
	Callbacks Callbacks
	// CSSModuleNames remaps the generated CSS class names
	CSSModuleNames map[string]string
	// NoExtraSpanTags disables the span around mentions
	NoExtraSpanTags bool
	// NoExtraEmojiSpanTags disables the span around emoji
	NoExtraEmojiSpanTags bool
	// Emoji resolves emoji shortcodes. Nil means the default table.
	Emoji emoji.Table
}

// Converter converts markup with a fixed set of options. It is safe for
// concurrent use.
type Converter struct {
	table *Table
	opts  Options
}

// New creates a Converter for opts
func New(opts *Options) *Converter {
	c := &Converter{table: fullTable}
	if opts != nil {
		c.opts = *opts
	}
	if c.opts.SlackOnly {
		c.table = slackOnlyTable
	}
	if c.opts.Emoji == nil {
		c.opts.Emoji = emoji.Default()
	}
	c.opts.Callbacks = c.opts.Callbacks.merge(defaultCallbacks)
	return c
}

// ToHTML converts text into an HTML fragment
func (c *Converter) ToHTML(text string) string {
	state := c.newState()
	return c.table.Render(c.table.Parse(text, state), state)
}

func (c *Converter) newState() *State {
	escapeHTML := true
	if c.opts.EscapeHTML != nil {
		escapeHTML = *c.opts.EscapeHTML
	}
	cssModuleNames := c.opts.CSSModuleNames
	if cssModuleNames == nil {
		cssModuleNames = map[string]string{}
	}
	return &State{
		Inline:               true,
		InQuote:              false,
		EscapeHTML:           escapeHTML,
		CSSModuleNames:       cssModuleNames,
		Callbacks:            c.opts.Callbacks,
		NoExtraSpanTags:      c.opts.NoExtraSpanTags,
		NoExtraEmojiSpanTags: c.opts.NoExtraEmojiSpanTags,
		Emoji:                c.opts.Emoji,
	}
}

// ToHTML converts text into an HTML fragment using opts, nil for defaults
func ToHTML(text string, opts *Options) string {
	return New(opts).ToHTML(text)
}
