// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import "github.com/gardener/slackmarkdown/pkg/mrkdwn/emoji"

// Rule is a grammar construct. Match recognizes the construct at the
// beginning of source, Parse turns the capture into a Node and Render
// emits the node as HTML.
type Rule interface {
	// Match returns the capture of the construct at the start of source,
	// the zero Capture if there is none. prev is the source consumed so far
	// by the current parse, or before any is consumed, the source preceding
	// the construct being parsed. Match must not modify state.
	Match(source []rune, state *State, prev []rune) Capture
	// Parse builds the node for a capture, calling parse for nested markup
	Parse(c Capture, parse ParseFunc, state *State) *Node
	// Render emits HTML for a node produced by Parse, calling output
	// for nested nodes
	Render(n *Node, output OutputFunc, state *State) string
}

// ParseFunc parses markup into a sequence of nodes
type ParseFunc func(source string, state *State) []*Node

// OutputFunc renders a sequence of nodes into HTML
type OutputFunc func(nodes []*Node, state *State) string

// Capture is a successful match. Groups holds the matched text
// followed by the submatches (empty when a group did not participate)
// and Length is the number of consumed runes.
type Capture struct {
	Groups []string
	Length int
}

// Group returns the i-th submatch or an empty string
func (c Capture) Group(i int) string {
	if i < len(c.Groups) {
		return c.Groups[i]
	}
	return ""
}

// Node is an element of the parse tree
type Node struct {
	// Type is the name of the rule rendering this node
	Type string
	// Text is the raw content of leaf nodes
	Text string
	// Content holds the nested nodes; nil when the node has no parsed content
	Content []*Node
	// ID is the identifier of user, channel and user group mentions
	ID string
	// Target is the link destination
	Target string
	// Timestamp, Format and Link are the date mention fields
	Timestamp string
	Format    string
	Link      string
	// IsEmoji is set when Text holds a resolved emoji glyph
	IsEmoji bool
	// InQuote records whether a code block was parsed inside a block quote
	InQuote bool
}

// State is the per-call parse and render state
type State struct {
	// Inline and InQuote are set transiently by the block quote rule
	// while parsing quoted content
	Inline  bool
	InQuote bool
	// EscapeHTML controls escaping of plain text segments
	EscapeHTML bool
	// CSSModuleNames remaps generated CSS class names
	CSSModuleNames map[string]string
	// Callbacks render mentions
	Callbacks Callbacks
	// NoExtraSpanTags suppresses the span around mentions
	NoExtraSpanTags bool
	// NoExtraEmojiSpanTags suppresses the span around emoji
	NoExtraEmojiSpanTags bool
	// Emoji resolves shortcodes
	Emoji emoji.Table

	// prev is the source preceding the construct whose content is parsed
	prev []rune
	// scan indexes the source of the innermost parse
	scan *sourceIndex
}

// MentionData is passed to user, channel, user group and at-* callbacks.
// Name holds the rendered label, empty when the mention has none.
type MentionData struct {
	ID   string
	Name string
}

// DateData is passed to the date callback. Link is empty when absent.
type DateData struct {
	Timestamp string
	Format    string
	Link      string
	Fallback  string
}

// MentionFunc renders a mention into the string substituted for it
type MentionFunc func(MentionData) string

// DateFunc renders a date token into the string substituted for it
type DateFunc func(DateData) string

// Callbacks holds one rendering function per mention kind. Nil fields
// fall back to the defaults.
type Callbacks struct {
	User       MentionFunc
	Channel    MentionFunc
	UserGroup  MentionFunc
	AtHere     MentionFunc
	AtChannel  MentionFunc
	AtEveryone MentionFunc
	Date       DateFunc
}
