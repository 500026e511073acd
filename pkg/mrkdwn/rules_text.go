// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"unicode"

	"github.com/dlclark/regexp2"
	"github.com/gardener/slackmarkdown/pkg/mrkdwn/sanitize"
)

// textRule consumes plain text up to the next character that may start
// another construct, a line break or a word followed by a colon and a
// non-space, which may be a URL scheme
type textRule struct{}

func newTextRule() *textRule {
	return &textRule{}
}

// Match always consumes at least one rune of non-empty source, text is
// the rule guaranteeing progress
func (r *textRule) Match(source []rune, state *State, _ []rune) Capture {
	if len(source) == 0 {
		return Capture{}
	}
	x, q := state.lookup(source)
	n := textLength(x, q)
	return Capture{Groups: []string{string(source[:n])}, Length: n}
}

// textLength returns the length of the text run at position q
func textLength(x *sourceIndex, q int) int {
	src := x.src
	for p := q + 1; p < len(src); p++ {
		c := src[p]
		if c == '\n' || !isTextRune(c) {
			return p - q
		}
		if !isWordRune(c) {
			continue
		}
		end := x.wordEnd(p)
		if end+1 < len(src) && src[end] == ':' && !unicode.IsSpace(src[end+1]) {
			return p - q
		}
	}
	return len(src) - q
}

// isTextRune reports whether r continues plain text
func isTextRune(r rune) bool {
	return isWordRune(r) && r != '_' || unicode.IsSpace(r) || r == '-' || r >= 0xc0 && r <= 0xffff
}

// isWordRune reports whether r is an ASCII letter, digit or underscore
func isWordRune(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r == '_'
}

func (r *textRule) Parse(c Capture, _ ParseFunc, _ *State) *Node {
	return &Node{Text: c.Group(0)}
}

func (r *textRule) Render(n *Node, _ OutputFunc, state *State) string {
	content := n.Text
	if state.Emoji != nil {
		content = state.Emoji.ReplaceAll(content)
	}
	if state.EscapeHTML {
		return sanitize.EscapeHTML(content)
	}
	return content
}

type emojiRule struct {
	match matcher
}

func newEmojiRule() *emojiRule {
	return &emojiRule{
		match: anyScopeRegex(`^:([a-zA-Z0-9_\-+]+):`, regexp2.None),
	}
}

func (r *emojiRule) Match(source []rune, state *State, prev []rune) Capture {
	return r.match(source, state, prev)
}

func (r *emojiRule) Parse(c Capture, _ ParseFunc, state *State) *Node {
	code := c.Group(1)
	if state.Emoji != nil {
		// Slack names some emoji without the _face suffix
		for _, name := range []string{code, code + "_face"} {
			if glyph, ok := state.Emoji.Lookup(name); ok {
				return &Node{Text: glyph, IsEmoji: true}
			}
		}
	}
	return &Node{Text: ":" + code + ":"}
}

func (r *emojiRule) Render(n *Node, _ OutputFunc, state *State) string {
	content := sanitize.EscapeHTML(n.Text)
	if !n.IsEmoji || state.NoExtraEmojiSpanTags {
		return content
	}
	return htmlTag("span", content, state, attr{"class", "s-emoji"})
}

// escapeRule keeps an escaped underscore literal so that it never opens
// emphasis. It produces text nodes.
type escapeRule struct {
	match matcher
}

func newEscapeRule() *escapeRule {
	return &escapeRule{
		match: anyScopeRegex(`^\\_`, regexp2.None),
	}
}

func (r *escapeRule) Match(source []rune, state *State, prev []rune) Capture {
	return r.match(source, state, prev)
}

func (r *escapeRule) Parse(_ Capture, _ ParseFunc, _ *State) *Node {
	return &Node{Type: "text", Text: `\_`}
}

// Render is only reached by nodes built outside Parse, parsed escapes
// are text nodes
func (r *escapeRule) Render(n *Node, output OutputFunc, state *State) string {
	return (&textRule{}).Render(n, output, state)
}

type newlineRule struct {
	match matcher
}

func newNewlineRule() *newlineRule {
	return &newlineRule{
		match: anyScopeRegex(`^\n`, regexp2.None),
	}
}

func (r *newlineRule) Match(source []rune, state *State, prev []rune) Capture {
	return r.match(source, state, prev)
}

func (r *newlineRule) Parse(_ Capture, _ ParseFunc, _ *State) *Node {
	return &Node{}
}

func (r *newlineRule) Render(_ *Node, _ OutputFunc, _ *State) string {
	return "<br>"
}
