// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"sort"
	"unicode"

	"github.com/dlclark/regexp2"
	"github.com/gardener/slackmarkdown/pkg/mrkdwn/sanitize"
)

// delimited content: no whitespace next to either delimiter, backslash
// escapes are skipped over
const delimitedContent = `(\S(?:\\[\s\S]|[^\\])*?\S|\S)`

// styleRule matches a span enclosed in a single character delimiter and
// renders its recursively parsed content inside tag
type styleRule struct {
	re    *regexp2.Regexp
	delim rune
	// follows reports whether r may come right after a closing delimiter
	follows func(r rune) bool
	tag     string
}

func newEmRule() *styleRule {
	// the trailing lookahead is a word boundary after the closing
	// underscore, it keeps some_snake_case literal
	return &styleRule{
		re:    compile(`^_`+delimitedContent+`_(?!_)(?![0-9A-Za-z_])`, regexp2.None),
		delim: '_',
		follows: func(r rune) bool {
			return !isWordRune(r)
		},
		tag: "em",
	}
}

func newStrongRule() *styleRule {
	return &styleRule{
		re:    compile(`^\*`+delimitedContent+`\*(?!\*)`, regexp2.None),
		delim: '*',
		follows: func(r rune) bool {
			return r != '*'
		},
		tag: "strong",
	}
}

func newStrikeRule() *styleRule {
	return &styleRule{
		re:    compile(`^~`+delimitedContent+`~(?!~)`, regexp2.None),
		delim: '~',
		follows: func(r rune) bool {
			return r != '~'
		},
		tag: "del",
	}
}

// Match runs the pattern only when a closing delimiter exists. Without
// one, at most a single rune can be enclosed.
func (r *styleRule) Match(source []rune, state *State, _ []rune) Capture {
	if !state.Inline || len(source) < 3 || source[0] != r.delim || unicode.IsSpace(source[1]) {
		return Capture{}
	}
	x, q := state.lookup(source)
	if x.closing(r.delim, r.closes) >= q+3 || r.closesAfterBackslashes(source) {
		return exec(r.re, source)
	}
	if r.closes(source, 2) {
		return Capture{Groups: []string{string(source[:3]), string(source[1:2])}, Length: 3}
	}
	return Capture{}
}

// closes reports whether the delimiter at k can close a span
func (r *styleRule) closes(src []rune, k int) bool {
	return src[k] == r.delim && (k+1 == len(src) || r.follows(src[k+1]))
}

// closesAfterBackslashes handles content opening with an odd run of
// backslashes, whose parity differs from the one seen by closing
func (r *styleRule) closesAfterBackslashes(source []rune) bool {
	if source[1] != '\\' {
		return false
	}
	e := 1
	for e < len(source) && source[e] == '\\' {
		e++
	}
	return (e-1)%2 == 1 && e+1 < len(source) && !unicode.IsSpace(source[e]) && r.closes(source, e+1)
}

func (r *styleRule) Parse(c Capture, parse ParseFunc, state *State) *Node {
	return &Node{Content: parse(c.Group(1), state)}
}

func (r *styleRule) Render(n *Node, output OutputFunc, state *State) string {
	return htmlTag(r.tag, output(n.Content, state), state)
}

var inlineCodePaddingRe = compile("^ (?= *`)|(` *) \\z", regexp2.None)

// inlineCodeRule matches text enclosed in runs of backticks of equal
// length. An opening run may be shortened to find a closing one.
type inlineCodeRule struct{}

func newInlineCodeRule() *inlineCodeRule {
	return &inlineCodeRule{}
}

func (r *inlineCodeRule) Match(source []rune, state *State, _ []rune) Capture {
	if !state.Inline || len(source) == 0 || source[0] != '`' {
		return Capture{}
	}
	x, q := state.lookup(source)
	runs := x.backticks()
	open := runs.end[q] - q
	// the longest opening with a closing run of the same length wins
	for i := sort.SearchInts(runs.lengths, open+1) - 1; i >= 0; i-- {
		n := runs.lengths[i]
		s := runs.closingRun(n, q+open+1)
		if s < 0 {
			continue
		}
		end := s - q + n
		return Capture{
			Groups: []string{string(source[:end]), string(source[:n]), string(source[n : s-q])},
			Length: end,
		}
	}
	return Capture{}
}

func (r *inlineCodeRule) Parse(c Capture, _ ParseFunc, _ *State) *Node {
	return &Node{Text: replaceAll(inlineCodePaddingRe, c.Group(2), "$1")}
}

func (r *inlineCodeRule) Render(n *Node, _ OutputFunc, state *State) string {
	return htmlTag("code", sanitize.EscapeHTML(n.Text), state)
}
