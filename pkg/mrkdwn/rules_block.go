// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"github.com/dlclark/regexp2"
	"github.com/gardener/slackmarkdown/pkg/mrkdwn/sanitize"
)

// codeBlockRule matches text fenced by triple backticks. The content is
// kept verbatim and always escaped on output.
type codeBlockRule struct {
	re *regexp2.Regexp
}

func newCodeBlockRule() *codeBlockRule {
	return &codeBlockRule{
		re: compile("^```([\\s\\S]+?`*)\\n*```", regexp2.IgnoreCase),
	}
}

// Match runs the pattern only when a closing fence follows
func (r *codeBlockRule) Match(source []rune, state *State, _ []rune) Capture {
	if !state.Inline || len(source) < 7 || source[0] != '`' || source[1] != '`' || source[2] != '`' {
		return Capture{}
	}
	x, q := state.lookup(source)
	if x.lastFence() < q+4 {
		return Capture{}
	}
	return exec(r.re, source)
}

func (r *codeBlockRule) Parse(c Capture, _ ParseFunc, state *State) *Node {
	return &Node{
		Text:    c.Group(1),
		InQuote: state.InQuote,
	}
}

func (r *codeBlockRule) Render(n *Node, _ OutputFunc, state *State) string {
	return htmlTag("pre", htmlTag("code", sanitize.EscapeHTML(n.Text), state), state)
}

const quotedLine = ` *>(?: [^\n]*|(?=\n|\z))`

var quoteMarkerRe = compile(`^ *> ?`, regexp2.Multiline)

// blockQuoteRule matches consecutive quoted lines starting a line. Quotes
// do not nest.
type blockQuoteRule struct {
	re *regexp2.Regexp
}

func newBlockQuoteRule() *blockQuoteRule {
	return &blockQuoteRule{
		re: compile(`^(`+quotedLine+`(?:\n`+quotedLine+`)*\n?)`, regexp2.None),
	}
}

func (r *blockQuoteRule) Match(source []rune, state *State, prev []rune) Capture {
	if state.InQuote || !atLineStart(prev) {
		return Capture{}
	}
	return exec(r.re, source)
}

func (r *blockQuoteRule) Parse(c Capture, parse ParseFunc, state *State) *Node {
	content := replaceAll(quoteMarkerRe, c.Group(0), "")

	inQuote, inline := state.InQuote, state.Inline
	state.InQuote = true
	state.Inline = true
	defer func() {
		state.InQuote, state.Inline = inQuote, inline
	}()

	return &Node{Content: parse(content, state)}
}

func (r *blockQuoteRule) Render(n *Node, output OutputFunc, state *State) string {
	return htmlTag("blockquote", output(n.Content, state), state)
}

// atLineStart reports whether prev is empty or ends with a line break
// followed by spaces only
func atLineStart(prev []rune) bool {
	for i := len(prev) - 1; i >= 0; i-- {
		switch prev[i] {
		case ' ':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return len(prev) == 0
}
