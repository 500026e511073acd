// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"github.com/dlclark/regexp2"
	"github.com/gardener/slackmarkdown/pkg/mrkdwn/sanitize"
)

// linkSchemes are the URL schemes recognized in links
const linkSchemes = `(?:(?:(?:ht|f)tps?|ssh|irc)://|mailto:|tel:)`

// autolinkRule matches <url> and <url|label>
type autolinkRule struct {
	match matcher
}

func newAutolinkRule() *autolinkRule {
	return &autolinkRule{
		match: tokenRegex(`^<(`+linkSchemes+`[^|>]+)(\|([^>]*))?>`, true),
	}
}

func (r *autolinkRule) Match(source []rune, state *State, prev []rune) Capture {
	return r.match(source, state, prev)
}

func (r *autolinkRule) Parse(c Capture, parse ParseFunc, state *State) *Node {
	target := c.Group(1)
	n := &Node{Target: target}
	if label := c.Group(3); label != "" {
		n.Content = parse(label, state)
	} else {
		n.Content = []*Node{{Type: "text", Text: target}}
	}
	return n
}

func (r *autolinkRule) Render(n *Node, output OutputFunc, state *State) string {
	return renderLink(n, output, state)
}

// urlRule matches bare URLs in text. The URL becomes the literal link
// text and is not parsed for markup.
type urlRule struct {
	match matcher
}

func newURLRule() *urlRule {
	return &urlRule{
		match: inlineRegex(`^(`+linkSchemes+`[^\s<]+[^<.,:;"')\]\s])`, regexp2.None),
	}
}

func (r *urlRule) Match(source []rune, state *State, prev []rune) Capture {
	return r.match(source, state, prev)
}

func (r *urlRule) Parse(c Capture, _ ParseFunc, _ *State) *Node {
	target := c.Group(1)
	return &Node{
		Target:  target,
		Content: []*Node{{Type: "text", Text: target}},
	}
}

func (r *urlRule) Render(n *Node, output OutputFunc, state *State) string {
	return renderLink(n, output, state)
}

func renderLink(n *Node, output OutputFunc, state *State) string {
	return htmlTag("a", output(n.Content, state), state, attr{"href", sanitize.URL(n.Target)})
}
