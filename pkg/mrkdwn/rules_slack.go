// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import "github.com/gardener/slackmarkdown/pkg/mrkdwn/sanitize"

// mentionRule matches a Slack mention token <sigil id|label> and renders
// it through the callback of its kind
type mentionRule struct {
	match matcher
	// idGroup is the capture group holding the identifier, 0 for kinds without one
	idGroup int
	// labelGroup is the capture group holding the optional label
	labelGroup int
	class      string
	callback   func(Callbacks) MentionFunc
}

func newUserRule() *mentionRule {
	return &mentionRule{
		match:      tokenRegex(`^<@([^|>]+)(\|([^>]*))?>`, false),
		idGroup:    1,
		labelGroup: 3,
		class:      "s-mention s-user",
		callback:   func(c Callbacks) MentionFunc { return c.User },
	}
}

func newChannelRule() *mentionRule {
	return &mentionRule{
		match:      tokenRegex(`^<#([^|>]+)(\|([^>]*))?>`, false),
		idGroup:    1,
		labelGroup: 3,
		class:      "s-mention s-channel",
		callback:   func(c Callbacks) MentionFunc { return c.Channel },
	}
}

func newUserGroupRule() *mentionRule {
	token := tokenRegex(`^<!subteam\^([^|>]+)(\|([^>]+))?>`, false)
	return &mentionRule{
		match: func(source []rune, state *State, prev []rune) Capture {
			if emptyLabel(source, state) {
				return Capture{}
			}
			return token(source, state, prev)
		},
		idGroup:    1,
		labelGroup: 3,
		class:      "s-mention s-usergroup",
		callback:   func(c Callbacks) MentionFunc { return c.UserGroup },
	}
}

// emptyLabel reports whether the token at the start of source has its
// first '|' right before the closing '>'
func emptyLabel(source []rune, state *State) bool {
	token := tokenWindow(source, state)
	if len(token) < 2 || token[len(token)-2] != '|' {
		return false
	}
	x, q := state.lookup(source)
	return x.nextOf('|', q) == q+len(token)-2
}

func newAtHereRule() *mentionRule {
	return &mentionRule{
		match:      tokenRegex(`^<!here(\|([^>]*))?>`, false),
		labelGroup: 2,
		class:      "s-mention s-at-here",
		callback:   func(c Callbacks) MentionFunc { return c.AtHere },
	}
}

func newAtChannelRule() *mentionRule {
	return &mentionRule{
		match:      tokenRegex(`^<!channel(\|([^>]*))?>`, false),
		labelGroup: 2,
		class:      "s-mention s-at-channel",
		callback:   func(c Callbacks) MentionFunc { return c.AtChannel },
	}
}

func newAtEveryoneRule() *mentionRule {
	return &mentionRule{
		match:      tokenRegex(`^<!everyone(\|([^>]*))?>`, false),
		labelGroup: 2,
		class:      "s-mention s-at-everyone",
		callback:   func(c Callbacks) MentionFunc { return c.AtEveryone },
	}
}

func (r *mentionRule) Match(source []rune, state *State, prev []rune) Capture {
	return r.match(source, state, prev)
}

func (r *mentionRule) Parse(c Capture, parse ParseFunc, state *State) *Node {
	n := &Node{}
	if r.idGroup > 0 {
		n.ID = c.Group(r.idGroup)
	}
	if label := c.Group(r.labelGroup); label != "" {
		n.Content = parse(label, state)
	}
	return n
}

func (r *mentionRule) Render(n *Node, output OutputFunc, state *State) string {
	data := MentionData{
		ID:   n.ID,
		Name: renderLabel(n, output, state),
	}
	cb := r.callback(state.Callbacks)
	if cb == nil {
		cb = r.callback(defaultCallbacks)
	}
	return slackTag(cb(data), r.class, state)
}

// dateRule matches <!date^timestamp^format^link|fallback>, the link
// being optional
type dateRule struct {
	match matcher
}

func newDateRule() *dateRule {
	return &dateRule{
		match: tokenRegex(`^<!date\^([^|>^]+)\^([^|>^]+)(\^([^|>^]+))?(\|([^>]*))?>`, false),
	}
}

func (r *dateRule) Match(source []rune, state *State, prev []rune) Capture {
	return r.match(source, state, prev)
}

func (r *dateRule) Parse(c Capture, parse ParseFunc, state *State) *Node {
	n := &Node{
		Timestamp: c.Group(1),
		Format:    c.Group(2),
		Link:      c.Group(4),
	}
	if label := c.Group(6); label != "" {
		n.Content = parse(label, state)
	}
	return n
}

func (r *dateRule) Render(n *Node, output OutputFunc, state *State) string {
	data := DateData{
		Timestamp: n.Timestamp,
		Format:    n.Format,
		Link:      n.Link,
		Fallback:  renderLabel(n, output, state),
	}
	cb := state.Callbacks.Date
	if cb == nil {
		cb = defaultCallbacks.Date
	}
	return slackTag(cb(data), "s-mention s-date", state)
}

func renderLabel(n *Node, output OutputFunc, state *State) string {
	if n.Content == nil {
		return ""
	}
	return output(n.Content, state)
}

var defaultCallbacks = Callbacks{
	User:       prefixed("@", ""),
	Channel:    prefixed("#", ""),
	UserGroup:  prefixed("^", ""),
	AtHere:     prefixed("@", "here"),
	AtChannel:  prefixed("@", "channel"),
	AtEveryone: prefixed("@", "everyone"),
	Date: func(d DateData) string {
		return d.Fallback
	},
}

// prefixed renders sigil followed by the label, the escaped ID or the
// keyword, whichever is set first
func prefixed(sigil, keyword string) MentionFunc {
	return func(m MentionData) string {
		switch {
		case m.Name != "":
			return sigil + m.Name
		case m.ID != "":
			return sigil + sanitize.EscapeHTML(m.ID)
		}
		return sigil + keyword
	}
}

// merge returns c with nil callbacks replaced by the ones from defaults
func (c Callbacks) merge(defaults Callbacks) Callbacks {
	if c.User == nil {
		c.User = defaults.User
	}
	if c.Channel == nil {
		c.Channel = defaults.Channel
	}
	if c.UserGroup == nil {
		c.UserGroup = defaults.UserGroup
	}
	if c.AtHere == nil {
		c.AtHere = defaults.AtHere
	}
	if c.AtChannel == nil {
		c.AtChannel = defaults.AtChannel
	}
	if c.AtEveryone == nil {
		c.AtEveryone = defaults.AtEveryone
	}
	if c.Date == nil {
		c.Date = defaults.Date
	}
	return c
}

// DefaultCallbacks returns the built-in mention callbacks. They render
// the sigil followed by the label, else the ID, else the keyword of
// at-mentions. Labels arrive rendered while IDs arrive raw as written in
// the source, so the defaults HTML-escape the ID before emitting it.
// Custom callbacks receive the same raw ID and must escape it themselves.
func DefaultCallbacks() Callbacks {
	return defaultCallbacks
}
