// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

// Rule orders, lower is tried first
const (
	orderBlock = iota
	orderEscape
	orderMention
	orderLink
	orderDefault
	orderNewline
	orderText
)

// Rule names
const (
	RuleCodeBlock  = "codeBlock"
	RuleBlockQuote = "blockQuote"
	RuleEscape     = "noem"
	RuleEm         = "em"
	RuleStrong     = "strong"
	RuleAutolink   = "autolink"
	RuleURL        = "url"
	RuleStrike     = "strike"
	RuleInlineCode = "inlineCode"
	RuleNewline    = "br"
	RuleEmoji      = "emoji"
	RuleText       = "text"
	RuleUser       = "slackUser"
	RuleChannel    = "slackChannel"
	RuleUserGroup  = "slackUserGroup"
	RuleAtHere     = "slackAtHere"
	RuleAtChannel  = "slackAtChannel"
	RuleAtEveryone = "slackAtEveryone"
	RuleDate       = "slackDate"
)

func slackRules() []Definition {
	return []Definition{
		{Name: RuleUser, Order: orderMention, Rule: newUserRule()},
		{Name: RuleChannel, Order: orderMention, Rule: newChannelRule()},
		{Name: RuleUserGroup, Order: orderMention, Rule: newUserGroupRule()},
		{Name: RuleAtHere, Order: orderMention, Rule: newAtHereRule()},
		{Name: RuleAtChannel, Order: orderMention, Rule: newAtChannelRule()},
		{Name: RuleAtEveryone, Order: orderMention, Rule: newAtEveryoneRule()},
		{Name: RuleDate, Order: orderMention, Rule: newDateRule()},
	}
}

func universalRules() []Definition {
	return []Definition{
		{Name: RuleEmoji, Order: orderMention, Rule: newEmojiRule()},
		{Name: RuleNewline, Order: orderNewline, Rule: newNewlineRule()},
		{Name: RuleText, Order: orderText, Rule: newTextRule()},
	}
}

func markupRules() []Definition {
	return []Definition{
		{Name: RuleCodeBlock, Order: orderBlock, Rule: newCodeBlockRule()},
		{Name: RuleBlockQuote, Order: orderBlock, Rule: newBlockQuoteRule()},
		{Name: RuleEscape, Order: orderEscape, Rule: newEscapeRule()},
		{Name: RuleEm, Order: orderMention, Rule: newEmRule()},
		{Name: RuleStrong, Order: orderMention, Rule: newStrongRule()},
		{Name: RuleAutolink, Order: orderLink, Rule: newAutolinkRule()},
		{Name: RuleURL, Order: orderDefault, Rule: newURLRule()},
		{Name: RuleStrike, Order: orderDefault, Rule: newStrikeRule()},
		{Name: RuleInlineCode, Order: orderDefault, Rule: newInlineCodeRule()},
	}
}

var (
	// fullTable parses all supported markup
	fullTable = NewTable(append(append(markupRules(), slackRules()...), universalRules()...)...)
	// slackOnlyTable parses mentions, emoji and line breaks only
	slackOnlyTable = NewTable(append(slackRules(), universalRules()...)...)
)

// FullTable returns the table parsing all supported markup
func FullTable() *Table {
	return fullTable
}

// SlackOnlyTable returns the table parsing Slack mentions, emoji and
// line breaks only
func SlackOnlyTable() *Table {
	return slackOnlyTable
}
