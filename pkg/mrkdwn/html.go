// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"strings"

	"github.com/gardener/slackmarkdown/pkg/mrkdwn/sanitize"
)

// attr is an HTML attribute. Attributes with empty values are not emitted.
type attr struct {
	name, value string
}

// htmlTag wraps content into tag. The values of class attributes are
// remapped token by token through state.CSSModuleNames.
func htmlTag(tag, content string, state *State, attrs ...attr) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		v := a.value
		if a.name == "class" {
			v = remapClasses(v, state)
		}
		b.WriteString(" ")
		b.WriteString(sanitize.EscapeHTML(a.name))
		b.WriteString(`="`)
		b.WriteString(sanitize.EscapeHTML(v))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(content)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
	return b.String()
}

func remapClasses(classes string, state *State) string {
	if state == nil || len(state.CSSModuleNames) == 0 {
		return classes
	}
	names := strings.Split(classes, " ")
	for i, cl := range names {
		if mapped, ok := state.CSSModuleNames[cl]; ok && mapped != "" {
			names[i] = mapped
		}
	}
	return strings.Join(names, " ")
}

// slackTag wraps mention output in a span unless suppressed
func slackTag(content, class string, state *State) string {
	if state.NoExtraSpanTags {
		return content
	}
	return htmlTag("span", content, state, attr{"class", class})
}
