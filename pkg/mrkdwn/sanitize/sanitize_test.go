// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"<b>test</b>", "&lt;b&gt;test&lt;/b&gt;"},
		{"a&b", "a&amp;b"},
		{`"quoted"`, "&#34;quoted&#34;"},
		{"it's", "it&#39;s"},
		{"plain text", "plain text"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, EscapeHTML(tc.in))
		})
	}
}

func TestURL(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"https://example.org?a&b", "https://example.org?a&b"},
		{"mailto:bob@example.org", "mailto:bob@example.org"},
		{"javascript:alert(1)", ""},
		{"JavaScript:alert(1)", ""},
		{"java\tscript:alert(1)", ""},
		{"%6A%61vascript:alert(1)", ""},
		{"vbscript:msgbox", ""},
		{"data:text/html;base64,PHNjcmlwdD4=", ""},
		{"https://example.org/%zz", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, URL(tc.in))
		})
	}
}
