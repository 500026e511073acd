// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package sanitize provides the escaping primitives used when emitting HTML.
package sanitize

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// deniedSchemes are URL schemes that can execute code in a browser
var deniedSchemes = []string{"javascript:", "vbscript:", "data:"}

// EscapeHTML escapes the characters &, <, >, " and ' in text
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// URL neutralizes rawURL when its scheme is one of the denied ones,
// returning an empty string. Any other URL is returned as is.
func URL(rawURL string) string {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		return ""
	}
	prot := strings.ToLower(strings.Map(func(r rune) rune {
		if isSchemeRune(r) {
			return r
		}
		return -1
	}, decoded))
	for _, s := range deniedSchemes {
		if strings.HasPrefix(prot, s) {
			return ""
		}
	}
	return rawURL
}

func isSchemeRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '/' || r == ':'
}
