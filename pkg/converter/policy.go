// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package converter

import "github.com/microcosm-cc/bluemonday"

// NewPolicy returns the sanitization policy applied to converted
// documents when HTML escaping is disabled. It is the user generated
// content policy keeping the class names of mentions, emoji and code.
func NewPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("span")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span", "code")
	return p
}
