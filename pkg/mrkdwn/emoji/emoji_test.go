// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLookup(t *testing.T) {
	glyph, ok := Default().Lookup("smile")
	assert.True(t, ok)
	assert.Equal(t, "\U0001f604", glyph)

	_, ok = Default().Lookup("asdf")
	assert.False(t, ok)
}

func TestReplaceAll(t *testing.T) {
	table := New(map[string]string{
		"fox_face": "🦊",
		"+1":       "👍",
	})
	testCases := []struct {
		in   string
		want string
	}{
		{"blah :fox_face: blah", "blah 🦊 blah"},
		{":+1::fox_face:", "👍🦊"},
		{"blah :asdf: blah", "blah :asdf: blah"},
		{"no codes here", "no codes here"},
		{"half :fox_face", "half :fox_face"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, table.ReplaceAll(tc.in))
		})
	}
}
