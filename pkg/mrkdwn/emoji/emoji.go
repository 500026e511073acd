// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package emoji resolves emoji shortcodes such as :smile: to their glyphs.
package emoji

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"sync"

	"github.com/dlclark/regexp2"
	kemoji "github.com/kyokomi/emoji/v2"
	"k8s.io/klog/v2"
)

// Table looks up emoji glyphs by shortcode name
//counterfeiter:generate . Table
type Table interface {
	// Lookup returns the glyph for a shortcode name given
	// without the surrounding colons
	Lookup(name string) (string, bool)
	// ReplaceAll substitutes every known :name: shortcode in
	// text with its glyph. Unknown shortcodes are left as is.
	ReplaceAll(text string) string
}

var shortcodeRe = regexp2.MustCompile(`:([a-zA-Z0-9_\-+]+):`, regexp2.None)

type codeMap struct {
	codes map[string]string
}

var (
	defaultTable Table
	once         sync.Once
)

// Default returns the table backed by the gemoji/unicode code map
func Default() Table {
	once.Do(func() {
		defaultTable = &codeMap{codes: kemoji.CodeMap()}
	})
	return defaultTable
}

// New creates a Table from a shortcode name to glyph mapping
func New(codes map[string]string) Table {
	m := make(map[string]string, len(codes))
	for name, glyph := range codes {
		m[":"+name+":"] = glyph
	}
	return &codeMap{codes: m}
}

func (c *codeMap) Lookup(name string) (string, bool) {
	glyph, ok := c.codes[":"+name+":"]
	return glyph, ok
}

func (c *codeMap) ReplaceAll(text string) string {
	out, err := shortcodeRe.ReplaceFunc(text, func(m regexp2.Match) string {
		if glyph, ok := c.Lookup(m.GroupByNumber(1).String()); ok {
			return glyph
		}
		return m.String()
	}, -1, -1)
	if err != nil {
		klog.V(4).Infof("emoji replacement aborted: %v", err)
		return text
	}
	return out
}
