// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"time"

	"github.com/dlclark/regexp2"
	"k8s.io/klog/v2"
)

// matchTimeout bounds a single pattern evaluation. A pattern that runs
// out of time does not match and the input falls through to other rules,
// which is logged as a warning since the output then depends on load.
const matchTimeout = 250 * time.Millisecond

// matcher is the Match operation of a rule
type matcher func(source []rune, state *State, prev []rune) Capture

func compile(expr string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, opts)
	re.MatchTimeout = matchTimeout
	return re
}

// anyScopeRegex matches expr regardless of the parse state
func anyScopeRegex(expr string, opts regexp2.RegexOptions) matcher {
	re := compile(expr, opts)
	return func(source []rune, _ *State, _ []rune) Capture {
		return exec(re, source)
	}
}

// inlineRegex matches expr only while parsing inline content
func inlineRegex(expr string, opts regexp2.RegexOptions) matcher {
	re := compile(expr, opts)
	return func(source []rune, state *State, _ []rune) Capture {
		if !state.Inline {
			return Capture{}
		}
		return exec(re, source)
	}
}

// tokenRegex matches a <...> token with expr only seeing source up to
// the first '>'. expr must not match '>' before its last rune.
func tokenRegex(expr string, inlineOnly bool) matcher {
	re := compile(expr, regexp2.None)
	return func(source []rune, state *State, _ []rune) Capture {
		if inlineOnly && !state.Inline {
			return Capture{}
		}
		token := tokenWindow(source, state)
		if token == nil {
			return Capture{}
		}
		return exec(re, token)
	}
}

// tokenWindow returns source up to and including its first '>', nil
// when source does not start a token or has no '>'
func tokenWindow(source []rune, state *State) []rune {
	if len(source) < 2 || source[0] != '<' {
		return nil
	}
	x, q := state.lookup(source)
	end := x.nextOf('>', q)
	if end == len(x.src) {
		return nil
	}
	return source[:end-q+1]
}

func exec(re *regexp2.Regexp, source []rune) Capture {
	m, err := re.FindRunesMatch(source)
	if err != nil {
		klog.Warningf("pattern %s aborted: %v", re.String(), err)
		return Capture{}
	}
	if m == nil || m.Index != 0 {
		return Capture{}
	}
	groups := m.Groups()
	c := Capture{
		Groups: make([]string, len(groups)),
		Length: m.Length,
	}
	for i := range groups {
		if len(groups[i].Captures) > 0 {
			c.Groups[i] = groups[i].String()
		}
	}
	return c
}

// replaceAll substitutes every match of re in s. On timeout s is
// returned unchanged.
func replaceAll(re *regexp2.Regexp, s, substitution string) string {
	out, err := re.Replace(s, substitution, -1, -1)
	if err != nil {
		klog.Warningf("pattern %s aborted: %v", re.String(), err)
		return s
	}
	return out
}
