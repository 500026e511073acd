// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoRuleMatched signals a table that cannot make progress on its input
var ErrNoRuleMatched = errors.New("no rule matched")

// Definition registers a Rule under a name and an order. Rules with
// lower order are tried first, equal orders keep registration order.
type Definition struct {
	Name  string
	Order int
	Rule  Rule
}

// Table is an immutable, ordered set of rules
type Table struct {
	rules  []Definition
	byName map[string]Rule
}

// NewTable creates a Table from rule definitions
func NewTable(defs ...Definition) *Table {
	t := &Table{
		rules:  make([]Definition, len(defs)),
		byName: make(map[string]Rule, len(defs)),
	}
	copy(t.rules, defs)
	sort.SliceStable(t.rules, func(i, j int) bool {
		return t.rules[i].Order < t.rules[j].Order
	})
	for _, d := range t.rules {
		t.byName[d.Name] = d.Rule
	}
	return t
}

// Names returns the rule names in the order they are tried
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.rules))
	for _, d := range t.rules {
		names = append(names, d.Name)
	}
	return names
}

// Parse scans source and applies the first matching rule at each
// position to model a sequence of nodes
func (t *Table) Parse(source string, state *State) []*Node {
	return t.parse([]rune(source), state)
}

func (t *Table) parse(src []rune, state *State) []*Node {
	outer, scan := state.prev, state.scan
	state.scan = newSourceIndex(src)
	defer func() {
		state.prev, state.scan = outer, scan
	}()

	var nodes []*Node
	for pos := 0; pos < len(src); {
		prev := src[:pos]
		if pos == 0 {
			prev = outer
		}
		def, c := t.match(src[pos:], state, prev)
		if def == nil {
			panic(fmt.Errorf("%w at %q", ErrNoRuleMatched, string(src[pos:])))
		}
		if c.Length <= 0 {
			panic(fmt.Errorf("rule %s matched an empty string at %q", def.Name, string(src[pos:])))
		}
		pos += c.Length
		// nested content continues after what preceded the capture
		state.prev = prev
		n := def.Rule.Parse(c, t.Parse, state)
		if n.Type == "" {
			n.Type = def.Name
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func (t *Table) match(source []rune, state *State, prev []rune) (*Definition, Capture) {
	for i := range t.rules {
		if c := t.rules[i].Rule.Match(source, state, prev); c.Groups != nil {
			return &t.rules[i], c
		}
	}
	return nil, Capture{}
}
