// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mrkdwn

import (
	"fmt"
	"strings"
)

// Render emits the HTML for nodes by dispatching each node to the
// rule registered for its type
func (t *Table) Render(nodes []*Node, state *State) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(t.render(n, state))
	}
	return b.String()
}

func (t *Table) render(n *Node, state *State) string {
	r, ok := t.byName[n.Type]
	if !ok {
		panic(fmt.Errorf("no rule renders node type %s", n.Type))
	}
	return r.Render(n, t.Render, state)
}
