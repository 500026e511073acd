// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/gardener/slackmarkdown/pkg/mrkdwn"
	"k8s.io/klog/v2"
)

// newCallbacks parses the mention templates keyed by kind. The
// template output is inserted as is, the `html` function escapes
// values such as the raw mention ID.
func newCallbacks(templates map[string]string) (mrkdwn.Callbacks, error) {
	var (
		cb       mrkdwn.Callbacks
		defaults = mrkdwn.DefaultCallbacks()
		kinds    = make([]string, 0, len(templates))
	)
	for kind := range templates {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		tmpl, err := template.New(kind).Option("missingkey=error").Parse(templates[kind])
		if err != nil {
			return mrkdwn.Callbacks{}, fmt.Errorf("invalid %s template: %w", kind, err)
		}
		switch kind {
		case "user":
			cb.User = mentionFunc(tmpl, defaults.User)
		case "channel":
			cb.Channel = mentionFunc(tmpl, defaults.Channel)
		case "usergroup":
			cb.UserGroup = mentionFunc(tmpl, defaults.UserGroup)
		case "athere":
			cb.AtHere = mentionFunc(tmpl, defaults.AtHere)
		case "atchannel":
			cb.AtChannel = mentionFunc(tmpl, defaults.AtChannel)
		case "ateveryone":
			cb.AtEveryone = mentionFunc(tmpl, defaults.AtEveryone)
		case "date":
			cb.Date = dateFunc(tmpl, defaults.Date)
		default:
			return mrkdwn.Callbacks{}, fmt.Errorf("unknown template kind %s, must be one of user, channel, usergroup, athere, atchannel, ateveryone or date", kind)
		}
	}
	return cb, nil
}

func mentionFunc(tmpl *template.Template, fallback mrkdwn.MentionFunc) mrkdwn.MentionFunc {
	return func(m mrkdwn.MentionData) string {
		var b strings.Builder
		if err := tmpl.Execute(&b, m); err != nil {
			klog.Warningf("rendering %s template for %s failed: %v\n", tmpl.Name(), m.ID, err)
			return fallback(m)
		}
		return b.String()
	}
}

func dateFunc(tmpl *template.Template, fallback mrkdwn.DateFunc) mrkdwn.DateFunc {
	return func(d mrkdwn.DateData) string {
		var b strings.Builder
		if err := tmpl.Execute(&b, d); err != nil {
			klog.Warningf("rendering date template for %s failed: %v\n", d.Timestamp, err)
			return fallback(d)
		}
		return b.String()
	}
}
