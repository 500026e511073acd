// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gardener/slackmarkdown/cmd/configuration"
	"github.com/gardener/slackmarkdown/pkg/converter"
	"github.com/gardener/slackmarkdown/pkg/mrkdwn"
	"github.com/gardener/slackmarkdown/pkg/writers"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func exec(ctx context.Context, vip *viper.Viper, loader configuration.Loader, args []string, in io.Reader, out io.Writer) error {
	config, err := loader.Load()
	if err != nil {
		return err
	}
	applyConfig(vip, config)

	var options options
	if err := vip.Unmarshal(&options); err != nil {
		return err
	}
	worker, err := newWorker(options)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return convertStream(worker, in, out)
	}

	if options.DestinationPath == "" {
		return errors.New("destination is required when converting files")
	}
	tasks, err := converter.NewTasks(args, options.Extensions)
	if err != nil {
		return err
	}
	klog.Infof("Output dir: %s", options.DestinationPath)

	var dryRunWriters writers.DryRunWriter
	if options.DryRun {
		dryRunWriters = writers.NewDryRunWritersFactory(out)
		worker.Writer = dryRunWriters.GetWriter(options.DestinationPath)
	} else {
		worker.Writer = &writers.FSWriter{
			Root: options.DestinationPath,
			Ext:  "html",
		}
	}
	err = converter.Run(ctx, worker, tasks, options.Workers, options.FailFast)
	if dryRunWriters != nil {
		dryRunWriters.Flush()
	}
	return err
}

func newWorker(o options) (*converter.Worker, error) {
	callbacks, err := newCallbacks(o.Templates)
	if err != nil {
		return nil, err
	}
	escapeHTML := o.EscapeHTML
	w := &converter.Worker{
		Reader: converter.FileReader{},
		Converter: mrkdwn.New(&mrkdwn.Options{
			EscapeHTML:           &escapeHTML,
			SlackOnly:            o.SlackOnly,
			Callbacks:            callbacks,
			CSSModuleNames:       o.CSSModuleNames,
			NoExtraSpanTags:      o.NoExtraSpanTags,
			NoExtraEmojiSpanTags: o.NoExtraEmojiSpanTags,
		}),
	}
	if !o.EscapeHTML && o.Sanitize {
		w.Policy = converter.NewPolicy()
	}
	return w, nil
}

func convertStream(w *converter.Worker, in io.Reader, out io.Writer) error {
	blob, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input failed: %w", err)
	}
	if _, err := io.WriteString(out, w.Convert(string(blob))); err != nil {
		return fmt.Errorf("writing output failed: %w", err)
	}
	return nil
}

// applyConfig registers the configuration file values as defaults,
// flags and environment variables take precedence
func applyConfig(vip *viper.Viper, config *configuration.Config) {
	if config == nil {
		return
	}
	setDefault(vip, "escape-html", config.EscapeHTML)
	setDefault(vip, "slack-only", config.SlackOnly)
	setDefault(vip, "no-extra-span-tags", config.NoExtraSpanTags)
	setDefault(vip, "no-extra-emoji-span-tags", config.NoExtraEmojiSpanTags)
	setDefault(vip, "sanitize", config.Sanitize)
	if config.Workers != nil {
		vip.SetDefault("workers", *config.Workers)
	}
	if len(config.Extensions) > 0 {
		vip.SetDefault("extensions", config.Extensions)
	}
	if len(config.CSSModuleNames) > 0 {
		vip.SetDefault("css-module-names", config.CSSModuleNames)
	}
	if len(config.Templates) > 0 {
		vip.SetDefault("templates", config.Templates)
	}
}

func setDefault(vip *viper.Viper, key string, value *bool) {
	if value != nil {
		vip.SetDefault(key, *value)
	}
}
