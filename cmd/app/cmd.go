// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"strings"

	"github.com/gardener/slackmarkdown/cmd/configuration"
	"github.com/gardener/slackmarkdown/cmd/gendocs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// EnvPrefix prefixes the environment variables setting flag values
const EnvPrefix = "SLACKMARKDOWN"

// NewCommand creates a new root command and propagates
// the context to its Run callback closure
func NewCommand(ctx context.Context) *cobra.Command {
	vip := newViper()
	cmd := &cobra.Command{
		Use:   "slackmarkdown [files or directories]",
		Short: "Convert Slack mrkdwn into HTML",
		Long: `Converts Slack mrkdwn messages into sanitized HTML fragments.

Without arguments the standard input is converted to the standard output.
Files and directories given as arguments are converted in parallel into
the destination directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return exec(ctx, vip, new(configuration.DefaultConfigurationLoader), args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	configureFlags(cmd, vip)

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	klog.InitFlags(nil)
	AddFlags(cmd)

	return cmd
}

// newViper creates a viper reading SLACKMARKDOWN_* environment
// variables, e.g. SLACKMARKDOWN_ESCAPE_HTML for --escape-html
func newViper() *viper.Viper {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	return vip
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.Flags().AddGoFlag(gf)
	})
}
