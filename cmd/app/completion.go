// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
)

// newCompletionCmd creates the command generating shell completion scripts
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate the shell completion script for slackmarkdown",
		Long: `Generates a script completing slackmarkdown commands and flags.

Bash:

$ source <(slackmarkdown completion bash)

To load completions for each session, execute once:
- Linux:
  $ slackmarkdown completion bash > /etc/bash_completion.d/slackmarkdown
- MacOS:
  $ slackmarkdown completion bash > /usr/local/etc/bash_completion.d/slackmarkdown

Zsh:

If shell completion is not already enabled in your environment you will need
to enable it.  You can execute the following once:

$ echo "autoload -U compinit; compinit" >> ~/.zshrc

To load completions for each session, execute once:
$ slackmarkdown completion zsh > "${fpath[1]}/_slackmarkdown"

You will need to start a new shell for this setup to take effect.

Fish:

$ slackmarkdown completion fish | source

To load completions for each session, execute once:
$ slackmarkdown completion fish > ~/.config/fish/completions/slackmarkdown.fish

PowerShell:

PS> slackmarkdown completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletion(out)
			}
		},
	}
}
