package cmd

import (
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for reqq.

Request and environment names complete dynamically from the current root.

To load completions:

Bash:
  $ source <(reqq completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ reqq completion bash > /etc/bash_completion.d/reqq
  # macOS:
  $ reqq completion bash > $(brew --prefix)/etc/bash_completion.d/reqq

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ reqq completion zsh > "${fpath[1]}/_reqq"

Fish:
  $ reqq completion fish | source

  # To load completions for each session, execute once:
  $ reqq completion fish > ~/.config/fish/completions/reqq.fish

PowerShell:
  PS> reqq completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
