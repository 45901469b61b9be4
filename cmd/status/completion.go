package main

import (
	"github.com/spf13/cobra"

	"github.com/matsen/quickstatus/internal/config"
)

func init() {
	rootCmd.AddCommand(completionCmd)

	setCmd.ValidArgsFunction = completeStatusName
	showCmd.ValidArgsFunction = completeStatusName
	defaultAddCmd.ValidArgsFunction = completeStatusName
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate completion scripts for your shell. Status names are completed from
statuses.json.

Bash:
  $ source <(status completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ status completion bash > /etc/bash_completion.d/status
  # macOS:
  $ status completion bash > $(brew --prefix)/etc/bash_completion.d/status

Zsh:
  $ status completion zsh > "${fpath[1]}/_status"

Fish:
  $ status completion fish > ~/.config/fish/completions/status.fish

PowerShell:
  PS> status completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(stdout, true)
		case "zsh":
			return rootCmd.GenZshCompletion(stdout)
		case "fish":
			return rootCmd.GenFishCompletion(stdout, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(stdout)
		}
	},
}

// completeStatusName offers canned status names for the first argument.
func completeStatusName(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	dir, err := resolveConfigDir()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	catalog, err := config.LoadStatuses(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := make([]string, 0, len(catalog))
	for _, name := range catalog.Names() {
		names = append(names, name+"\t"+catalog[name].String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
