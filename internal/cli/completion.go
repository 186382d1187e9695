package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for vtdesigner.

Bash:
  $ source <(vtdesigner completion bash)

Zsh:
  $ vtdesigner completion zsh > "${fpath[1]}/_vtdesigner"

Fish:
  $ vtdesigner completion fish > ~/.config/fish/completions/vtdesigner.fish

PowerShell:
  PS> vtdesigner completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
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

// completeObjectTypes completes the type argument of "add" (second
// argument) with type names; the first argument completes as a file.
func completeObjectTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 1 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	var out []string
	for _, t := range pool.Types() {
		if strings.HasPrefix(strings.ToLower(t.Ident()), strings.ToLower(toComplete)) {
			out = append(out, t.Ident()+"\t"+t.String())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
