package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var shells = map[string]func(w io.Writer) error{
	"bash": func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
	"zsh":  func(w io.Writer) error { return rootCmd.GenZshCompletion(w) },
	"fish": func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": func(w io.Writer) error {
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	},
}

func shellNames() []string {
	names := make([]string, 0, len(shells))
	for name := range shells {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var completionCmd = &cobra.Command{
	Use:                   "completion [" + strings.Join(shellNames(), "|") + "]",
	Short:                 "Print a shell completion script",
	Args:                  cobra.MaximumNArgs(1),
	RunE:                  printCompletion,
	ValidArgsFunction:     completeShells,
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func completeShells(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var matches []string
	for _, name := range shellNames() {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

func printCompletion(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	gen, ok := shells[args[0]]
	if !ok {
		return fmt.Errorf("unsupported shell: %s", args[0])
	}
	return gen(cmd.OutOrStdout())
}
