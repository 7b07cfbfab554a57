package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/neurobattle/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions and result tiers of the active bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n\n", b.Title(), b.Version())

		// Header.
		fmt.Fprintf(out, "%-3s  %-20s  %-6s  %-3s  %s\n", "#", "ID", "Type", "AI", "Prompt")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for i, q := range b.Questions() {
			fmt.Fprintf(out, "%-3d  %-20s  %-6s  %-3s  %s\n",
				i+1, q.ID, q.Type.DisplayName(), q.Correct, ansi.Truncate(q.Prompt, 50, "..."))
		}

		fmt.Fprintln(out)
		for _, t := range b.ResultTiers() {
			fmt.Fprintf(out, ">= %3.0f%%  %s %s\n", t.MinFraction*100, t.Emblem, t.Title)
		}

		fmt.Fprintf(out, "\n%d questions\n", b.Len())
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a bank file, or the embedded bank when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			b    *bank.Bank
			err  error
			name = "embedded bank"
		)
		if len(args) == 1 {
			name = args[0]
			b, err = bank.LoadFile(name)
		} else {
			b, err = bank.Load()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		counts := b.CountByType()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d questions: %d image, %d text; %d tiers)\n",
			name, b.Len(), counts[bank.ContentImage], counts[bank.ContentText], len(b.ResultTiers()))
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
