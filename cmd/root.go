package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/neurobattle/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "neurobattle",
	Short: "AI or human? A terminal guessing game",
	Long: "Neuro Battles: each round shows two pieces of work, one made by a person " +
		"and one by a neural network. Spot the AI.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default ./config/config.yaml)")
	pf.String("bank", "", "Question bank file, .json or .yaml (overrides NEUROBATTLE_BANK_PATH)")
	pf.String("assets", "", "Directory image locators are resolved against")
	pf.Uint64("seed", 0, "Shuffle seed for a reproducible round order (0 = random)")
	pf.String("log-file", "", "Write logs to this file")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration with command-line flags taking
// precedence over environment and config file values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(config.Options{
		ConfigFile: path,
		Flags:      cmd.Flags(),
	})
}
