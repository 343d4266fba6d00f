package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tokenaudit [file]",
	Short: "Design-token auditor for stylesheets, token files and theme configs",
	Long: `Score one design-token source against four design heuristics:
simplicity, material authenticity, attention to detail and less-but-better.
The result is a markdown report, a JSON export or a terminal summary.`,
	// Default behavior: analyze the file when no subcommand is given.
	// We must call loadConfig here because PreRunE of analyzeCmd
	// is not triggered when delegating via rootCmd.RunE.
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runAnalyzeCommand(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")
	addAnalyzeFlags(rootCmd.Flags())

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
