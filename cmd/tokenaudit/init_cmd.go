package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tokenaudit.yaml config file",
	Long:  `Create a .tokenaudit.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		// #nosec G306 - config is not secret
		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# tokenaudit configuration
# Every key can also be set with a TOKENAUDIT_* environment variable
# (TOKENAUDIT_FORMAT=json) or the matching command line flag.

format: markdown   # markdown | json | summary
output: ""         # report file path; empty prints to stdout
quiet: false       # exit code only
verbose: false     # debug logs on stderr
color: false       # force colors in the summary format
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
