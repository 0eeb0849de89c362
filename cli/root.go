package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		TRAINTRACK_CONFIG_DIR: the directory where traintrack will store configuration files.
		Default: "$XDG_CONFIG_HOME/traintrack" or "$HOME/.config/traintrack".

		TRAINTRACK_CLIENT_HOST: base URL of the dataset catalog.

		TRAINTRACK_CLIENT_TOKEN_PATH: credentials file holding the access token.

		TRAINTRACK_LOG_LEVEL: one of debug, info, warn, error.

		NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.
	`),
}

func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "traintrack <command> <subcommand> [flags]",
		Short:         "Versioned dataset catalog",
		Long:          "Publish, browse and trace versioned training datasets.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ traintrack dataset list
		$ traintrack dataset publish --name iris --version 1.0.0 --description "raw measurements" --artefact train=train.csv
		$ traintrack dataset lineage
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'traintrack <command> --help' for info about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/heldtogether/traintrack/issues
			`),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString(configFlag)
			if cfgFile == "" {
				return nil
			}
			return LoadConfigFromFlag(cfgFile, cfg)
		},
	}

	rootCmd.AddCommand(
		configCommand(cfg),
		datasetCommand(cfg),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("traintrack"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}
