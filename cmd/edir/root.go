package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhenriksen/edir/pkg/edir/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "edir [path]",
		Short: "Bulk-rename and delete files by editing a directory listing",
		Long: `Edir snapshots a directory, opens the listing in your editor, and
applies your edits back to the filesystem.

Each line of the listing is an index and a name. Change a name to rename
the entry. Delete a line to delete the entry. Leave a line alone to keep
it. Indices identify entries, so never edit the index field.

Examples:
  edir                       # Edit the current directory
  edir ~/Downloads           # Edit a specific directory
  edir -d .                  # Preview without touching anything
  edir -i .                  # Confirm every rename and delete
  edir -f .                  # No prompts, directories delete recursively
  edir history               # What did previous runs do?
  edir config show           # Show configuration`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runEdit,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/edir/config.yaml)")
	rootCmd.Flags().StringP("editor", "e", "", "editor command (default: $VISUAL, $EDITOR, then vi)")
	rootCmd.Flags().BoolP("interactive", "i", false, "confirm each rename and delete")
	rootCmd.Flags().BoolP("force", "f", false, "no prompts; directories delete without confirmation")
	rootCmd.Flags().BoolP("dry-run", "d", false, "simulate everything, modify nothing")
	rootCmd.Flags().BoolP("verbose", "v", false, "report each action")
	rootCmd.Flags().Bool("trash", false, "move deletions to the system trash")

	_ = viper.BindPFlag("editor", rootCmd.Flags().Lookup("editor"))
	_ = viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))
	_ = viper.BindPFlag("force", rootCmd.Flags().Lookup("force"))
	_ = viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("use_trash", rootCmd.Flags().Lookup("trash"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "edir"))
		}
		if homeDir, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "edir"))
		}
	}

	viper.SetEnvPrefix("EDIR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	// Read config file (ignore if not found).
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
