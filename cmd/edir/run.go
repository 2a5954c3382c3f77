package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhenriksen/edir/pkg/edir/config"
	"github.com/jhenriksen/edir/pkg/edir/editor"
	"github.com/jhenriksen/edir/pkg/edir/executor"
	"github.com/jhenriksen/edir/pkg/edir/history"
	"github.com/jhenriksen/edir/pkg/edir/logging"
	"github.com/jhenriksen/edir/pkg/edir/output"
	"github.com/jhenriksen/edir/pkg/edir/remove"
	"github.com/jhenriksen/edir/pkg/edir/session"
)

// runEdit is the root command handler: one full edit cycle.
func runEdit(_ *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	expanded, err := config.ExpandPath(target)
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}
	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", absPath)
		}
		return fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", absPath)
	}

	if err := initLogging(); err != nil {
		return err
	}
	defer func() { _ = logging.Close() }()

	editorCmd, fellBack := editor.Resolve(viper.GetString("editor"))
	if fellBack {
		output.Warnf(os.Stderr, "no editor configured and VISUAL/EDITOR unset, using %q", editorCmd)
	}

	s := &session.Session{
		Dir:     absPath,
		Editor:  editorCmd,
		Policy:  policyFromViper(),
		Remover: removerFromViper(),
		History: historyStore(),
	}
	res, err := s.Run()
	if err != nil {
		return err
	}

	fmt.Println(output.Summary(
		len(res.Renames), len(res.Deletes), res.Kept, res.Skipped,
		len(res.Failures), viper.GetBool("dry_run")))

	if res.Failed() {
		return fmt.Errorf("%d operations failed", len(res.Failures))
	}
	return nil
}

// policyFromViper builds the execution policy from flags and config.
// Precedence between the flags is resolved by Policy.Normalize, not
// here.
func policyFromViper() executor.Policy {
	return executor.Policy{
		DryRun:      viper.GetBool("dry_run"),
		Force:       viper.GetBool("force"),
		Interactive: viper.GetBool("interactive"),
		Verbose:     viper.GetBool("verbose"),
	}
}

// removerFromViper picks the deletion backend.
func removerFromViper() remove.Remover {
	if viper.GetBool("use_trash") {
		return remove.Trash{}
	}
	return remove.Permanent{}
}

// historyStore returns the configured run-record store, or nil when
// recording is disabled or unavailable. History is best effort.
func historyStore() *history.Store {
	if !viper.GetBool("history.enabled") {
		return nil
	}
	dir := viper.GetString("history.path")
	if dir == "" {
		dir = config.HistoryDir()
	}
	store, err := history.NewStore(dir)
	if err != nil {
		output.Warnf(os.Stderr, "history disabled: %v", err)
		return nil
	}
	return store
}

// initLogging configures the file logger. Verbose bumps the level to
// debug regardless of config.
func initLogging() error {
	level := viper.GetString("logging.level")
	if viper.GetBool("verbose") {
		level = "debug"
	}
	return logging.Init(logging.Config{
		Level: level,
		Path:  viper.GetString("logging.path"),
	})
}
