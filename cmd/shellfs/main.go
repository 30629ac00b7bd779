package main

import (
	"os"

	"github.com/spf13/cobra"

	"shellfs/internal/config"
	"shellfs/internal/fstree"
	"shellfs/internal/persist"
	"shellfs/internal/shell"
	"shellfs/internal/util"
)

var (
	configPath string
	loadPath   string
	verbose    int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shellfs",
		Short: "Interactive in-memory namespace shell",
		Long: "shellfs simulates a hierarchical namespace of directories and empty files,\n" +
			"driven by interactive commands and persisted to a flat text file.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := setup()
			if err != nil {
				return err
			}
			return sh.Run(os.Stdin)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML or JSON config file")
	cmd.PersistentFlags().StringVarP(&loadPath, "load", "l", "", "Save file to reload before the first command")
	cmd.PersistentFlags().IntVarP(&verbose, "verbose", "v", 3,
		"Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	cmd.AddCommand(newScriptCmd(), newDumpCmd())
	return cmd
}

func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script <file>",
		Short: "Evaluate a file of shell commands non-interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := setup()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return sh.RunScript(f)
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <savefile>",
		Short: "Load a save file and print its normalized records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogging(nil)
			t := fstree.New()
			if err := persist.Load(args[0], t); err != nil {
				return err
			}
			return persist.Write(os.Stdout, t)
		},
	}
}

// setup loads configuration, initializes logging, and builds the session
// shell, reloading a save file first when --load was given.
func setup() (*shell.Shell, error) {
	cfg := config.NewDefaultConfig()
	if configPath != "" {
		loaded, err := config.NewConfigFromFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	initLogging(cfg)
	logger := util.GetLogger("main")

	sh := shell.New(cfg, os.Stdout)
	if loadPath != "" {
		if err := persist.Load(loadPath, sh.Tree()); err != nil {
			return nil, err
		}
		logger.Info().Str("path", loadPath).Msg("Namespace preloaded")
	}
	return sh, nil
}

// initLogging maps the --verbose flag onto log levels the same way for
// every subcommand; the config file's level applies when the flag stays at
// its default.
func initLogging(cfg *config.Config) {
	lvl := config.DefaultLogLvl
	if cfg != nil {
		lvl = cfg.LogLvl
	}
	if verbose != 3 {
		if verbose < 1 {
			verbose = 1
		}
		if verbose > 5 {
			verbose = 5
		}
		logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
		lvl = logLvls[verbose-1]
	}
	util.InitializeLogger(lvl)
}
