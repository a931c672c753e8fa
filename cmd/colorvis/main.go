package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/jsvensson/colorvis/internal/config"
	"github.com/jsvensson/colorvis/internal/model"
	"github.com/jsvensson/colorvis/internal/tui"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagConfig    string
	flagColor     string
	flagVerbosity int
	flagLogFile   string
	flagModel     string
	flagForce     bool
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags

	// cfg is resolved from the config file and flags before any command runs.
	cfg config.Config
)

var log = commonlog.GetLogger("colorvis.cli")

var rootCmd = &cobra.Command{
	Use:               "colorvis",
	Short:             "Edit a color in one model and watch it in RGB, CMY, HSV, HSL, YUV and YIQ",
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runTUI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI (default)",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long:  "Write a config file with the default settings, or the --color given, to path (default colorvis.hcl).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format config files",
	Long:  "Format one or more config files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", config.DefaultPath, "path to config file")
	pf.StringVar(&flagColor, "color", "", `start color, e.g. "#336699" or "hsv(210, 60, 80)"`)
	pf.IntVar(&flagVerbosity, "verbosity", 0, fmt.Sprintf("log verbosity (%d..%d)", config.MinVerbosity, config.MaxVerbosity))
	pf.StringVar(&flagLogFile, "log-file", "", "write logs to this file")

	initCmd.Flags().StringVarP(&flagModel, "model", "m", "hsv", "model used to write the initial color")
	initCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "overwrite an existing file")
	// Components such as -43 must not be read as flags.
	convertCmd.Flags().SetInterspersed(false)
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies the flags on top of it.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		c, err := config.ParseColor(flagColor)
		if err != nil {
			return fmt.Errorf("--color: %w", err)
		}
		cfg.Initial = c
	}
	if flags.Changed("verbosity") {
		if flagVerbosity < config.MinVerbosity || flagVerbosity > config.MaxVerbosity {
			return fmt.Errorf("--verbosity: %d is outside %d..%d", flagVerbosity, config.MinVerbosity, config.MaxVerbosity)
		}
		cfg.Verbosity = flagVerbosity
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	return nil
}

// configureLogging sends logs to the configured file. Without one, logs go
// to stderr unless the terminal is taken by the UI.
func configureLogging(terminalFree bool) {
	switch {
	case cfg.LogFile != "":
		commonlog.Configure(cfg.Verbosity, &cfg.LogFile)
	case terminalFree:
		commonlog.Configure(cfg.Verbosity, nil)
	default:
		commonlog.Configure(config.MinVerbosity, nil)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	configureLogging(false)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	log.Infof("start color %s", cfg.Initial.Hex())
	return tui.New(screen, cfg.Initial).Run()
}

func runInit(cmd *cobra.Command, args []string) error {
	configureLogging(true)

	path := config.DefaultPath
	if len(args) == 1 {
		path = args[0]
	}
	id, ok := model.Lookup(flagModel)
	if !ok {
		return fmt.Errorf("unknown model %q (valid: %v)", flagModel, model.Names())
	}

	if !flagForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, config.Render(cfg, id), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	log.Infof("wrote %s", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	configureLogging(true)

	hasErrors := false
	unformatted := 0

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		formatted := config.Format(data)
		if string(formatted) == string(data) {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		unformatted++

		if !flagCheck {
			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors {
		return errors.New("formatting failed")
	}
	if flagCheck && unformatted > 0 {
		return fmt.Errorf("%d file(s) need formatting", unformatted)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
