package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFile    string

	// frame
	at      float64
	paused  bool
	sets    []string
	preset  string
	format  string
	outFile string

	// animate
	frames   int
	fps      int
	outDir   string
	autoplay bool

	// sweep
	points int
)

// main registers the fieldlab commands and runs the terminal preview when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "fieldlab [topic]",
		Short:         "interactive electromagnetism visualizations",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().BoolVar(&autoplay, "play", false, "start playing")
	rootCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter override name=value (repeatable)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "apply a parameter preset")

	tuiCmd := &cobra.Command{
		Use:   "tui [topic]",
		Short: "terminal preview",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&autoplay, "play", false, "start playing")
	tuiCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter override name=value (repeatable)")
	tuiCmd.Flags().StringVar(&preset, "preset", "", "apply a parameter preset")

	topicsCmd := &cobra.Command{
		Use:   "topics",
		Short: "list topics and their parameters",
		Args:  cobra.NoArgs,
		RunE:  listTopics,
	}

	frameCmd := &cobra.Command{
		Use:   "frame <topic>",
		Short: "render one frame",
		Args:  cobra.ExactArgs(1),
		RunE:  renderFrame,
	}
	frameCmd.Flags().Float64Var(&at, "t", 0, "elapsed seconds")
	frameCmd.Flags().BoolVar(&paused, "paused", false, "render the static (paused) frame")
	frameCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter override name=value (repeatable)")
	frameCmd.Flags().StringVar(&preset, "preset", "", "apply a parameter preset")
	frameCmd.Flags().StringVar(&format, "format", "text", "output format: text, json or svg")
	frameCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	animateCmd := &cobra.Command{
		Use:   "animate <topic>",
		Short: "render a playing topic to a sequence of SVG files",
		Args:  cobra.ExactArgs(1),
		RunE:  animate,
	}
	animateCmd.Flags().IntVar(&frames, "frames", 60, "number of frames")
	animateCmd.Flags().IntVar(&fps, "fps", 30, "frames per second")
	animateCmd.Flags().StringVar(&outDir, "dir", "frames", "output directory")
	animateCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter override name=value (repeatable)")
	animateCmd.Flags().StringVar(&preset, "preset", "", "apply a parameter preset")

	sweepCmd := &cobra.Command{
		Use:   "sweep <topic> <param>",
		Short: "plot a topic's reading across a parameter's range",
		Args:  cobra.ExactArgs(2),
		RunE:  sweepParam,
	}
	sweepCmd.Flags().IntVar(&points, "points", 40, "samples across the range")
	sweepCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter override name=value (repeatable)")

	presetsCmd := &cobra.Command{
		Use:   "presets <topic>",
		Short: "list available presets for a topic",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init <file>",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	guiCmd := &cobra.Command{
		Use:   "gui [topic]",
		Short: "desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&autoplay, "play", false, "start playing")
	guiCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter override name=value (repeatable)")
	guiCmd.Flags().StringVar(&preset, "preset", "", "apply a parameter preset")

	rootCmd.AddCommand(tuiCmd, topicsCmd, frameCmd, animateCmd, sweepCmd, presetsCmd, configCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
