package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	fps        int
	theme      string
	logFile    string

	frames         int
	step           float64
	every          int
	speedOverrides map[string]string

	body     string
	outPath  string
	frameIdx int
	svgSize  int
	trails   bool
	braille  bool
)

// main registers the commands and runs the window frontend when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "orrery",
		Short:        "animated solar system",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orrery", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for start angles and stars (0 = time)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 60, "frame rate")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "light", "light or dark")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the 3D window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&logFile, "log", "", "write log output to this file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "record a headless run",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 3600, "number of frames")
	runCmd.Flags().Float64Var(&step, "step", 1, "simulated seconds per frame")
	runCmd.Flags().IntVar(&every, "every", 10, "keep every n-th frame")
	runCmd.Flags().StringToStringVar(&speedOverrides, "speed", nil, "planet speed overrides, e.g. earth=0.05")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata and final positions",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's track",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&body, "body", "Earth", "body to plot")

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "export a frame of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	svgCmd.Flags().IntVar(&frameIdx, "frame", -1, "sample index, negative counts from the end")
	svgCmd.Flags().IntVar(&svgSize, "size", 800, "image size in pixels")
	svgCmd.Flags().BoolVar(&trails, "trails", false, "draw each planet's recorded track")
	svgCmd.Flags().BoolVar(&braille, "braille", false, "render the terminal view instead of the top-down diagram")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the configured bodies",
		RunE:  listBodies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, listCmd, showCmd, plotCmd, svgCmd, exportJSONCmd, bodiesCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(cfg)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "orrery")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	return tui.Run(cfg)
}
