package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/viz"
)

// loadConfig resolves the effective configuration: preset, then config file,
// then any flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theme") {
		if viz.GetTheme(theme).Name != theme {
			return nil, fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
		}
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func presetName() string {
	switch {
	case configFile != "":
		return configFile
	case preset != "":
		return preset
	}
	return "classic"
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRADIUS\tDISTANCE\tCOLOR\tSPEED\tROTATION\tRING")
	for _, b := range cfg.Bodies {
		ring := ""
		if b.HasRing {
			ring = "yes"
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.0f\t%s\t%.4f\t%.3f\t%s\n",
			b.Name, b.Radius, b.Distance, b.Color, b.Speed, b.RotationSpeed, ring)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("presets:")
	for _, p := range config.ListPresets() {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
