package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/anim"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/controls"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/storage"
	"github.com/san-kum/orrery/internal/tui"
	"github.com/san-kum/orrery/internal/viz"
)

// runHeadless drives the animation loop with a fixed clock and records the
// registry. Speed overrides go through the slider controls, so they are
// clamped and stepped exactly as in the interactive frontends.
func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	if !cmd.Flags().Changed("seed") && cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	bodies, err := cfg.BodyConfigs()
	if err != nil {
		return err
	}
	sc, sim, err := scene.Build(bodies, cfg.SceneOptions(), rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}

	panel := controls.NewPanel(sim, sc)
	for name, raw := range speedOverrides {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("speed %s: %w", name, err)
		}
		if err := panel.SetSlider(controls.SliderID(name), v); err != nil {
			return err
		}
	}

	rec := storage.NewRecorder(every)
	driver := anim.NewDriver(sim, sc, nil, anim.FixedClock{Step: step}, nil, nil)
	driver.AddObserver(rec)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ticks := make(chan time.Time)
	go func() {
		defer close(ticks)
		for i := 0; i < frames; i++ {
			select {
			case ticks <- time.Time{}:
			case <-ctx.Done():
				return
			}
		}
	}()

	start := time.Now()
	if err := driver.Run(ctx, ticks); err != nil && err != context.Canceled {
		return err
	}
	log.Printf("recorded %d frames (%d samples) in %s", driver.Frames(), len(rec.Recording().Frames), time.Since(start).Round(time.Millisecond))

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	speeds := make([]float64, len(sim.Bodies))
	for i, b := range sim.Bodies {
		speeds[i] = b.Speed
	}
	runID, err := st.Save(storage.RunMetadata{
		Preset: presetName(),
		Seed:   cfg.Seed,
		Step:   step,
		Frames: driver.Frames(),
		Speeds: speeds,
	}, rec.Recording())
	if err != nil {
		return err
	}
	fmt.Println(runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tSAMPLES\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Samples,
			run.Seed,
		)
	}
	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *storage.Recording, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	rec, err := st.LoadRecording(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(rec.Frames) == 0 {
		return nil, nil, fmt.Errorf("run %s has no samples", runID)
	}
	return meta, rec, nil
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run:     %s\n", meta.ID)
	fmt.Printf("preset:  %s\n", meta.Preset)
	fmt.Printf("time:    %s\n", meta.Timestamp.Format(time.RFC3339))
	fmt.Printf("seed:    %d\n", meta.Seed)
	fmt.Printf("frames:  %d (step %.3g, %d samples)\n\n", meta.Frames, meta.Step, meta.Samples)

	last := rec.Frames[len(rec.Frames)-1]
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tSPEED\tANGLE\tX\tZ")
	for i, name := range rec.Bodies {
		speed := 0.0
		if i < len(meta.Speeds) {
			speed = meta.Speeds[i]
		}
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.2f\t%.2f\n",
			name, controls.FormatSpeed(speed), last.Angles[i], last.Positions[i].X, last.Positions[i].Z)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	_, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	idx := rec.BodyIndex(body)
	if idx < 0 {
		return fmt.Errorf("unknown body: %s (recorded: %s)", body, strings.Join(rec.Bodies, ", "))
	}

	xs, zs := rec.Series(idx)
	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{xs, rec.Bodies[idx] + " x"},
		{zs, rec.Bodies[idx] + " z"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

// writeOutput writes s to --output, or stdout when it is unset.
func writeOutput(s string) error {
	if outPath == "" {
		_, err := io.WriteString(os.Stdout, s)
		return err
	}
	return os.WriteFile(outPath, []byte(s), 0644)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}

	i := frameIdx
	if i < 0 {
		i += len(rec.Frames)
	}
	if i < 0 || i >= len(rec.Frames) {
		return fmt.Errorf("frame %d out of range (%d samples)", frameIdx, len(rec.Frames))
	}
	frame := rec.Frames[i]

	cfgs, err := recordedBodies(cfg, rec)
	if err != nil {
		return err
	}
	t := viz.GetTheme(cfg.Theme)

	var svg string
	if braille {
		svg, err = brailleSVG(cfg, cfgs, frame, t)
		if err != nil {
			return err
		}
	} else {
		xs := make([]float64, len(frame.Positions))
		zs := make([]float64, len(frame.Positions))
		for j, p := range frame.Positions {
			xs[j], zs[j] = p.X, p.Z
		}
		diagram := export.OrbitDiagram{
			Size:       svgSize,
			Background: string(t.Background),
			OrbitColor: string(t.Orbit),
			Labels:     true,
		}
		if trails {
			diagram.Trails = make(map[int][][2]float64)
			for j := 1; j < len(rec.Bodies); j++ {
				bx, bz := rec.Series(j)
				track := make([][2]float64, 0, i+1)
				for k := 0; k <= i && k < len(bx); k++ {
					track = append(track, [2]float64{bx[k], bz[k]})
				}
				diagram.Trails[j] = track
			}
		}
		svg = diagram.SVG(export.Marks(cfgs, xs, zs))
	}

	return writeOutput(svg + "\n")
}

// recordedBodies looks up each recorded body in the configuration by name.
func recordedBodies(cfg *config.Config, rec *storage.Recording) ([]solar.BodyConfig, error) {
	all, err := cfg.BodyConfigs()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]solar.BodyConfig, len(all))
	for _, b := range all {
		byName[strings.ToLower(b.Name)] = b
	}
	out := make([]solar.BodyConfig, len(rec.Bodies))
	for i, name := range rec.Bodies {
		b, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("recorded body %s is not in the configuration", name)
		}
		out[i] = b
	}
	return out, nil
}

// brailleSVG renders the terminal view of one recorded frame.
func brailleSVG(cfg *config.Config, cfgs []solar.BodyConfig, frame storage.Frame, t viz.Theme) (string, error) {
	sc, _, err := scene.Build(cfgs, cfg.SceneOptions(), rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return "", err
	}
	for j, n := range sc.Bodies {
		n.SetPosition(frame.Positions[j])
	}

	const cols, rows = 120, 40
	cam := scene.NewCamera(cfg.Camera.FOV, float64(cols*2)/float64(rows*4), cfg.Camera.Distance)
	cam.Position.Y = cfg.Camera.Distance * 0.4
	r := tui.NewRenderer(t)
	r.SetSize(cols*2, rows*4)
	r.Render(sc, cam)
	return export.CanvasToSVG(r.Canvas, 4, string(t.Background), string(t.Text)), nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if outPath == "" {
		return storage.ExportJSON(os.Stdout, meta, rec)
	}
	return storage.ExportJSONFile(outPath, meta, rec)
}
