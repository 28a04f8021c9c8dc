package cli

import (
	"fmt"
	"time"

	"github.com/phanxgames/dock"
	"github.com/phanxgames/dock/config"
	"github.com/spf13/cobra"
)

// maxScriptFrames bounds a headless scripted run.
const maxScriptFrames = 10000

type renderOptions struct {
	out     string
	hover   int
	settle  int
	script  string
	shots   string
	screenW int
	screenH int
	running []int
	debug   bool
}

func newRenderCmd(g *globals) *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the dock to a PNG without opening a window",
		Long: `render builds the dock from the configuration and writes one frame as a PNG.

With --hover the pointer rests on that item and the magnification settles
first. With --script a JSON test script drives the dock; its screenshot steps
are written to --shots.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "dock.png", "output PNG file")
	cmd.Flags().IntVar(&opts.hover, "hover", -1, "item index to rest the pointer on")
	cmd.Flags().IntVar(&opts.settle, "frames", 60, "frames to advance before capturing")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON test script to run headlessly")
	cmd.Flags().StringVar(&opts.shots, "shots", "screenshots", "directory for script screenshots")
	cmd.Flags().IntVar(&opts.screenW, "screen-width", 1920, "virtual screen width")
	cmd.Flags().IntVar(&opts.screenH, "screen-height", 1080, "virtual screen height")
	cmd.Flags().IntSliceVar(&opts.running, "running", nil, "item indexes to mark as running")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log per-frame timings (needs --verbose)")
	return cmd
}

func runRender(cmd *cobra.Command, g *globals, opts renderOptions) error {
	logger := loggerFromContext(cmd.Context())
	path, err := config.Locate(g.config)
	if err != nil {
		return err
	}
	f, err := config.Load(path)
	if err != nil {
		return err
	}
	s, items := f.Resolve()

	start := time.Now()
	d := dock.NewDock(s, items, nil)
	d.SetDebugMode(opts.debug)
	d.SetScreen(opts.screenW, opts.screenH)
	if len(opts.running) > 0 {
		flags := make([]bool, len(items))
		for _, i := range opts.running {
			if i >= 0 && i < len(flags) {
				flags[i] = true
			}
		}
		d.SetRunning(flags)
	}

	now := start
	tick := func() {
		d.Tick(now)
		now = now.Add(dock.NominalFrame)
	}

	if opts.script != "" {
		runner, err := loadScript(opts.script)
		if err != nil {
			return err
		}
		d.ScreenshotDir = opts.shots
		d.SetTestRunner(runner)
		frames := 0
		for !runner.Done() {
			if frames >= maxScriptFrames {
				return fmt.Errorf("test script did not finish within %d frames", maxScriptFrames)
			}
			tick()
			frames++
		}
		logger.Info("script finished", "frames", frames, "screenshots", opts.shots)
	}

	tick()
	if opts.hover >= 0 {
		x, ok := slotCenter(d.Layout(), opts.hover)
		if !ok {
			return fmt.Errorf("no item %d to hover", opts.hover)
		}
		y := float64(s.Padding.Top) + float64(s.IconSize)/2
		d.PointerMove(x, y, now)
	}
	for range opts.settle {
		tick()
	}

	if err := dock.WritePNG(opts.out, d.Surface()); err != nil {
		return err
	}
	p := &progress{logger: logger, start: start}
	p.done(fmt.Sprintf("Wrote %s (%dx%d)", opts.out, d.Surface().Width(), d.Surface().Height()))
	return nil
}

// slotCenter returns the horizontal centre of item index in lay.
func slotCenter(lay dock.Layout, index int) (float64, bool) {
	for _, sl := range lay.Slots {
		if sl.Index == index && !sl.Gap {
			return sl.X + sl.Width/2, true
		}
	}
	return 0, false
}
