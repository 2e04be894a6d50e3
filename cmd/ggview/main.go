// Command ggview opens a window and plays a live animated vector scene:
// a triangle spinning at the window center, filled with a rainbow sweep
// gradient. It doubles as a smoke test for the whole render stack.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/app"
	"github.com/gogpu/ggview/render"
	"github.com/gogpu/ggview/scene"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		title      = flag.String("title", "", "window title (overrides config)")
		size       = flag.String("size", "", "window size as WxH (overrides config)")
		software   = flag.Bool("software", false, "prefer a software fallback adapter")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := app.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = app.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("ggview: %v", err)
		}
	}
	if *title != "" {
		cfg.Title = *title
	}
	if *size != "" {
		if _, err := fmt.Sscanf(*size, "%dx%d", &cfg.Width, &cfg.Height); err != nil {
			log.Fatalf("ggview: bad -size %q, want WxH", *size)
		}
	}
	if *software {
		cfg.PreferSoftware = true
	}

	a, err := app.New(cfg, render.SceneProducerFunc(buildFrame))
	if err != nil {
		log.Fatalf("ggview: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("ggview: %v", err)
	}
}

// buildFrame draws the demo scene: an equilateral triangle rotating
// about the window center, one revolution every six seconds, painted
// with a full-circle rainbow sweep.
func buildFrame(sc *scene.Scene, elapsed time.Duration, width, height uint32) {
	cx := float32(width) / 2
	cy := float32(height) / 2
	const radius = 200

	// Eight stops: the classic rainbow wrapped back to red.
	rainbow := []ggview.RGBA{
		ggview.Red,
		ggview.RGB8(255, 165, 0), // orange
		ggview.Yellow,
		ggview.Green,
		ggview.Blue,
		ggview.RGB8(75, 0, 130),    // indigo
		ggview.RGB8(238, 130, 238), // violet
		ggview.Red,
	}
	sweep := scene.NewSweepGradientBrush(float64(cx), float64(cy), 0)
	for i, c := range rainbow {
		sweep.AddColorStop(float64(i)/float64(len(rainbow)-1), c)
	}

	angle := float32(elapsed.Seconds() * (2 * math.Pi / 6))
	triangle := scene.NewPath().Polygon(3, cx, cy, radius, -math.Pi/2)

	sc.Fill(scene.FillNonZero, scene.RotateAboutAffine(angle, cx, cy), sweep, triangle)
}
