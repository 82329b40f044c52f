// Command hcalframes renders the calendar week headlessly on the noop GPU
// backend and reports frame statistics. It exercises the full frame path
// without a window, which makes it useful on CI machines.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/hcal"
	"github.com/gogpu/hcal/config"
	"github.com/gogpu/hcal/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		frames     = flag.Int("frames", 60, "number of frames to render")
		clickAt    = flag.Int("click-at", 10, "frame at which to click the first event, -1 to disable")
		resizeAt   = flag.Int("resize-at", 30, "frame at which to swap width and height, -1 to disable")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn or error")
	)
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid -log-level: %v", err)
	}
	hcal.SetLogger(logging.New(os.Stderr, level))

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	res, err := run(cfg, options{
		frames:   *frames,
		clickAt:  *clickAt,
		resizeAt: *resizeAt,
	})
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	hcal.Logger().Info("done",
		"frames", res.Stats.Frames,
		"pipelines", res.Stats.Pipelines,
		"live_buffers", res.Stats.LiveBuffers,
		"glyphs", res.Glyphs,
		"depth", res.Depth)
}
