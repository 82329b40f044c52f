// Command hcal opens a window showing the current calendar week.
//
// Clicking an event opens a dialog with its details; Escape closes it.
// Closing the window or emptying the screen stack exits.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gogpu/hcal"
	"github.com/gogpu/hcal/config"
	"github.com/gogpu/hcal/internal/demo"
	"github.com/gogpu/hcal/internal/ebitenhost"
	"github.com/gogpu/hcal/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
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

	app := &demo.App{}
	gameCfg := ebitenhost.Config{
		Title:           cfg.Window.Title,
		Width:           cfg.Window.Width,
		Height:          cfg.Window.Height,
		App:             app,
		RendererOptions: cfg.RendererOptions(),
	}
	g, err := ebitenhost.NewGame(gameCfg)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	app.System = g.System()

	monday := demo.StartOfWeek(time.Now())
	g.System().Push(demo.NewWeekScreen(cfg.Theme, monday, demo.SampleWeek(monday)))

	hcal.Logger().Info("window opened",
		"title", cfg.Window.Title,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height)
	if err := ebitenhost.Run(g, gameCfg); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}
