//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"spherenav/app"
	"spherenav/hal"
	"spherenav/internal/buildinfo"
	"spherenav/internal/config"
	"spherenav/internal/snapshot"
)

func main() {
	var (
		cfgPath    string
		headless   hal.HeadlessConfig
		keys       string
		shotPath   string
		hemisphere string
		scale      int
		version    bool
	)
	flag.StringVar(&cfgPath, "config", "", "YAML config file.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until quit).")
	flag.StringVar(&keys, "keys", "", "Key script replayed in headless mode, e.g. \"right*10,5,shift+up*4,q\".")
	flag.StringVar(&shotPath, "snapshot", "", "Write the final headless frame to this .webp or .png file.")
	flag.StringVar(&hemisphere, "hemisphere", "", "Start-up hemisphere constraint (none, +X, -X, +Y, -Y, +Z, -Z).")
	flag.IntVar(&scale, "scale", 0, "Window and snapshot scale factor (overrides config).")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fail(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hemisphere":
			cfg.Control.Hemisphere = hemisphere
		case "scale":
			cfg.Window.Scale = scale
			cfg.Snapshot.Scale = scale
		}
	})
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	host := hal.HostConfig{Width: cfg.Window.Width, Height: cfg.Window.Height}

	if headless.Enabled {
		headless.Host = host
		if keys != "" {
			if headless.Script, err = hal.ParseKeyScript(keys); err != nil {
				fail(err)
			}
		}
		if shotPath != "" {
			headless.Done = func(h hal.HAL) error {
				if err := snapshot.Write(shotPath, h.Display().Framebuffer(), cfg.Snapshot.Scale); err != nil {
					return err
				}
				h.Logger().WriteLineString("snapshot: wrote " + shotPath)
				return nil
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, app.Runner(cfg), headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fail(err)
		}
		return
	}

	if err := hal.RunWindow(hal.WindowConfig{
		Host:  host,
		Title: cfg.Window.Title,
		Scale: cfg.Window.Scale,
		TPS:   cfg.Window.TPS,
	}, app.Runner(cfg)); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
