//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Host    HostConfig
	Hz      int
	Ticks   uint64

	// Script is replayed one frame at a time; see ParseKeyScript.
	Script [][]KeyEvent

	// Done, if set, is called with the HAL after the last tick.
	Done func(HAL) error
}

// RunHeadless runs the navigator without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.Host)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	finish := func() error {
		if cfg.Done != nil {
			return cfg.Done(h)
		}
		return nil
	}

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if tick < uint64(len(cfg.Script)) {
				h.kbd.inject(cfg.Script[tick])
			}
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return finish()
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return finish()
			}
		}
	}
}

func (k *hostKeyboard) inject(evs []KeyEvent) {
	for _, ev := range evs {
		select {
		case k.ch <- ev:
		default:
		}
	}
}
