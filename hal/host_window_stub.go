//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Host  HostConfig
	Title string
	Scale int
	TPS   int
}

func RunWindow(_ WindowConfig, _ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1); use -headless")
}
