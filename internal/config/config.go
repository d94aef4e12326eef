// Package config loads the navigator settings from YAML.
//
// Every key is optional; missing keys keep the values from Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"spherenav/nav/orient"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// RGB is a colour written as "#rrggbb" in YAML.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB parses "#rrggbb" (the leading '#' is optional).
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c *RGB) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := ParseRGB(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = v
	return nil
}

func (c RGB) MarshalYAML() (any, error) { return c.String(), nil }

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

type Sphere struct {
	Radius    float64 `yaml:"radius"`
	LatLines  int     `yaml:"lat_lines"`
	LonLines  int     `yaml:"lon_lines"`
	CircleRes int     `yaml:"circle_res"`
	AxisLen   float64 `yaml:"axis_len"`
}

// Camera places the viewer. Focal is the focal length in pixels at the
// configured window height; it fixes the vertical field of view.
type Camera struct {
	Distance     float64 `yaml:"distance"`
	Focal        float64 `yaml:"focal"`
	Orthographic bool    `yaml:"orthographic"`
}

type Control struct {
	CoarseDeg  float64 `yaml:"coarse_deg"`
	FineDeg    float64 `yaml:"fine_deg"`
	Hemisphere string  `yaml:"hemisphere"`
	OrbitDeg   float64 `yaml:"orbit_deg"`
	ZoomStep   float64 `yaml:"zoom_step"`
}

type Marker struct {
	Size  float64 `yaml:"size"`
	Solid bool    `yaml:"solid"`
}

type Colors struct {
	Background RGB `yaml:"background"`
	Wire       RGB `yaml:"wire"`
	AxisX      RGB `yaml:"axis_x"`
	AxisY      RGB `yaml:"axis_y"`
	AxisZ      RGB `yaml:"axis_z"`
	Point      RGB `yaml:"point"`
	Text       RGB `yaml:"text"`
}

type Snapshot struct {
	Path  string `yaml:"path"`
	Scale int    `yaml:"scale"`
}

// Config is the full navigator configuration.
type Config struct {
	Window   Window   `yaml:"window"`
	Sphere   Sphere   `yaml:"sphere"`
	Camera   Camera   `yaml:"camera"`
	Control  Control  `yaml:"control"`
	Marker   Marker   `yaml:"marker"`
	Colors   Colors   `yaml:"colors"`
	Snapshot Snapshot `yaml:"snapshot"`
}

// Default returns the built-in configuration. The framebuffer is half the
// 1000x700 reference window and is shown at scale 2, so the focal length is
// halved too.
func Default() Config {
	return Config{
		Window: Window{Width: 500, Height: 350, Scale: 2, TPS: 60, Title: "Sphere Navigator"},
		Sphere: Sphere{Radius: 2, LatLines: 12, LonLines: 12, CircleRes: 64, AxisLen: 3},
		Camera: Camera{Distance: 8, Focal: 450},
		Control: Control{
			CoarseDeg: 6,
			FineDeg:   1.5,
			OrbitDeg:  5,
			ZoomStep:  0.5,
		},
		Marker: Marker{Size: 0.08},
		Colors: Colors{
			Background: RGB{14, 18, 24},
			Wire:       RGB{80, 100, 140},
			AxisX:      RGB{220, 80, 80},
			AxisY:      RGB{80, 220, 120},
			AxisZ:      RGB{120, 160, 255},
			Point:      RGB{255, 230, 90},
			Text:       RGB{210, 220, 230},
		},
		Snapshot: Snapshot{Path: "spherenav.webp", Scale: 1},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document leaves out.
// Unknown keys are rejected.
func Parse(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Hemisphere returns the configured start-up constraint.
func (c Config) Hemisphere() (orient.Hemisphere, error) {
	h, ok := orient.ParseHemisphere(c.Control.Hemisphere)
	if !ok {
		return orient.HemisphereNone, fmt.Errorf("%w: unknown hemisphere %q", ErrInvalid, c.Control.Hemisphere)
	}
	return h, nil
}

// Validate rejects settings the navigator cannot run with.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		bad("window scale %d", c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		bad("window tps %d", c.Window.TPS)
	}
	if c.Sphere.Radius <= 0 {
		bad("sphere radius %g", c.Sphere.Radius)
	}
	if c.Sphere.LatLines < 2 || c.Sphere.LonLines < 1 || c.Sphere.CircleRes < 3 {
		bad("sphere lines lat=%d lon=%d res=%d", c.Sphere.LatLines, c.Sphere.LonLines, c.Sphere.CircleRes)
	}
	// Line meshes index with uint16.
	if n := sphereVertexCount(c.Sphere); n > 0xFFFF {
		bad("sphere needs %d vertices", n)
	}
	if c.Sphere.AxisLen <= 0 {
		bad("axis length %g", c.Sphere.AxisLen)
	}
	if c.Camera.Distance <= c.Sphere.Radius {
		bad("camera distance %g inside sphere radius %g", c.Camera.Distance, c.Sphere.Radius)
	}
	if c.Camera.Focal <= 0 {
		bad("camera focal %g", c.Camera.Focal)
	}
	if c.Control.CoarseDeg <= 0 || c.Control.FineDeg <= 0 || c.Control.FineDeg >= c.Control.CoarseDeg {
		bad("steps coarse=%g fine=%g", c.Control.CoarseDeg, c.Control.FineDeg)
	}
	if c.Control.OrbitDeg < 0 || c.Control.ZoomStep < 0 {
		bad("view steps orbit=%g zoom=%g", c.Control.OrbitDeg, c.Control.ZoomStep)
	}
	if _, err := c.Hemisphere(); err != nil {
		errs = append(errs, err)
	}
	if c.Marker.Size <= 0 {
		bad("marker size %g", c.Marker.Size)
	}
	if c.Snapshot.Scale <= 0 {
		bad("snapshot scale %d", c.Snapshot.Scale)
	}
	return errors.Join(errs...)
}

func sphereVertexCount(s Sphere) int {
	return (s.LatLines-1)*s.CircleRes + s.LonLines*(s.CircleRes+1)
}
