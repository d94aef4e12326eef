// Package app runs the sphere navigator on top of a HAL: it owns the
// orientation state, turns key events into state changes, and draws the
// scene and HUD into the framebuffer every frame.
package app

import (
	"errors"
	"fmt"
	"math"

	"spherenav/hal"
	"spherenav/internal/buildinfo"
	"spherenav/internal/config"
	"spherenav/internal/snapshot"
	"spherenav/nav/control"
	"spherenav/nav/orient"
	"spherenav/nav/quarkgl"
)

// Navigator is one running navigator instance.
type Navigator struct {
	cfg config.Config
	log hal.Logger
	fb  hal.Framebuffer
	kbd hal.Keyboard

	state orient.State
	keys  *control.Mapper
	steps control.Steps

	scene *quarkgl.Scene
	ids   sceneIDs
	r     *quarkgl.Renderer
	orbit quarkgl.OrbitController

	events       []control.Event
	wantSnapshot bool
}

// New builds a navigator bound to h.
func New(h hal.HAL, cfg config.Config) (*Navigator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hemi, err := cfg.Hemisphere()
	if err != nil {
		return nil, err
	}
	if h == nil || h.Display() == nil {
		return nil, errors.New("nav: no display")
	}
	fb := h.Display().Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, errors.New("nav: framebuffer must be RGB565")
	}

	n := &Navigator{
		cfg:   cfg,
		log:   h.Logger(),
		fb:    fb,
		state: orient.New(),
		keys:  control.NewMapper(),
		steps: control.StepsFromDegrees(cfg.Control.CoarseDeg, cfg.Control.FineDeg),
	}
	if in := h.Input(); in != nil {
		n.kbd = in.Keyboard()
	}
	n.state.SetHemisphere(hemi)

	n.scene, n.ids = buildScene(cfg)
	n.r = quarkgl.NewRenderer(fb.Width(), fb.Height(), true)
	n.r.ClearColor = rgb(cfg.Colors.Background)
	n.r.Mode = quarkgl.RenderWireframe
	if cfg.Marker.Solid {
		n.r.Mode = quarkgl.RenderSolidFlat
	}

	d := quarkgl.Scalar(cfg.Camera.Distance)
	n.orbit = quarkgl.OrbitController{
		Radius:    d,
		MinRadius: quarkgl.Scalar(cfg.Sphere.Radius) * 1.25,
		MaxRadius: d * 3,
	}

	n.logf("nav: start %dx%d hemisphere=%s build=%s", fb.Width(), fb.Height(), hemi, buildinfo.Short())
	return n, nil
}

// Runner adapts New to the constructor shape the hal runners expect.
// A construction error is returned by the first step.
func Runner(cfg config.Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		n, err := New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return guard(h, n.Step)
	}
}

// State returns a copy of the current orientation.
func (n *Navigator) State() orient.State { return n.state }

// Step runs one frame: input, state update, render, present. It returns
// hal.ErrQuit once a quit key was seen.
func (n *Navigator) Step() error {
	if n.poll() {
		n.logf("nav: quit")
		return hal.ErrQuit
	}

	n.events = n.keys.Frame(n.events[:0])
	for _, ev := range n.events {
		n.apply(ev)
	}

	n.render()
	if err := n.fb.Present(); err != nil {
		return fmt.Errorf("nav: present: %w", err)
	}

	if n.wantSnapshot {
		n.wantSnapshot = false
		n.writeSnapshot()
	}
	return nil
}

// poll drains pending key events and reports whether quit was requested.
func (n *Navigator) poll() bool {
	if n.kbd == nil {
		return false
	}
	ch := n.kbd.Events()
	if ch == nil {
		return false
	}
	for {
		select {
		case ev := <-ch:
			e, ok := n.keys.Handle(ev)
			if !ok {
				continue
			}
			if e.Kind == control.KindQuit {
				return true
			}
			n.apply(e)
		default:
			return false
		}
	}
}

func (n *Navigator) apply(ev control.Event) {
	switch ev.Kind {
	case control.KindRotate:
		n.state.Update(n.steps.Deltas(ev))
	case control.KindReset:
		n.state.Reset()
		n.logf("nav: reset")
	case control.KindConstrain:
		n.state.SetHemisphere(ev.Hemisphere)
		n.logf("nav: hemisphere %s", ev.Hemisphere)
	case control.KindOrbit:
		step := quarkgl.Radians(quarkgl.Scalar(n.cfg.Control.OrbitDeg))
		n.orbit.Rotate(quarkgl.Scalar(ev.Yaw)*step, quarkgl.Scalar(ev.Pitch)*step)
	case control.KindZoom:
		n.orbit.Zoom(quarkgl.Scalar(ev.Zoom) * quarkgl.Scalar(n.cfg.Control.ZoomStep))
	case control.KindToggleMarker:
		if n.r.Mode == quarkgl.RenderWireframe {
			n.r.Mode = quarkgl.RenderSolidFlat
		} else {
			n.r.Mode = quarkgl.RenderWireframe
		}
		n.logf("nav: marker %s", n.r.Mode)
	case control.KindToggleProjection:
		cam := &n.scene.Camera
		if cam.Type == quarkgl.CameraOrtho {
			cam.Type = quarkgl.CameraPerspective
			n.logf("nav: perspective view")
		} else {
			cam.Type = quarkgl.CameraOrtho
			n.logf("nav: orthographic view")
		}
	case control.KindSnapshot:
		n.wantSnapshot = true
	}
}

func (n *Navigator) render() {
	n.orbit.Apply(&n.scene.Camera)
	// Match the ortho view to what perspective shows at the target distance.
	n.scene.Camera.OrthoSize = n.orbit.Radius * quarkgl.Scalar(math.Tan(float64(n.scene.Camera.FOVYRad)/2))

	updatePoint(n.scene, n.ids, n.state, n.cfg.Sphere.Radius, n.cfg.Marker.Size)

	target := &quarkgl.RGB565Target{
		Buf:    n.fb.Buffer(),
		Stride: n.fb.StrideBytes(),
		W:      n.fb.Width(),
		H:      n.fb.Height(),
	}
	n.r.Render(target, n.scene)
	drawHUD(n.fb, n.state, rgb(n.cfg.Colors.Text).RGBA())
}

func (n *Navigator) writeSnapshot() {
	path := n.cfg.Snapshot.Path
	if err := snapshot.Write(path, n.fb, n.cfg.Snapshot.Scale); err != nil {
		n.logf("%v", err)
		return
	}
	n.logf("snapshot: wrote %s", path)
}

func (n *Navigator) logf(format string, args ...any) {
	if n.log == nil {
		return
	}
	n.log.WriteLineString(fmt.Sprintf(format, args...))
}
