package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/retrocube/pkg/control"
	"github.com/taigrr/retrocube/pkg/math3d"
	"github.com/taigrr/retrocube/pkg/render"
	"github.com/taigrr/retrocube/pkg/scene"
)

// action is a viewer command decoded from a key press.
type action int

const (
	actNone action = iota
	actQuit
	actBox
	actSphere
	actNextMaterial
	actNextLighting
	actOrbitLeft
	actOrbitRight
	actOrbitUp
	actOrbitDown
	actZoomIn
	actZoomOut
	actImpulse
	actToggleStatic
	actQualityFull
	actQualityHalf
	actQualityQuarter
	actQualityEighth
)

const (
	orbitStep   = 5 * math.Pi / 180
	zoomStep    = 0.25
	minDistance = 0.5
	maxDistance = 20
	impulse     = 3.0 // Radians per second
)

var (
	materialTypes = []string{scene.MaterialChecker, scene.MaterialFlat}
	lightingTypes = []string{scene.LightingDiffuse, scene.LightingUnlit}
)

func keyAction(ev uv.KeyPressEvent) action {
	switch {
	case ev.MatchString("escape", "ctrl+c", "q"):
		return actQuit
	case ev.MatchString("b"):
		return actBox
	case ev.MatchString("s"):
		return actSphere
	case ev.MatchString("m"):
		return actNextMaterial
	case ev.MatchString("l"):
		return actNextLighting
	case ev.MatchString("left"):
		return actOrbitLeft
	case ev.MatchString("right"):
		return actOrbitRight
	case ev.MatchString("up"):
		return actOrbitUp
	case ev.MatchString("down"):
		return actOrbitDown
	case ev.MatchString("+", "="):
		return actZoomIn
	case ev.MatchString("-", "_"):
		return actZoomOut
	case ev.MatchString("space"):
		return actImpulse
	case ev.MatchString("p"):
		return actToggleStatic
	case ev.MatchString("1"):
		return actQualityFull
	case ev.MatchString("2"):
		return actQualityHalf
	case ev.MatchString("3"):
		return actQualityQuarter
	case ev.MatchString("4"):
		return actQualityEighth
	}
	return actNone
}

// viewer is the interactive scene state. It is only touched by the frame
// loop; input arrives as commands applied between frames.
type viewer struct {
	cfg      scene.Config
	r        *render.Renderer
	orbit    *control.Orbit
	spin     *control.Spin
	quality  control.Quality
	material int // Index into materialTypes
	lighting int // Index into lightingTypes

	width, height int // Full quality framebuffer size
}

func newViewer(cfg scene.Config, fps, width, height int) (*viewer, error) {
	r, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	v := &viewer{
		cfg:     cfg,
		r:       r,
		orbit:   cfg.BuildOrbit(),
		spin:    cfg.BuildSpin(fps),
		quality: cfg.Render.Quality,
	}
	for i, name := range materialTypes {
		if name == cfg.Material.Type {
			v.material = i
		}
	}
	for i, name := range lightingTypes {
		if name == cfg.Light.Type {
			v.lighting = i
		}
	}
	v.resize(width, height)
	return v, nil
}

// resize sets the full quality size and reallocates the render target at the
// current quality.
func (v *viewer) resize(width, height int) {
	v.width, v.height = max(width, 1), max(height, 1)
	v.r.Resize(v.quality.Size(v.width, v.height))
}

// apply runs one command. It reports false when the viewer should quit.
func (v *viewer) apply(a action) (bool, error) {
	switch a {
	case actQuit:
		return false, nil
	case actBox, actSphere:
		shape := scene.ShapeBox
		if a == actSphere {
			shape = scene.ShapeSphere
		}
		rc, err := v.cfg.BuildShape(shape)
		if err != nil {
			return false, err
		}
		v.cfg.Object.Shape = shape
		v.r.SetRaycaster(rc)
	case actNextMaterial:
		v.material = (v.material + 1) % len(materialTypes)
		m, err := v.cfg.BuildMaterialType(materialTypes[v.material])
		if err != nil {
			return false, err
		}
		v.r.SetMaterial(m)
	case actNextLighting:
		v.lighting = (v.lighting + 1) % len(lightingTypes)
		l, err := v.cfg.BuildLightingType(lightingTypes[v.lighting])
		if err != nil {
			return false, err
		}
		v.r.SetLighting(l)
	case actOrbitLeft:
		v.orbit.Rotate(0, -orbitStep)
	case actOrbitRight:
		v.orbit.Rotate(0, orbitStep)
	case actOrbitUp:
		v.orbit.Rotate(orbitStep, 0)
	case actOrbitDown:
		v.orbit.Rotate(-orbitStep, 0)
	case actZoomIn:
		v.orbit.Zoom(-zoomStep, minDistance, maxDistance)
	case actZoomOut:
		v.orbit.Zoom(zoomStep, minDistance, maxDistance)
	case actImpulse:
		v.spin.Impulse(math3d.V3(
			(rand.Float32()-0.5)*impulse,
			(rand.Float32()-0.5)*impulse,
			(rand.Float32()-0.5)*impulse,
		))
	case actToggleStatic:
		v.spin.Static = !v.spin.Static
	case actQualityFull, actQualityHalf, actQualityQuarter, actQualityEighth:
		v.quality = control.Quality(a - actQualityFull)
		v.resize(v.width, v.height)
	}
	return true, nil
}

// frame advances the animation by dt seconds and renders.
func (v *viewer) frame(dt float32) {
	v.spin.Update(dt)
	v.spin.Apply(v.r.Raycaster().Transform())
	v.orbit.Apply(v.r.Camera())
	v.r.Render()
}

// present returns the last frame scaled back up to the full quality size.
func (v *viewer) present() *render.Framebuffer {
	fb := v.r.Framebuffer()
	factor := int(1 / v.quality.Scale())
	if factor <= 1 {
		return fb
	}
	return render.FromImage(render.Upscale(fb.ToImage(), factor))
}

type resizeEvent struct{ width, height int }

// sendCommand queues cmd for the frame loop. It gives up and reports false
// once ctx is done.
func sendCommand(ctx context.Context, cmds chan<- any, cmd any) bool {
	select {
	case cmds <- cmd:
		return true
	case <-ctx.Done():
		return false
	}
}

func view(cfg scene.Config, fps int) error {
	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	v, err := newViewer(cfg, fps, fbWidth, fbHeight)
	if err != nil {
		cleanup()
		return err
	}

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input is decoded here and applied by the frame loop.
	cmds := make(chan any, 64)
	go func() {
		for ev := range term.Events() {
			var cmd any
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				cmd = resizeEvent{ev.Width, ev.Height}
			case uv.KeyPressEvent:
				if a := keyAction(ev); a != actNone {
					cmd = a
				}
			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					cmd = actZoomIn
				case uv.MouseWheelDown:
					cmd = actZoomOut
				}
			}
			if cmd != nil && !sendCommand(ctx, cmds, cmd) {
				return
			}
		}
	}()

	targetDuration := time.Second / time.Duration(fps)
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

	drain:
		for {
			select {
			case cmd := <-cmds:
				switch cmd := cmd.(type) {
				case resizeEvent:
					term.Erase()
					term.Resize(cmd.width, cmd.height)
					termRenderer = render.NewTerminalRenderer(term, cmd.width, cmd.height)
					v.resize(termRenderer.FramebufferSize())
				case action:
					ok, err := v.apply(cmd)
					if err != nil {
						cleanup()
						return err
					}
					if !ok {
						cleanup()
						return nil
					}
				}
			default:
				break drain
			}
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		v.frame(float32(dt))

		// Display
		termRenderer.Render(v.present())
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
