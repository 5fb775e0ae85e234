// retrocube - Terminal Raycaster
// Renders a single box or sphere with one ray per pixel: interactively in the
// terminal, to an image file, or as a websocket frame stream.
//
// Controls:
//
//	B/S         - Box / sphere
//	M           - Cycle material (checker, flat)
//	L           - Cycle lighting (diffuse, unlit)
//	Arrows      - Orbit the camera
//	+/-         - Move the camera closer / further
//	Space       - Apply random impulse
//	P           - Toggle spinning
//	1-4         - Quality (full, half, quarter, eighth)
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/taigrr/retrocube/pkg/control"
	"github.com/taigrr/retrocube/pkg/scene"
	"github.com/taigrr/retrocube/pkg/stream"
)

var (
	configPath = flag.String("config", "", "YAML scene file")
	gltfPath   = flag.String("gltf", "", "glTF/GLB file to take the camera and object from")
	outPath    = flag.String("o", "", "Render one frame to this file (.png, .webp, .tga) and exit")
	upscale    = flag.Int("upscale", 1, "Integer upscale factor for -o")
	serveAddr  = flag.String("serve", "", "Stream frames to websocket clients at ADDR/frames")
	codecName  = flag.String("codec", "zstd", "Frame codec for -serve (raw, snappy, zstd)")
	targetFPS  = flag.Int("fps", 30, "Target FPS")
	verbose    = flag.Bool("v", false, "Debug logging")
)

// Scene overrides. Zero values keep the scene's setting.
var (
	width    = flag.Int("width", 0, "Output width for -o and -serve")
	height   = flag.Int("height", 0, "Output height for -o and -serve")
	workers  = flag.Int("workers", -1, "Render goroutines (0 = one per CPU)")
	shape    = flag.String("shape", "", "Object shape (box, sphere)")
	material = flag.String("material", "", "Material (checker, flat)")
	lighting = flag.String("light", "", "Lighting (diffuse, unlit)")
	quality  = flag.String("quality", "", "Viewer quality (full, half, quarter, eighth)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "retrocube - Terminal Raycaster\n\n")
		fmt.Fprintf(os.Stderr, "Usage: retrocube [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  B/S         - Box / sphere\n")
		fmt.Fprintf(os.Stderr, "  M           - Cycle material\n")
		fmt.Fprintf(os.Stderr, "  L           - Cycle lighting\n")
		fmt.Fprintf(os.Stderr, "  Arrows      - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Camera distance\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  P           - Toggle spinning\n")
		fmt.Fprintf(os.Stderr, "  1-4         - Quality\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fps := max(*targetFPS, 1)

	switch {
	case *outPath != "":
		return snapshot(cfg, *outPath, *upscale)

	case *serveAddr != "":
		codec, err := stream.ParseCodec(*codecName)
		if err != nil {
			return err
		}
		ln, err := net.Listen("tcp", *serveAddr)
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, ln, codec, fps, newLogger(*verbose))

	default:
		return view(cfg, fps)
	}
}

// loadConfig layers defaults, the scene file, the glTF document and flags.
func loadConfig() (scene.Config, error) {
	cfg := scene.Default()
	if *configPath != "" {
		var err error
		if cfg, err = scene.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	if *gltfPath != "" {
		if err := scene.ImportGLTF(*gltfPath, &cfg); err != nil {
			return cfg, fmt.Errorf("import %s: %w", *gltfPath, err)
		}
	}

	o := overrides{
		width:    *width,
		height:   *height,
		workers:  *workers,
		shape:    *shape,
		material: *material,
		lighting: *lighting,
		quality:  *quality,
	}
	if err := o.apply(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

type overrides struct {
	width, height int
	workers       int // Negative keeps the scene's value
	shape         string
	material      string
	lighting      string
	quality       string
}

func (o overrides) apply(cfg *scene.Config) error {
	if o.width > 0 {
		cfg.Render.Width = o.width
	}
	if o.height > 0 {
		cfg.Render.Height = o.height
	}
	if o.workers >= 0 {
		cfg.Render.Workers = o.workers
	}
	if o.shape != "" {
		cfg.Object.Shape = o.shape
	}
	if o.material != "" {
		cfg.Material.Type = o.material
	}
	if o.lighting != "" {
		cfg.Light.Type = o.lighting
	}
	if o.quality != "" {
		q, err := control.ParseQuality(o.quality)
		if err != nil {
			return err
		}
		cfg.Render.Quality = q
	}
	return nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
