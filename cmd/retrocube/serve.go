package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/taigrr/retrocube/pkg/scene"
	"github.com/taigrr/retrocube/pkg/stream"
)

// serve renders the spinning object at fps and publishes every frame to the
// websocket clients connected to ln at /frames until ctx is done.
func serve(ctx context.Context, cfg scene.Config, ln net.Listener, codec stream.Codec, fps int, log *slog.Logger) error {
	defer ln.Close()

	r, err := cfg.Build()
	if err != nil {
		return err
	}
	spin := cfg.BuildSpin(fps)

	hub := stream.NewHub(codec, log)
	mux := http.NewServeMux()
	mux.Handle("/frames", hub)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	log.Info("streaming frames",
		"addr", ln.Addr().String(), "path", "/frames", "codec", codec.String(),
		"size", fmt.Sprintf("%dx%d", cfg.Render.Width, cfg.Render.Height), "fps", fps)

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	shutdown := func() {
		hub.Close()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			shutdown()
			return nil

		case err := <-errc:
			shutdown()
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve: %w", err)

		case now := <-ticker.C:
			dt := min(now.Sub(lastFrame).Seconds(), 0.1)
			lastFrame = now

			spin.Update(float32(dt))
			spin.Apply(r.Raycaster().Transform())
			if hub.Clients() == 0 {
				continue
			}

			start := time.Now()
			r.Render()
			if err := hub.Publish(r.Framebuffer()); err != nil {
				log.Warn("publish failed", "err", err)
				continue
			}
			log.Debug("frame published", "render", time.Since(start), "clients", hub.Clients())
		}
	}
}
