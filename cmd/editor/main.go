// Command editor opens a window and renders the editor layout with the GPU.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/editor"
	"github.com/gogpu/gogpu"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML layout file (built-in layout if empty)")
		width      = flag.Int("width", 0, "window width (overrides config)")
		height     = flag.Int("height", 0, "window height (overrides config)")
		spirv      = flag.Bool("spirv", false, "compile shaders to SPIR-V with naga")
		watch      = flag.Bool("watch", false, "reload layers when the config file changes")
		verbose    = flag.Bool("v", false, "verbose (debug) logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	editor.SetLogger(logger)

	if err := run(*configPath, *width, *height, *spirv, *watch); err != nil {
		logger.Error("editor failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, width, height int, spirv, watch bool) error {
	cfg := editor.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = editor.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if width > 0 {
		cfg.Window.Width = uint32(width) //nolint:gosec // checked positive
	}
	if height > 0 {
		cfg.Window.Height = uint32(height) //nolint:gosec // checked positive
	}
	if spirv {
		cfg.SPIRV = true
	}

	comp, err := cfg.Compositor()
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Window.Title).
		WithSize(int(cfg.Window.Width), int(cfg.Window.Height)).
		WithContinuousRender(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	surface := newHostSurface(app)
	var renderer *editor.Renderer

	if watch {
		if configPath == "" {
			return fmt.Errorf("-watch needs -config")
		}
		cw, err := newConfigWatcher(configPath, comp, surface.RequestRedraw)
		if err != nil {
			return err
		}
		go cw.run(ctx)
	}

	app.EventSource().OnResize(func(w, h int) {
		if renderer == nil {
			return
		}
		if err := renderer.Resize(clampDim(w), clampDim(h)); err != nil {
			editor.Logger().Warn("resize failed", "err", err)
		}
	})

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		if renderer == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			r, err := editor.NewRendererFromProvider(provider, surface, comp, opts...)
			if err != nil {
				editor.Logger().Error("create renderer", "err", err)
				app.Quit()
				return
			}
			renderer = r
			if err := renderer.Resize(clampDim(w), clampDim(h)); err != nil {
				editor.Logger().Warn("resize failed", "err", err)
			}
		}
		if d := renderer.Dimensions(); int(d.Width) != w || int(d.Height) != h {
			if err := renderer.Resize(clampDim(w), clampDim(h)); err != nil {
				editor.Logger().Warn("resize failed", "err", err)
			}
		}

		surface.setFrame(dc.SurfaceView())
		if err := renderer.Draw(ctx); err != nil {
			editor.Logger().Error("draw failed", "err", err)
		}
	})

	app.OnClose(func() {
		cancel()
		if renderer != nil {
			renderer.Destroy()
		}
	})

	return app.Run()
}

func clampDim(v int) uint32 {
	if v <= 0 {
		return 1
	}
	return uint32(v) //nolint:gosec // checked positive
}
