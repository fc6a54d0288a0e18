package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/editor"
	"github.com/gogpu/editor/compositor"
)

// configWatcher reloads the layer layout when the config file changes.
// Window, arena and shader settings are read once at startup; only the
// layers are replaced on reload.
type configWatcher struct {
	path   string
	comp   *compositor.Compositor
	redraw func()
	w      *fsnotify.Watcher
}

// newConfigWatcher watches the directory holding path, so editors that
// save by rename are still seen.
func newConfigWatcher(path string, comp *compositor.Compositor, redraw func()) (*configWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}
	return &configWatcher{path: abs, comp: comp, redraw: redraw, w: w}, nil
}

// run handles file events until ctx is done, then closes the watcher.
func (cw *configWatcher) run(ctx context.Context) {
	defer cw.w.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-cw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				cw.reload()
			}
		case err, ok := <-cw.w.Errors:
			if !ok {
				return
			}
			editor.Logger().Warn("config watcher", "err", err)
		}
	}
}

// reload swaps in the layers from the file. A config that fails to load
// leaves the current layout on screen.
func (cw *configWatcher) reload() {
	cfg, err := editor.LoadConfig(cw.path)
	if err != nil {
		editor.Logger().Warn("config reload failed", "path", cw.path, "err", err)
		return
	}
	layers, err := cfg.BuildLayers()
	if err != nil {
		editor.Logger().Warn("config reload failed", "path", cw.path, "err", err)
		return
	}
	cw.comp.SetLayers(layers...)
	editor.Logger().Info("layout reloaded", "path", cw.path, "layers", len(layers))
	cw.redraw()
}
