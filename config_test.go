package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/editor/compositor"
	"github.com/gogpu/editor/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}

	comp, err := cfg.Compositor()
	if err != nil {
		t.Fatal(err)
	}
	if comp.Layers() != len(cfg.Layers) {
		t.Errorf("Layers() = %d, want %d", comp.Layers(), len(cfg.Layers))
	}
	// Every default element must resolve at the default window size.
	s, err := comp.Scene(compositor.NewWindowDimensions(cfg.Window.Width, cfg.Window.Height))
	if err != nil {
		t.Fatalf("Scene: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Error(err)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
window:
  title: notes
background: navy
arena:
  vertices: 64
layers:
  - name: only
    elements:
      - shape: square
        anchor: {kind: end, y: 10}
        width: 8
        color: Red
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Window.Title != "notes" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("unset width = %d, want default 800", cfg.Window.Width)
	}
	if cfg.Arena.Vertices != 64 || cfg.Arena.Indices != DefaultIndexCapacity {
		t.Errorf("arena = %+v", cfg.Arena)
	}
	if len(cfg.Layers) != 1 || cfg.Layers[0].Name != "only" {
		t.Fatalf("layers = %+v, want the file's single layer", cfg.Layers)
	}

	comp, err := cfg.Compositor()
	if err != nil {
		t.Fatal(err)
	}
	s, err := comp.LayerScene(0, compositor.NewWindowDimensions(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	defer comp.Release(s)
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	if got := s.Data()[0].Color; got != [3]float32{1, 0, 0} {
		t.Errorf("color = %v, want red", got)
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background = "white"
	cfg.Arena = ArenaConfig{Vertices: 10}
	cfg.SPIRV = true

	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.clearColor != scene.White {
		t.Errorf("clearColor = %+v, want white", o.clearColor)
	}
	if o.vertexCapacity != 10 {
		t.Errorf("vertexCapacity = %d, want 10", o.vertexCapacity)
	}
	if o.indexCapacity != DefaultIndexCapacity {
		t.Errorf("zero index capacity should keep default, got %d", o.indexCapacity)
	}
	if !o.spirv {
		t.Error("spirv not applied")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"bad background", "background: notacolor", scene.ErrUnknownColor},
		{"bad element color", "layers: [{elements: [{shape: square, anchor: {kind: pixel}, color: nope}]}]", scene.ErrUnknownColor},
		{"bad shape", "layers: [{elements: [{shape: circle, anchor: {kind: pixel}}]}]", nil},
		{"bad anchor", "layers: [{elements: [{shape: square, anchor: {kind: middle}}]}]", nil},
		{"bad yaml", "window: [", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigUnnamedLayer(t *testing.T) {
	cfg := Config{Layers: []LayerConfig{{}, {Name: "x"}}}
	comp, err := cfg.Compositor()
	if err != nil {
		t.Fatal(err)
	}
	if comp.LayerName(0) != "layer0" || comp.LayerName(1) != "x" {
		t.Errorf("names = %q, %q", comp.LayerName(0), comp.LayerName(1))
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yml")
	if err := os.WriteFile(path, []byte("window:\n  width: 320\n  height: 240\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Window.Width != 320 || cfg.Window.Height != 240 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if len(cfg.Layers) != len(DefaultConfig().Layers) {
		t.Error("layers should keep defaults when absent from the file")
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want ErrNotExist", err)
	}
}

func TestConfigBuildLayers(t *testing.T) {
	layers, err := DefaultConfig().BuildLayers()
	if err != nil {
		t.Fatal(err)
	}
	if len(layers) != 3 || layers[0].Name != "gutter" || layers[2].Name != "cursor" {
		t.Fatalf("layers = %+v", layers)
	}
	if layers[1].Elements[0].Shape != scene.KindSquare {
		t.Errorf("markers shape = %v, want square", layers[1].Elements[0].Shape)
	}

	bad := Config{Layers: []LayerConfig{{Elements: []ElementConfig{{Shape: "circle"}}}}}
	if _, err := bad.BuildLayers(); err == nil {
		t.Error("expected error for unknown shape")
	}
}
