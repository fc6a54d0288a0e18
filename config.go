// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"os"

	"github.com/gogpu/editor/compositor"
	"github.com/gogpu/editor/scene"
	"gopkg.in/yaml.v3"
)

// maxConfigSize bounds the config files LoadConfig will read.
const maxConfigSize = 1 << 20

// Config is the file form of an editor layout and its renderer settings.
//
// Example:
//
//	window:
//	  title: editor
//	  width: 800
//	  height: 600
//	background: black
//	arena:
//	  vertices: 4096
//	  indices: 6144
//	layers:
//	  - name: gutter
//	    elements:
//	      - shape: rectangle
//	        anchor: {kind: pixel, x: 20, y: 300}
//	        width: 40
//	        height: 600
//	        color: dimgray
type Config struct {
	Window     WindowConfig  `yaml:"window"`
	Background string        `yaml:"background"`
	Arena      ArenaConfig   `yaml:"arena"`
	SPIRV      bool          `yaml:"spirv"`
	Layers     []LayerConfig `yaml:"layers"`
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

// ArenaConfig sizes the renderer's buffer arena. Zero keeps the default.
type ArenaConfig struct {
	Vertices uint32 `yaml:"vertices"`
	Indices  uint32 `yaml:"indices"`
}

// LayerConfig is one compositor layer.
type LayerConfig struct {
	Name     string          `yaml:"name"`
	Elements []ElementConfig `yaml:"elements"`
}

// ElementConfig is one compositor element. Shape is "rectangle" or
// "square"; Color is a CSS color name.
type ElementConfig struct {
	Shape  string       `yaml:"shape"`
	Anchor AnchorConfig `yaml:"anchor"`
	Width  float32      `yaml:"width"`
	Height float32      `yaml:"height"`
	Color  string       `yaml:"color"`
}

// AnchorConfig is the file form of compositor.Position.
type AnchorConfig struct {
	Kind string `yaml:"kind"`
	X    uint32 `yaml:"x"`
	Y    uint32 `yaml:"y"`
}

// DefaultConfig returns the built-in layout: a gutter along the left
// edge, a marker on the right edge and a cursor block in the middle of an
// 800x600 window.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "editor",
			Width:  800,
			Height: 600,
		},
		Background: "black",
		Arena: ArenaConfig{
			Vertices: DefaultVertexCapacity,
			Indices:  DefaultIndexCapacity,
		},
		Layers: []LayerConfig{
			{
				Name: "gutter",
				Elements: []ElementConfig{
					{Shape: "rectangle", Anchor: AnchorConfig{Kind: "pixel", X: 20, Y: 300}, Width: 40, Height: 600, Color: "dimgray"},
				},
			},
			{
				Name: "markers",
				Elements: []ElementConfig{
					{Shape: "square", Anchor: AnchorConfig{Kind: "end", Y: 300}, Width: 32, Color: "steelblue"},
				},
			},
			{
				Name: "cursor",
				Elements: []ElementConfig{
					{Shape: "rectangle", Anchor: AnchorConfig{Kind: "pixel", X: 400, Y: 300}, Width: 10, Height: 20, Color: "white"},
				},
			},
		},
	}
}

// LoadConfig reads a YAML config from path. Fields missing from the file
// keep their DefaultConfig values; a layers list in the file replaces the
// default layers.
func LoadConfig(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("editor: stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("editor: config %s too large (%d bytes)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("editor: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("editor: %s: %w", path, err)
	}
	Logger().Info("loaded config", "path", path, "layers", len(cfg.Layers))
	return cfg, nil
}

// ParseConfig decodes YAML config data over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid color, shape or anchor name.
func (c Config) Validate() error {
	if _, err := c.background(); err != nil {
		return err
	}
	_, err := c.layers()
	return err
}

// Options returns the renderer options described by the config.
func (c Config) Options() ([]Option, error) {
	bg, err := c.background()
	if err != nil {
		return nil, err
	}
	opts := []Option{WithClearColor(bg), WithSPIRV(c.SPIRV)}
	if c.Arena.Vertices > 0 {
		opts = append(opts, WithVertexCapacity(c.Arena.Vertices))
	}
	if c.Arena.Indices > 0 {
		opts = append(opts, WithIndexCapacity(c.Arena.Indices))
	}
	return opts, nil
}

// Compositor builds a compositor holding the configured layers.
func (c Config) Compositor() (*compositor.Compositor, error) {
	layers, err := c.BuildLayers()
	if err != nil {
		return nil, err
	}
	return compositor.New(layers...), nil
}

// BuildLayers resolves the configured layers. Unnamed layers are named
// after their index.
func (c Config) BuildLayers() ([]compositor.Layer, error) {
	return c.layers()
}

func (c Config) background() (scene.Color, error) {
	if c.Background == "" {
		return scene.Black, nil
	}
	bg, err := scene.Named(c.Background)
	if err != nil {
		return scene.Color{}, fmt.Errorf("background: %w", err)
	}
	return bg, nil
}

func (c Config) layers() ([]compositor.Layer, error) {
	layers := make([]compositor.Layer, 0, len(c.Layers))
	for li, lc := range c.Layers {
		name := lc.Name
		if name == "" {
			name = fmt.Sprintf("layer%d", li)
		}
		layer := compositor.Layer{Name: name, Elements: make([]compositor.Element, 0, len(lc.Elements))}
		for ei, ec := range lc.Elements {
			e, err := ec.element()
			if err != nil {
				return nil, fmt.Errorf("layer %q element %d: %w", name, ei, err)
			}
			layer.Elements = append(layer.Elements, e)
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

func (ec ElementConfig) element() (compositor.Element, error) {
	kind, err := scene.ParseShapeKind(ec.Shape)
	if err != nil {
		return compositor.Element{}, err
	}
	anchor, err := ec.Anchor.position()
	if err != nil {
		return compositor.Element{}, err
	}
	col := scene.White
	if ec.Color != "" {
		if col, err = scene.Named(ec.Color); err != nil {
			return compositor.Element{}, err
		}
	}
	return compositor.Element{
		Shape:  kind,
		Anchor: anchor,
		Width:  ec.Width,
		Height: ec.Height,
		Color:  col,
	}, nil
}

func (ac AnchorConfig) position() (compositor.Position, error) {
	kind, err := compositor.ParsePositionKind(ac.Kind)
	if err != nil {
		return compositor.Position{}, err
	}
	return compositor.Position{Kind: kind, X: ac.X, Y: ac.Y}, nil
}
