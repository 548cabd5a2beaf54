package main

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/phanxgames/atlasmap"
)

const (
	defaultTitle       = "atlasmap viewer"
	defaultWidth       = 640
	defaultHeight      = 480
	defaultZoom        = 1.0
	defaultScrollSpeed = 240.0 // screen pixels per second
)

// viewConfig is the root of a mapview .hcl file:
//
//	map    = "assets/level1"
//	format = "json"
//	debug  = false
//	screenshot_dir = "shots"
//	window {
//	  title    = "Level 1"
//	  width    = 640
//	  height   = 480
//	  show_fps = true
//	}
//	camera {
//	  zoom         = 2
//	  scroll_speed = 240
//	}
type viewConfig struct {
	Map    string        `hcl:"map"`
	Format string        `hcl:"format,optional"`
	Debug  bool          `hcl:"debug,optional"`
	Shots  string        `hcl:"screenshot_dir,optional"`
	Window *windowConfig `hcl:"window,block"`
	Camera *cameraConfig `hcl:"camera,block"`
}

type windowConfig struct {
	Title   string `hcl:"title,optional"`
	Width   int    `hcl:"width,optional"`
	Height  int    `hcl:"height,optional"`
	ShowFPS bool   `hcl:"show_fps,optional"`
}

type cameraConfig struct {
	Zoom        float64 `hcl:"zoom,optional"`
	ScrollSpeed float64 `hcl:"scroll_speed,optional"`
}

// parseConfig decodes an HCL config and fills in defaults. A relative map
// path is resolved against the directory of filename.
func parseConfig(src []byte, filename string) (*viewConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}

	var cfg viewConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}

	if cfg.Map == "" {
		return nil, fmt.Errorf("config %s: map must not be empty", filename)
	}
	if !filepath.IsAbs(cfg.Map) {
		cfg.Map = filepath.Join(filepath.Dir(filename), cfg.Map)
	}

	if cfg.Shots != "" && !filepath.IsAbs(cfg.Shots) {
		cfg.Shots = filepath.Join(filepath.Dir(filename), cfg.Shots)
	}

	switch cfg.Format {
	case "", "json":
		cfg.Format = "json"
	case "yaml":
	default:
		return nil, fmt.Errorf("config %s: unknown format %q (want json or yaml)", filename, cfg.Format)
	}

	if cfg.Window == nil {
		cfg.Window = &windowConfig{}
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = defaultTitle
	}
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = defaultWidth
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = defaultHeight
	}

	if cfg.Camera == nil {
		cfg.Camera = &cameraConfig{}
	}
	if cfg.Camera.Zoom <= 0 {
		cfg.Camera.Zoom = defaultZoom
	}
	if cfg.Camera.ScrollSpeed <= 0 {
		cfg.Camera.ScrollSpeed = defaultScrollSpeed
	}

	return &cfg, nil
}

// loader returns the map loader for the configured metadata format.
func (c *viewConfig) loader() *atlasmap.Loader {
	l := &atlasmap.Loader{}
	if c.Format == "yaml" {
		l.Meta = atlasmap.YAMLCodec{}
	}
	return l
}
