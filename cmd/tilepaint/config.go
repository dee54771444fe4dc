package main

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the editor's YAML configuration (tilepaint.yaml). Every
// field has a default so the editor runs without a config file.
type Config struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
	TileSize int `yaml:"tile_size"`
	Grid     struct {
		Cols int `yaml:"cols"`
		Rows int `yaml:"rows"`
	} `yaml:"grid"`
	PaletteManifest string `yaml:"palette"`
	AssetsDir       string `yaml:"assets_dir"`
	MacrosDir       string `yaml:"macros_dir"`
	DocumentsDir    string `yaml:"documents_dir"`
}

func defaultConfig() Config {
	var c Config
	c.Window.Width = 1280
	c.Window.Height = 800
	c.TileSize = 32
	c.Grid.Cols = 30
	c.Grid.Rows = 20
	c.PaletteManifest = "palette.yaml"
	c.AssetsDir = "assets"
	c.MacrosDir = "macros"
	c.DocumentsDir = "documents"
	return c
}

// loadConfig reads path, falling back to defaults when the file does not
// exist. Individual zero fields fall back too, so partial configs work.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	d := defaultConfig()
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.TileSize <= 0 {
		c.TileSize = d.TileSize
	}
	if c.Grid.Cols <= 0 {
		c.Grid.Cols = d.Grid.Cols
	}
	if c.Grid.Rows <= 0 {
		c.Grid.Rows = d.Grid.Rows
	}
	if c.PaletteManifest == "" {
		c.PaletteManifest = d.PaletteManifest
	}
	if c.AssetsDir == "" {
		c.AssetsDir = d.AssetsDir
	}
	if c.MacrosDir == "" {
		c.MacrosDir = d.MacrosDir
	}
	if c.DocumentsDir == "" {
		c.DocumentsDir = d.DocumentsDir
	}
	return c, nil
}
