// Package config loads the trawl configuration file. The file is a
// small JSON document; fields are read by path so a partial file only
// overrides what it mentions:
//
//	{
//	  "show_hidden": false,
//	  "keybind_path": "~/.config/trawl/bindings",
//	  "theme": {
//	    "directory": "bright-blue",
//	    "symlink": "cyan",
//	    "status_fg": "#dddddd",
//	    "status_bg": "#264653"
//	  }
//	}
//
// Colors are palette names or hex values; hex values are resolved to
// the nearest of the 16 terminal colors, since the renderer only
// speaks the standard palette.
package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/trawlfm/trawl/internal/renderer"
)

// Theme holds the colors the views draw with.
type Theme struct {
	Directory renderer.Color
	Symlink   renderer.Color
	StatusFg  renderer.Color
	StatusBg  renderer.Color
}

// Config is the resolved application configuration.
type Config struct {
	ShowHidden  bool
	KeybindPath string
	Theme       Theme
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ShowHidden:  false,
		KeybindPath: "",
		Theme: Theme{
			Directory: renderer.ColorBrightBlue,
			Symlink:   renderer.ColorCyan,
			StatusFg:  renderer.ColorBlack,
			StatusBg:  renderer.ColorWhite,
		},
	}
}

// Load reads the configuration at path. A missing file is not an
// error; the defaults apply. A file that exists but does not parse is
// an error, as is an unknown color value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("config: %s: not valid JSON", path)
	}

	cfg := Default()
	doc := gjson.ParseBytes(data)

	if v := doc.Get("show_hidden"); v.Exists() {
		cfg.ShowHidden = v.Bool()
	}
	if v := doc.Get("keybind_path"); v.Exists() {
		cfg.KeybindPath = v.String()
	}

	colorFields := []struct {
		path string
		dst  *renderer.Color
	}{
		{"theme.directory", &cfg.Theme.Directory},
		{"theme.symlink", &cfg.Theme.Symlink},
		{"theme.status_fg", &cfg.Theme.StatusFg},
		{"theme.status_bg", &cfg.Theme.StatusBg},
	}
	for _, f := range colorFields {
		v := doc.Get(f.path)
		if !v.Exists() {
			continue
		}
		c, err := ParseColor(v.String())
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", f.path, err)
		}
		*f.dst = c
	}

	return cfg, nil
}

// WriteDefault writes a fully populated default configuration to path,
// creating a starting point users can edit.
func WriteDefault(path string) error {
	doc := "{}"
	var err error

	set := func(p string, v any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, p, v)
	}

	cfg := Default()
	set("show_hidden", cfg.ShowHidden)
	set("keybind_path", cfg.KeybindPath)
	set("theme.directory", cfg.Theme.Directory.String())
	set("theme.symlink", cfg.Theme.Symlink.String())
	set("theme.status_fg", cfg.Theme.StatusFg.String())
	set("theme.status_bg", cfg.Theme.StatusBg.String())
	if err != nil {
		return fmt.Errorf("config: build default document: %w", err)
	}

	return os.WriteFile(path, []byte(doc+"\n"), 0o644)
}
