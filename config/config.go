// Package config loads the display and asset settings for the table. A
// cccg.toml next to the binary can override the defaults; command line flags
// override both.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Display struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	FrameRate  int    `toml:"frame_rate"`
	Fullscreen bool   `toml:"fullscreen"`
	Caption    string `toml:"caption"`
}

type Assets struct {
	Root   string `toml:"root"`
	Fonts  string `toml:"fonts"`
	Images string `toml:"images"`
	Audio  string `toml:"audio"`
}

type Config struct {
	Display Display `toml:"display"`
	Assets  Assets  `toml:"assets"`
}

func Default() Config {
	return Config{
		Display: Display{
			Width:     1280,
			Height:    720,
			FrameRate: 60,
			Caption:   "CCCG - Collectible Children Card Game",
		},
		Assets: Assets{
			Root:   "assets",
			Fonts:  "fonts",
			Images: "images",
			Audio:  "audio",
		},
	}
}

// Load reads path as a TOML overlay over the defaults. A missing file is not
// an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func (a Assets) FontPath(name string) string {
	return filepath.Join(a.Root, a.Fonts, name)
}

func (a Assets) ImagePath(name string) string {
	return filepath.Join(a.Root, a.Images, name)
}

func (a Assets) AudioPath(name string) string {
	return filepath.Join(a.Root, a.Audio, name)
}

// EnsureDirectories creates the asset tree when it is missing.
func (a Assets) EnsureDirectories() error {
	for _, dir := range []string{
		a.Root,
		filepath.Join(a.Root, a.Fonts),
		filepath.Join(a.Root, a.Images),
		filepath.Join(a.Root, a.Audio),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating asset directory %s: %w", dir, err)
		}
	}
	return nil
}
