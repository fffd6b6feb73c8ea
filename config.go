package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/plot/recording"
)

// Config holds session defaults read from a TOML file:
//
//	device = "svg"
//	output = "plots.svg"
//	geometry = "1024x768"
//	dpi = 96.0
//	background = "#ffffff"
//	cmap0 = ["#ffffff", "#000000"]
//	px = 2
//	py = 2
//
// Files ending in .yaml or .yml are read as YAML with the same keys.
// Zero values leave the stream setting unchanged.
type Config struct {
	Device     string   `toml:"device" yaml:"device"`
	Output     string   `toml:"output" yaml:"output"`
	Geometry   string   `toml:"geometry" yaml:"geometry"`
	DPI        float64  `toml:"dpi" yaml:"dpi"`
	Background string   `toml:"background" yaml:"background"`
	Colors     int      `toml:"ncol0" yaml:"ncol0"`
	Palette    []string `toml:"cmap0" yaml:"cmap0"`
	Px         int      `toml:"px" yaml:"px"`
	Py         int      `toml:"py" yaml:"py"`
	Width      float64  `toml:"width" yaml:"width"`
	Verbose    bool     `toml:"verbose" yaml:"verbose"`
	Debug      bool     `toml:"debug" yaml:"debug"`
}

// LoadConfig reads a TOML or YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("plot: read config: %w", err)
	}
	parse := ParseConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAMLConfig
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (%s)", err, path)
	}
	return cfg, nil
}

// ParseConfig decodes TOML config data. Unknown keys are errors.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: config: %v", ErrBadOption, err)
	}
	return cfg, nil
}

// ParseYAMLConfig decodes YAML config data. Unknown keys are errors.
func ParseYAMLConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: config: %v", ErrBadOption, err)
	}
	return cfg, nil
}

// Apply copies the non-zero fields of cfg into s.
func (cfg Config) Apply(s *Stream) error {
	if cfg.Device != "" {
		s.device = cfg.Device
	}
	if cfg.Output != "" {
		s.output = cfg.Output
	}
	if cfg.Geometry != "" {
		w, h, err := parseGeometry(cfg.Geometry)
		if err != nil {
			return err
		}
		s.widthPx, s.heightPx = w, h
	}
	if cfg.DPI < 0 {
		return fmt.Errorf("%w: dpi %v", ErrBadOption, cfg.DPI)
	}
	if cfg.DPI > 0 {
		s.dpi = cfg.DPI
	}
	if cfg.Colors < 0 {
		return fmt.Errorf("%w: ncol0 %d", ErrBadOption, cfg.Colors)
	}
	if cfg.Colors > 0 {
		s.cmap0 = s.cmap0.Resize(cfg.Colors)
	}
	if len(cfg.Palette) > 0 {
		p, err := ParsePalette(strings.Join(cfg.Palette, ","), s.cmap0)
		if err != nil {
			return err
		}
		s.cmap0 = p
	}
	if cfg.Background != "" {
		c, err := recording.ParseHex(cfg.Background)
		if err != nil {
			return fmt.Errorf("%w: background: %v", ErrBadColor, err)
		}
		s.cmap0[0] = c
	}
	if cfg.Px < 0 || cfg.Py < 0 {
		return fmt.Errorf("%w: subpages %dx%d", ErrBadOption, cfg.Px, cfg.Py)
	}
	if cfg.Px > 0 {
		s.nx = cfg.Px
	}
	if cfg.Py > 0 {
		s.ny = cfg.Py
	}
	if cfg.Width < 0 {
		return fmt.Errorf("%w: width %v", ErrBadStyle, cfg.Width)
	}
	if cfg.Width > 0 {
		s.width = cfg.Width
	}
	s.verbose = s.verbose || cfg.Verbose
	s.debug = s.debug || cfg.Debug
	return nil
}

// parseGeometry reads "WxH", ignoring a trailing "+X+Y" window offset.
func parseGeometry(g string) (w, h int, err error) {
	size := g
	if i := strings.IndexAny(size, "+-"); i > 0 {
		size = size[:i]
	}
	ws, hs, ok := strings.Cut(strings.ToLower(size), "x")
	if ok {
		w, err = strconv.Atoi(ws)
		if err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: geometry %q, want WxH", ErrBadOption, g)
	}
	return w, h, nil
}
