package gltest

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileConfig is the on-disk form of Config. Unset keys keep their defaults.
//
//	width = 1280
//	height = 720
//	line_width = 0.002
//	clear_color = [0.9, 0.9, 0.9, 1.0]
//	shader_errors = "fatal"
//	log_level = "debug"
type FileConfig struct {
	Width        *int      `toml:"width"`
	Height       *int      `toml:"height"`
	Title        *string   `toml:"title"`
	LineWidth    *float32  `toml:"line_width"`
	ClearColor   []float32 `toml:"clear_color"`
	ShaderErrors string    `toml:"shader_errors"`
	LogLevel     string    `toml:"log_level"`
}

// LoadConfigFile reads a TOML configuration file.
func LoadConfigFile(path string) (*FileConfig, error) {
	var fc FileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &fc, nil
}

// DecodeConfig reads a TOML configuration from r.
func DecodeConfig(r io.Reader) (*FileConfig, error) {
	var fc FileConfig
	md, err := toml.NewDecoder(r).Decode(&fc)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return &fc, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown config keys: %s", strings.Join(names, ", "))
}

// Options converts the file settings to Options.
func (fc *FileConfig) Options() ([]Option, error) {
	var opts []Option
	if fc.Width != nil || fc.Height != nil {
		def := DefaultConfig()
		w, h := def.Width, def.Height
		if fc.Width != nil {
			w = *fc.Width
		}
		if fc.Height != nil {
			h = *fc.Height
		}
		opts = append(opts, WithSize(w, h))
	}
	if fc.Title != nil {
		opts = append(opts, WithTitle(*fc.Title))
	}
	if fc.LineWidth != nil {
		opts = append(opts, WithLineWidth(*fc.LineWidth))
	}
	if fc.ClearColor != nil {
		if len(fc.ClearColor) != 4 {
			return nil, fmt.Errorf("clear_color needs 4 components, got %d", len(fc.ClearColor))
		}
		cc := fc.ClearColor
		opts = append(opts, WithClearColor(Color{R: cc[0], G: cc[1], B: cc[2], A: cc[3]}))
	}
	if fc.ShaderErrors != "" {
		p, err := ParseShaderErrorPolicy(fc.ShaderErrors)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithShaderErrorPolicy(p))
	}
	return opts, nil
}

// Level returns the configured log level, Info when unset.
func (fc *FileConfig) Level() (slog.Level, error) {
	if fc.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(fc.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
