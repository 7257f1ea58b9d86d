package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/cq/breakpoint"
	"github.com/npillmayer/cq/css"
	"github.com/npillmayer/cq/style"
	"gopkg.in/yaml.v3"
)

// EnvRootFontSize is the environment variable overriding the root font size.
const EnvRootFontSize = "CQ_ROOT_FONT_SIZE"

const (
	minimumRootFontSize = 1.0
	maximumRootFontSize = 256.0
)

// File is the content of a tier file.
type File struct {
	RootFontSize float64    `yaml:"rootFontSize,omitempty"`
	Tiers        []TierSpec `yaml:"tiers"`
}

// TierSpec describes one tier. Lengths are CSS lengths; a bare number is
// taken as pixels.
type TierSpec struct {
	Name       string `yaml:"name"`
	MinWidth   string `yaml:"minWidth"`
	Background string `yaml:"background,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	FontSize   string `yaml:"fontSize,omitempty"`
}

// Parse decodes a tier file. A missing root font size defaults to
// css.DefaultRootFontSize.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if f.RootFontSize == 0 {
		f.RootFontSize = css.DefaultRootFontSize
	}
	if f.RootFontSize < minimumRootFontSize || f.RootFontSize > maximumRootFontSize {
		return nil, fmt.Errorf("rootFontSize must be between %g and %g", minimumRootFontSize, maximumRootFontSize)
	}
	return &f, nil
}

// Load reads and decodes a tier file, then applies environment overrides.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.ApplyEnv(); err != nil {
		return nil, err
	}
	tracer().Debugf("config: loaded %d tiers from %s", len(f.Tiers), path)
	return f, nil
}

// ApplyEnv overrides settings from environment variables.
func (f *File) ApplyEnv() error {
	raw, ok := os.LookupEnv(EnvRootFontSize)
	if !ok {
		return nil
	}
	size, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("%s must be a number: %w", EnvRootFontSize, err)
	}
	if size < minimumRootFontSize || size > maximumRootFontSize {
		return fmt.Errorf("%s must be between %g and %g", EnvRootFontSize, minimumRootFontSize, maximumRootFontSize)
	}
	f.RootFontSize = size
	return nil
}

// Theme creates the theme described by a tier file. Problems with the tier
// definitions are reported as *breakpoint.ConfigError.
func (f *File) Theme() (*style.Theme, error) {
	tiers := make([]breakpoint.Tier[style.Variant], 0, len(f.Tiers))
	bundles := make(style.Bundles, len(f.Tiers))
	for i, ts := range f.Tiers {
		name := style.Variant(strings.TrimSpace(ts.Name))
		if name == "" {
			return nil, breakpoint.ConfigErrorf(breakpoint.BadDefinition, "tier #%d has no name", i)
		}
		if _, dup := bundles[name]; dup {
			return nil, breakpoint.ConfigErrorf(breakpoint.BadDefinition, "tier %q defined twice", name)
		}
		w, attrs, err := ts.read(f.RootFontSize)
		if err != nil {
			return nil, breakpoint.ConfigErrorf(breakpoint.BadDefinition, "tier %q: %v", name, err)
		}
		tiers = append(tiers, breakpoint.T(w, name))
		bundles[name] = attrs
	}
	set, err := breakpoint.Sorted(tiers...)
	if err != nil {
		return nil, err
	}
	return style.NewTheme(set, bundles)
}

var errNoMinWidth = errors.New("missing minWidth")

func (ts TierSpec) read(rootFontSize float64) (uint, style.Attributes, error) {
	var attrs style.Attributes
	mw := strings.TrimSpace(ts.MinWidth)
	if mw == "" {
		return 0, attrs, errNoMinWidth
	}
	if _, err := strconv.ParseFloat(mw, 64); err == nil && mw != "0" {
		mw += "px"
	}
	l, err := css.ParseLength(mw)
	if err != nil {
		return 0, attrs, err
	}
	w, err := css.MinWidth(l, rootFontSize)
	if err != nil {
		return 0, attrs, err
	}
	attrs.Background = style.Property(ts.Background)
	attrs.Foreground = style.Property(ts.Foreground)
	if fs := strings.TrimSpace(ts.FontSize); fs != "" {
		if attrs.FontSize, err = css.ParseLength(fs); err != nil {
			return 0, attrs, err
		}
	}
	return w, attrs, nil
}
