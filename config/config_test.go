package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/cq/breakpoint"
	"github.com/npillmayer/cq/config"
	"github.com/npillmayer/cq/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tierFile = `
tiers:
  - name: lg
    minWidth: 64rem
    background: "#fde047"
    foreground: "#713f12"
    fontSize: 1.5rem
  - name: base
    minWidth: 0
    background: "#93c5fd"
    foreground: "#1e3a8a"
    fontSize: 1.125rem
  - name: sm
    minWidth: 384
    background: "#86efac"
  - name: xl
    minWidth: 1536px
    background: "#fca5a5"
`

func TestParseAndResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cq.config")
	defer teardown()
	//
	f, err := config.Parse([]byte(tierFile))
	require.NoError(t, err)
	assert.Equal(t, 16.0, f.RootFontSize)
	th, err := f.Theme()
	require.NoError(t, err)
	assert.Equal(t, []uint{0, 384, 1024, 1536}, th.Tiers().Thresholds())
	for _, x := range []struct {
		w    breakpoint.Width
		want style.Variant
	}{
		{0, "base"}, {383, "base"}, {384, "sm"}, {1023, "sm"}, {1536, "xl"}, {5000, "xl"},
	} {
		v, _ := th.Resolve(x.w)
		assert.Equal(t, x.want, v, "width %v", x.w)
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tierFile), 0o644))
	t.Setenv(config.EnvRootFontSize, "10")
	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, f.RootFontSize)
	th, err := f.Theme()
	require.NoError(t, err)
	assert.Equal(t, []uint{0, 384, 640, 1536}, th.Tiers().Thresholds())
	//
	t.Setenv(config.EnvRootFontSize, "huge")
	_, err = config.Load(path)
	assert.Error(t, err)
	t.Setenv(config.EnvRootFontSize, "1000")
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "expected ErrNotExist, got %v", err)
}

func TestParseRejects(t *testing.T) {
	_, err := config.Parse([]byte("tiers: [unclosed"))
	assert.Error(t, err)
	_, err = config.Parse([]byte("rootFontSize: -2\ntiers: []"))
	assert.Error(t, err)
}

func TestThemeRejectsBadTiers(t *testing.T) {
	for _, x := range []struct {
		name   string
		doc    string
		reason breakpoint.Reason
	}{
		{"empty", "tiers: []", breakpoint.EmptySet},
		{"no base", "tiers:\n  - {name: sm, minWidth: 24rem}", breakpoint.MissingBase},
		{"no name", "tiers:\n  - {minWidth: 0}", breakpoint.BadDefinition},
		{"no min-width", "tiers:\n  - {name: base}", breakpoint.BadDefinition},
		{"duplicate", "tiers:\n  - {name: base, minWidth: 0}\n  - {name: base, minWidth: 10}", breakpoint.BadDefinition},
		{"same width", "tiers:\n  - {name: a, minWidth: 0}\n  - {name: b, minWidth: 0px}", breakpoint.NotIncreasing},
		{"bad color", "tiers:\n  - {name: base, minWidth: 0, background: 'nope'}", breakpoint.BadDefinition},
		{"bad size", "tiers:\n  - {name: base, minWidth: 0, fontSize: big}", breakpoint.BadDefinition},
	} {
		f, err := config.Parse([]byte(x.doc))
		require.NoError(t, err, x.name)
		_, err = f.Theme()
		var cerr *breakpoint.ConfigError
		if !errors.As(err, &cerr) {
			t.Errorf("%s: expected configuration error, got %v", x.name, err)
			continue
		}
		assert.Equal(t, x.reason, cerr.Reason, x.name)
	}
}
