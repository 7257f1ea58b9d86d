package cssom_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/cq/breakpoint"
	"github.com/npillmayer/cq/css"
	"github.com/npillmayer/cq/cssom"
	"github.com/npillmayer/cq/cssom/douceuradapter"
	"github.com/npillmayer/cq/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoSheet = `
.lg   { min-width: 32rem; background-color: #fde047; color: #713f12; font-size: 1.5rem }
.base { min-width: 0;     background-color: #93c5fd; color: #1e3a8a; font-size: 1.125rem }
@font-face { font-family: Demo; }
.sm   { min-width: 384px; background-color: #86efac; color: #14532d; font-size: 1.25rem }
`

func TestThemeFromTierSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cq.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(demoSheet)
	require.NoError(t, err)
	th, err := cssom.Theme(sheet, css.DefaultRootFontSize)
	require.NoError(t, err)
	t.Logf("theme = %s", th)
	assert.Equal(t, []uint{0, 384, 512}, th.Tiers().Thresholds())
	for _, x := range []struct {
		w    breakpoint.Width
		want style.Variant
	}{
		{0, "base"}, {383, "base"}, {384, "sm"}, {511, "sm"}, {512, "lg"}, {9999, "lg"},
	} {
		v, _ := th.Resolve(x.w)
		if v != x.want {
			t.Errorf("expected width %v to resolve to %q, is %q", x.w, x.want, v)
		}
	}
	_, a := th.Resolve(400)
	assert.Equal(t, style.Property("#86efac"), a.Background)
	assert.Equal(t, style.Property("#14532d"), a.Foreground)
	assert.Equal(t, "1.25rem", a.FontSize.String())
}

func TestTierSheetErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cq.cssom")
	defer teardown()
	//
	for _, x := range []struct {
		name   string
		sheet  string
		reason breakpoint.Reason
	}{
		{"empty", ``, breakpoint.EmptySet},
		{"no base", `.sm { min-width: 24rem; color: #000 }`, breakpoint.MissingBase},
		{"no min-width", `.base { color: #000 }`, breakpoint.BadDefinition},
		{"bad length", `.base { min-width: wide }`, breakpoint.BadDefinition},
		{"bad color", `.base { min-width: 0; color: #12 }`, breakpoint.BadDefinition},
		{"not a class", `div { min-width: 0 }`, breakpoint.BadDefinition},
		{"duplicate variant", `.a { min-width: 0 } .a { min-width: 10px }`, breakpoint.BadDefinition},
		{"same threshold", `.a { min-width: 0 } .b { min-width: 0 }`, breakpoint.NotIncreasing},
	} {
		sheet, err := douceuradapter.Parse(x.sheet)
		require.NoError(t, err, x.name)
		_, err = cssom.Theme(sheet, css.DefaultRootFontSize)
		var cerr *breakpoint.ConfigError
		if !errors.As(err, &cerr) {
			t.Errorf("%s: expected configuration error, got %v", x.name, err)
			continue
		}
		assert.Equal(t, x.reason, cerr.Reason, x.name)
	}
}

func TestTierSheetKeywordColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cq.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`
.base { min-width: 0; color: inherit; background-color: initial }
.sm   { min-width: 24rem; background-color: #86efac }
`)
	require.NoError(t, err)
	th, err := cssom.Theme(sheet, css.DefaultRootFontSize)
	require.NoError(t, err)
	v, a := th.Resolve(100)
	assert.Equal(t, style.Variant("base"), v)
	assert.Equal(t, style.Property("inherit"), a.Foreground)
	assert.Equal(t, style.Property("initial"), a.Background)
	c, err := a.Foreground.Color()
	assert.NoError(t, err)
	assert.Nil(t, c)
}
