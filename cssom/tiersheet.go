package cssom

import (
	"errors"
	"strings"

	"github.com/npillmayer/cq/breakpoint"
	"github.com/npillmayer/cq/css"
	"github.com/npillmayer/cq/style"
)

// Theme reads a tier sheet (see package documentation) and creates a theme
// from it. Rules may appear in any order; at-rules are skipped.
// Lengths in rem/em are resolved against rootFontSize.
//
// Every problem with the sheet is reported as a *breakpoint.ConfigError.
func Theme(sheet StyleSheet, rootFontSize float64) (*style.Theme, error) {
	if sheet == nil || sheet.Empty() {
		return nil, &breakpoint.ConfigError{Reason: breakpoint.EmptySet}
	}
	var tiers []breakpoint.Tier[style.Variant]
	bundles := make(style.Bundles)
	for _, r := range sheet.Rules() {
		if r.AtRule() != "" {
			tracer().Debugf("tier sheet: skipping %s", r.AtRule())
			continue
		}
		v, err := variantFromSelector(r.Selector())
		if err != nil {
			return nil, err
		}
		if _, dup := bundles[v]; dup {
			return nil, breakpoint.ConfigErrorf(breakpoint.BadDefinition, "variant %q defined twice", v)
		}
		w, attrs, err := readTier(r, rootFontSize)
		if err != nil {
			return nil, breakpoint.ConfigErrorf(breakpoint.BadDefinition, "variant %q: %v", v, err)
		}
		tiers = append(tiers, breakpoint.T(w, v))
		bundles[v] = attrs
	}
	set, err := breakpoint.Sorted(tiers...)
	if err != nil {
		return nil, err
	}
	return style.NewTheme(set, bundles)
}

func variantFromSelector(sel string) (style.Variant, error) {
	sel = strings.TrimSpace(sel)
	name := strings.TrimPrefix(sel, ".")
	if name == sel || name == "" || strings.ContainsAny(name, " .,>+~:#[") {
		return "", breakpoint.ConfigErrorf(breakpoint.BadDefinition,
			"selector %q is not a single class selector", sel)
	}
	return style.Variant(name), nil
}

func readTier(r Rule, rootFontSize float64) (uint, style.Attributes, error) {
	var attrs style.Attributes
	mw := r.Value("min-width")
	if mw.IsEmpty() {
		return 0, attrs, errMissingMinWidth
	}
	l, err := css.ParseLength(mw.String())
	if err != nil {
		return 0, attrs, err
	}
	w, err := css.MinWidth(l, rootFontSize)
	if err != nil {
		return 0, attrs, err
	}
	attrs.Background = r.Value("background-color")
	attrs.Foreground = r.Value("color")
	if fs := r.Value("font-size"); !fs.IsEmpty() {
		if attrs.FontSize, err = css.ParseLength(fs.String()); err != nil {
			return 0, attrs, err
		}
	}
	return w, attrs, nil
}

var errMissingMinWidth = errors.New("missing min-width")
