package utility

import (
	"sort"
	"strings"

	"github.com/npillmayer/cq/breakpoint"
	"github.com/npillmayer/cq/css"
	"github.com/npillmayer/cq/style"
)

// BaseVariant is the variant name of the tier holding unprefixed utilities.
const BaseVariant style.Variant = "base"

// Lookup returns the attributes a single, unprefixed utility sets.
// Recognized are bg-<color>, text-<color> and text-<size>.
func Lookup(utility string) (style.Attributes, bool) {
	var a style.Attributes
	switch {
	case strings.HasPrefix(utility, "bg-"):
		c, ok := colorOf(utility[3:])
		a.Background = c
		return a, ok
	case strings.HasPrefix(utility, "text-"):
		name := utility[5:]
		if size, ok := fontSizes[name]; ok {
			l, err := css.ParseLength(size)
			if err != nil {
				return a, false
			}
			a.FontSize = l
			return a, true
		}
		c, ok := colorOf(name)
		a.Foreground = c
		return a, ok
	}
	return a, false
}

// split separates the ':'-delimited prefixes of a class name from the
// utility itself.
func split(class string) ([]string, string) {
	parts := strings.Split(class, ":")
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// containerPrefix returns the container size prefix of a class, if it has
// exactly one prefix and this prefix is a container size. Classes with other
// prefixes (viewport breakpoints, states) return false.
func containerPrefix(prefixes []string) (string, bool) {
	switch len(prefixes) {
	case 0:
		return "", true
	case 1:
		if _, ok := containerSizes[prefixes[0]]; ok {
			return prefixes[0], true
		}
	}
	return "", false
}

// Theme composes a theme from a list of utility classes, separated by
// white space. Unprefixed classes form the base tier, every container size
// prefix in use forms a tier of its own, named after the prefix without '@'.
//
// Tiers are composed mobile-first: a tier starts with the attributes of the
// next narrower tier and overrides what its own classes set.
func Theme(classList string, rootFontSize float64) (*style.Theme, error) {
	own := map[string]style.Attributes{"": {}}
	for _, class := range strings.Fields(classList) {
		prefixes, u := split(class)
		cq, ok := containerPrefix(prefixes)
		if !ok {
			tracer().Debugf("utility: ignoring class %q", class)
			continue
		}
		attrs, ok := Lookup(u)
		if !ok {
			continue
		}
		own[cq] = own[cq].Merge(attrs)
	}
	type tier struct {
		prefix   string
		minWidth uint
	}
	tiers := make([]tier, 0, len(own))
	for prefix := range own {
		var w uint
		if prefix != "" {
			l, err := css.ParseLength(containerSizes[prefix])
			if err != nil {
				return nil, breakpoint.ConfigErrorf(breakpoint.BadDefinition, "%s: %v", prefix, err)
			}
			if w, err = css.MinWidth(l, rootFontSize); err != nil {
				return nil, breakpoint.ConfigErrorf(breakpoint.BadDefinition, "%s: %v", prefix, err)
			}
		}
		tiers = append(tiers, tier{prefix: prefix, minWidth: w})
	}
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].minWidth < tiers[j].minWidth
	})
	bps := make([]breakpoint.Tier[style.Variant], len(tiers))
	bundles := make(style.Bundles, len(tiers))
	var acc style.Attributes
	for i, t := range tiers {
		v := BaseVariant
		if t.prefix != "" {
			v = style.Variant(strings.TrimPrefix(t.prefix, "@"))
		}
		acc = acc.Merge(own[t.prefix])
		bps[i] = breakpoint.T(t.minWidth, v)
		bundles[v] = acc
	}
	set, err := breakpoint.New(bps...)
	if err != nil {
		return nil, err
	}
	return style.NewTheme(set, bundles)
}

// HasContainerVariants is true if a class list contains at least one
// utility conditional on a container size.
func HasContainerVariants(classList string) bool {
	for _, class := range strings.Fields(classList) {
		prefixes, u := split(class)
		if cq, ok := containerPrefix(prefixes); ok && cq != "" {
			if _, known := Lookup(u); known {
				return true
			}
		}
	}
	return false
}
