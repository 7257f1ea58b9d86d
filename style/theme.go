package style

import (
	"fmt"

	"github.com/npillmayer/cq/breakpoint"
	tp "github.com/xlab/treeprint"
)

// Theme is a set of tiers together with the attribute bundle of every tier's
// variant. Themes are immutable and safe for concurrent use.
type Theme struct {
	tiers   *breakpoint.Set[Variant]
	bundles Bundles
}

// NewTheme joins a tier set and attribute bundles. Every variant of the set
// must have a well-formed bundle, otherwise NewTheme returns a
// *breakpoint.ConfigError. Bundles for variants not in the set are dropped.
func NewTheme(tiers *breakpoint.Set[Variant], bundles Bundles) (*Theme, error) {
	if tiers == nil || tiers.Len() == 0 {
		return nil, &breakpoint.ConfigError{Reason: breakpoint.EmptySet}
	}
	th := &Theme{tiers: tiers, bundles: make(Bundles, tiers.Len())}
	for _, t := range tiers.Tiers() {
		a, ok := bundles[t.Variant]
		if !ok {
			return nil, breakpoint.ConfigErrorf(breakpoint.MissingBundle, "variant %q", t.Variant)
		}
		if err := a.Check(); err != nil {
			return nil, breakpoint.ConfigErrorf(breakpoint.BadDefinition, "variant %q: %v", t.Variant, err)
		}
		th.bundles[t.Variant] = a
	}
	tracer().Debugf("style: theme with thresholds %v", tiers.Thresholds())
	return th, nil
}

// Resolve selects the variant for container width w and returns it together
// with its attributes. Resolve never fails for a theme created by NewTheme.
func (th *Theme) Resolve(w breakpoint.Width) (Variant, Attributes) {
	v := th.tiers.Resolve(w)
	return v, th.bundles[v]
}

// Tiers returns the tier set of the theme.
func (th *Theme) Tiers() *breakpoint.Set[Variant] {
	return th.tiers
}

// Bundles returns a copy of the attribute bundles of the theme.
func (th *Theme) Bundles() Bundles {
	return th.bundles.clone()
}

// Lookup returns the attribute bundle for a variant.
func (th *Theme) Lookup(v Variant) (Attributes, error) {
	return th.bundles.Lookup(v)
}

// String dumps a theme as a tree; used for debugging.
func (th *Theme) String() string {
	p := tp.New()
	for _, t := range th.tiers.Tiers() {
		branch := p.AddMetaBranch(fmt.Sprintf("≥%d", t.MinWidth), t.Variant)
		for _, d := range th.bundles[t.Variant].Declarations() {
			branch.AddNode(d)
		}
	}
	return "Theme\n" + p.String()
}
