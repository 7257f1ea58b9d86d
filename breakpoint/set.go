package breakpoint

import (
	"fmt"
	"math"
	"sort"

	tp "github.com/xlab/treeprint"
)

// Width is the measured inline size of a container, in logical pixels.
// Widths are produced by the host's layout observer and are never retained.
type Width float64

// Valid is true for finite, non-negative widths.
func (w Width) Valid() bool {
	return !math.IsNaN(float64(w)) && !math.IsInf(float64(w), 0) && w >= 0
}

// Tier is a responsive tier: a variant applies from MinWidth upwards.
type Tier[V any] struct {
	MinWidth uint // inclusive lower bound, logical pixels
	Variant  V
}

// T is a shortcut to create a tier.
func T[V any](minWidth uint, variant V) Tier[V] {
	return Tier[V]{MinWidth: minWidth, Variant: variant}
}

func (t Tier[V]) String() string {
	return fmt.Sprintf("@%d→%v", t.MinWidth, t.Variant)
}

// Set is an ordered, immutable sequence of tiers. Thresholds are strictly
// increasing and the first tier is the base tier with MinWidth 0, making
// resolution total for every width.
//
// The zero value is not usable; create sets with New.
type Set[V any] struct {
	tiers []Tier[V]
}

// New creates a set of tiers. Tiers must be given in order of strictly
// increasing MinWidth, starting with a base tier of MinWidth 0.
// If the tiers violate this, New returns a *ConfigError.
//
// New copies its input; callers may re-use the argument slice.
func New[V any](tiers ...Tier[V]) (*Set[V], error) {
	if err := check(tiers); err != nil {
		tracer().Errorf("breakpoint: %v", err)
		return nil, err
	}
	s := &Set[V]{tiers: make([]Tier[V], len(tiers))}
	copy(s.tiers, tiers)
	tracer().Debugf("breakpoint: new set of %d tiers", len(s.tiers))
	return s, nil
}

// Must is like New, but panics on configuration errors. It is intended
// for tier sets which are literals in source code.
func Must[V any](tiers ...Tier[V]) *Set[V] {
	s, err := New(tiers...)
	if err != nil {
		panic(err)
	}
	return s
}

// Sorted sorts tiers by MinWidth before creating a set. Duplicate thresholds
// are still an error.
func Sorted[V any](tiers ...Tier[V]) (*Set[V], error) {
	sorted := make([]Tier[V], len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinWidth < sorted[j].MinWidth
	})
	return New(sorted...)
}

func check[V any](tiers []Tier[V]) error {
	if len(tiers) == 0 {
		return &ConfigError{Reason: EmptySet}
	}
	if tiers[0].MinWidth != 0 {
		return ConfigErrorf(MissingBase, "lowest threshold is %d", tiers[0].MinWidth)
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].MinWidth <= tiers[i-1].MinWidth {
			return ConfigErrorf(NotIncreasing, "tier #%d at %d follows tier at %d",
				i, tiers[i].MinWidth, tiers[i-1].MinWidth)
		}
	}
	return nil
}

// Resolve returns the variant of the tier with the largest threshold not
// exceeding w. A width equal to a threshold selects that threshold's tier.
//
// Resolve never fails. Widths which are not Valid are clamped: NaN and
// negative widths resolve like 0, +Inf resolves to the widest tier.
func (s *Set[V]) Resolve(w Width) V {
	return s.tiers[s.Index(w)].Variant
}

// TierFor returns the tier selected for w (see Resolve).
func (s *Set[V]) TierFor(w Width) Tier[V] {
	return s.tiers[s.Index(w)]
}

// Index returns the position of the tier selected for w (see Resolve).
func (s *Set[V]) Index(w Width) int {
	if math.IsNaN(float64(w)) || w <= 0 {
		return 0
	}
	// first tier with MinWidth > w, then step back one
	i := sort.Search(len(s.tiers), func(i int) bool {
		return Width(s.tiers[i].MinWidth) > w
	})
	return i - 1 // i ≥ 1, as tier #0 has MinWidth 0 ≤ w
}

// Resolve returns the variant selected by a set of tiers for width w.
// It is a free-function variant of s.Resolve(w).
func Resolve[V any](w Width, s *Set[V]) V {
	return s.Resolve(w)
}

// Len returns the number of tiers.
func (s *Set[V]) Len() int {
	return len(s.tiers)
}

// Tiers returns a copy of the tiers, in ascending order.
func (s *Set[V]) Tiers() []Tier[V] {
	r := make([]Tier[V], len(s.tiers))
	copy(r, s.tiers)
	return r
}

// Thresholds returns the minimum widths of all tiers, in ascending order.
func (s *Set[V]) Thresholds() []uint {
	r := make([]uint, len(s.tiers))
	for i, t := range s.tiers {
		r[i] = t.MinWidth
	}
	return r
}

// String dumps a set as a tree; used for debugging.
func (s *Set[V]) String() string {
	header := fmt.Sprintf("Set(%d tiers)\n", len(s.tiers))
	p := tp.New()
	for i, t := range s.tiers {
		if i+1 < len(s.tiers) {
			p.AddMetaNode(fmt.Sprintf("%d…%d", t.MinWidth, s.tiers[i+1].MinWidth-1), t.Variant)
		} else {
			p.AddMetaNode(fmt.Sprintf("%d…∞", t.MinWidth), t.Variant)
		}
	}
	return header + p.String()
}
