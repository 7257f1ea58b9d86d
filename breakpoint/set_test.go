package breakpoint_test

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/cq/breakpoint"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleTiers(t *testing.T) *breakpoint.Set[string] {
	s, err := breakpoint.New(
		breakpoint.T(0, "base"),
		breakpoint.T(384, "sm"),
		breakpoint.T(1024, "lg"),
		breakpoint.T(1536, "xl"),
	)
	require.NoError(t, err)
	return s
}

func TestResolveScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cq.breakpoint")
	defer teardown()
	//
	s := exampleTiers(t)
	t.Logf("tiers =\n%s", s)
	for _, x := range []struct {
		w    breakpoint.Width
		want string
	}{
		{0, "base"},
		{383, "base"},
		{383.99, "base"},
		{384, "sm"},
		{1023, "sm"},
		{1024, "lg"},
		{1536, "xl"},
		{5000, "xl"},
	} {
		if v := s.Resolve(x.w); v != x.want {
			t.Errorf("expected width %v to resolve to %q, is %q", x.w, x.want, v)
		}
	}
}

func TestResolveFreeFunction(t *testing.T) {
	s := exampleTiers(t)
	assert.Equal(t, "sm", breakpoint.Resolve(500, s))
	assert.Equal(t, s.Resolve(1100), breakpoint.Resolve(1100, s))
}

func TestResolveBoundaryInclusive(t *testing.T) {
	s := exampleTiers(t)
	tiers := s.Tiers()
	for i, tier := range tiers {
		got := s.TierFor(breakpoint.Width(tier.MinWidth))
		if got != tier {
			t.Errorf("expected threshold %d to select its own tier, selected %v", tier.MinWidth, got)
		}
		if i > 0 {
			below := s.TierFor(breakpoint.Width(tier.MinWidth) - 0.5)
			if below != tiers[i-1] {
				t.Errorf("expected width below %d to select %v, selected %v", tier.MinWidth, tiers[i-1], below)
			}
		}
	}
}

func TestResolveTotalAndMonotonic(t *testing.T) {
	s := exampleTiers(t)
	prev := -1
	for w := 0; w <= 4000; w += 7 {
		inx := s.Index(breakpoint.Width(w))
		if inx < 0 || inx >= s.Len() {
			t.Fatalf("expected index for width %d to be within [0,%d), is %d", w, s.Len(), inx)
		}
		if inx < prev {
			t.Fatalf("expected resolution to be non-decreasing, width %d selects #%d after #%d", w, inx, prev)
		}
		prev = inx
	}
}

func TestResolveBaseOnlySet(t *testing.T) {
	s, err := breakpoint.New(breakpoint.T(0, 7))
	require.NoError(t, err)
	for _, w := range []breakpoint.Width{0, 1, 1e9} {
		assert.Equal(t, 7, s.Resolve(w))
	}
}

func TestResolveInvalidWidthsAreClamped(t *testing.T) {
	s := exampleTiers(t)
	assert.False(t, breakpoint.Width(-1).Valid())
	assert.False(t, breakpoint.Width(math.NaN()).Valid())
	assert.False(t, breakpoint.Width(math.Inf(1)).Valid())
	assert.True(t, breakpoint.Width(0).Valid())
	//
	assert.Equal(t, "base", s.Resolve(-12))
	assert.Equal(t, "base", s.Resolve(breakpoint.Width(math.NaN())))
	assert.Equal(t, "base", s.Resolve(breakpoint.Width(math.Inf(-1))))
	assert.Equal(t, "xl", s.Resolve(breakpoint.Width(math.Inf(1))))
}

func TestNewRejectsInvalidConfigurations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cq.breakpoint")
	defer teardown()
	//
	for _, x := range []struct {
		name   string
		tiers  []breakpoint.Tier[string]
		reason breakpoint.Reason
	}{
		{"empty", nil, breakpoint.EmptySet},
		{"no base", []breakpoint.Tier[string]{{10, "a"}, {20, "b"}}, breakpoint.MissingBase},
		{"duplicate", []breakpoint.Tier[string]{{0, "a"}, {20, "b"}, {20, "c"}}, breakpoint.NotIncreasing},
		{"decreasing", []breakpoint.Tier[string]{{0, "a"}, {30, "b"}, {20, "c"}}, breakpoint.NotIncreasing},
		{"two bases", []breakpoint.Tier[string]{{0, "a"}, {0, "b"}}, breakpoint.NotIncreasing},
	} {
		s, err := breakpoint.New(x.tiers...)
		if s != nil {
			t.Errorf("%s: expected no set, got %v", x.name, s)
		}
		if !errors.Is(err, breakpoint.ErrConfiguration) {
			t.Errorf("%s: expected configuration error, is %v", x.name, err)
			continue
		}
		var cerr *breakpoint.ConfigError
		require.True(t, errors.As(err, &cerr), x.name)
		assert.Equal(t, x.reason, cerr.Reason, x.name)
		t.Logf("%s: %v", x.name, err)
	}
}

func TestSortedOrdersTiers(t *testing.T) {
	s, err := breakpoint.Sorted(
		breakpoint.T(1024, "lg"),
		breakpoint.T(0, "base"),
		breakpoint.T(384, "sm"),
	)
	require.NoError(t, err)
	assert.Equal(t, []uint{0, 384, 1024}, s.Thresholds())
	//
	_, err = breakpoint.Sorted(breakpoint.T(0, "a"), breakpoint.T(0, "b"))
	assert.ErrorIs(t, err, breakpoint.ErrConfiguration)
}

func TestSetIsImmutable(t *testing.T) {
	tiers := []breakpoint.Tier[string]{{0, "base"}, {100, "wide"}}
	s, err := breakpoint.New(tiers...)
	require.NoError(t, err)
	tiers[1].Variant = "changed"
	out := s.Tiers()
	out[0].Variant = "changed too"
	assert.Equal(t, "wide", s.Resolve(100))
	assert.Equal(t, "base", s.Resolve(0))
}

func TestMustPanicsOnBadTiers(t *testing.T) {
	assert.Panics(t, func() {
		breakpoint.Must(breakpoint.T(5, "x"))
	})
	assert.NotPanics(t, func() {
		breakpoint.Must(breakpoint.T(0, "x"))
	})
}

func TestConcurrentResolve(t *testing.T) {
	s := exampleTiers(t)
	done := make(chan bool)
	for g := 0; g < 8; g++ {
		go func(g int) {
			for w := 0; w < 2000; w++ {
				want := "base"
				switch {
				case w >= 1536:
					want = "xl"
				case w >= 1024:
					want = "lg"
				case w >= 384:
					want = "sm"
				}
				if v := s.Resolve(breakpoint.Width(w)); v != want {
					t.Errorf("goroutine %d: width %d resolved to %q, expected %q", g, w, v, want)
				}
			}
			done <- true
		}(g)
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
