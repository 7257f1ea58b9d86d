package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0400
	relativeMask uint32 = 0xff00
)

// DefaultRootFontSize is the browser default for the root font size, in pixels.
const DefaultRootFontSize = 16.0

// MaxPixels is the largest fixed length representable, in logical pixels.
var MaxPixels = duToPx(dimen.Fil - 1)

// ErrBadLength is returned for strings not denoting a CSS length.
var ErrBadLength = errors.New("not a CSS length")

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d      dimen.DU
	factor float64 // for font-relative dimensions
	flags  uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| FontRel unit factor
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Px creates a fixed CSS dimension of n logical pixels. Values beyond what
// dimen.DU can hold are clamped to ±MaxPixels.
func Px(n float64) DimenT {
	return JustDimen(pxToDU(n))
}

// FontRelative creates a CSS dimension relative to a font size.
// If rem is true, the dimension is relative to the root font size,
// otherwise to the font size of the element (em).
func FontRelative(factor float64, rem bool) DimenT {
	if rem {
		return DimenT{factor: factor, flags: dimenREM}
	}
	return DimenT{factor: factor, flags: dimenEM}
}

// IsNone is true for the zero value of DimenT.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// Pixels converts a dimension to logical pixels. Font-relative dimensions are
// resolved against rootFontSize, as container queries have no element font
// size to refer to. Returns false for dimensions without a definite size
// (auto, inherit, initial, unset).
func (d DimenT) Pixels(rootFontSize float64) (float64, bool) {
	var du dimen.DU
	var factor float64
	switch m := d.Match(); m {
	case m.Just(&du):
		return duToPx(du), true
	case m.FontRelative(&factor):
		return factor * rootFontSize, true
	}
	return 0, false
}

func (d DimenT) String() string {
	var du dimen.DU
	var factor float64
	switch m := d.Match(); m {
	case m.IsKind(Auto()):
		return "auto"
	case m.IsKind(Inherit()):
		return "inherit"
	case m.IsKind(Initial()):
		return "initial"
	case m.Just(&du):
		return strconv.FormatFloat(duToPx(du), 'f', -1, 64) + "px"
	case m.IsKind(FontRelative(1, true)):
		return strconv.FormatFloat(d.factor, 'f', -1, 64) + "rem"
	case m.FontRelative(&factor):
		return strconv.FormatFloat(factor, 'f', -1, 64) + "em"
	}
	return "none"
}

// ParseLength reads a CSS length. Recognized units are px, pt, rem and em;
// a bare number is only allowed for 0. Keywords auto, inherit and initial
// are accepted as well.
func ParseLength(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "":
		return DimenT{}, fmt.Errorf("%w: empty string", ErrBadLength)
	}
	num, unit := splitUnit(s)
	n, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return DimenT{}, fmt.Errorf("%w: %q", ErrBadLength, s)
	}
	switch unit {
	case "px":
		if math.Abs(n) > MaxPixels {
			return DimenT{}, fmt.Errorf("%w: %q out of range", ErrBadLength, s)
		}
		return Px(n), nil
	case "pt":
		if math.Abs(n*float64(dimen.PT)) >= float64(dimen.Fil) {
			return DimenT{}, fmt.Errorf("%w: %q out of range", ErrBadLength, s)
		}
		return JustDimen(dimen.DU(math.Round(n * float64(dimen.PT)))), nil
	case "rem":
		return FontRelative(n, true), nil
	case "em":
		return FontRelative(n, false), nil
	case "":
		if n == 0 {
			return JustDimen(0), nil
		}
	}
	return DimenT{}, fmt.Errorf("%w: %q", ErrBadLength, s)
}

func splitUnit(s string) (string, string) {
	i := len(s)
	for i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
		i--
	}
	return s[:i], s[i:]
}

// 1px = 0.75pt
func pxToDU(px float64) dimen.DU {
	du := math.Round(px * 0.75 * float64(dimen.PT))
	if du >= float64(dimen.Fil) {
		return dimen.Fil - 1
	} else if du <= -float64(dimen.Fil) {
		return -(dimen.Fil - 1)
	}
	return dimen.DU(du)
}

func duToPx(d dimen.DU) float64 {
	px := float64(d) / float64(dimen.PT) / 0.75
	return math.Round(px*1000) / 1000
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenREM > 0) != (d.flags&dimenREM > 0) {
			return nil
		}
		return m
	case (m.dimen.flags&kindMask) == (d.flags&kindMask) && m.dimen.flags&relativeMask == d.flags&relativeMask:
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// FontRelative matches em and rem dimensions and extracts the factor.
func (m *Matcher) FontRelative(factor *float64) *Matcher {
	if m.dimen.flags&relativeMask > 0 {
		if factor != nil {
			*factor = m.dimen.factor
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto         T
	Inherit      T
	Initial      T
	Just         T
	FontRelative T
	Default      T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags == dimenAuto:
		return patterns.Auto
	case m.dimen.flags == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags == dimenInitial:
		return patterns.Initial
	case m.dimen.flags == dimenInherit:
		return patterns.Inherit
	case m.dimen.flags&relativeMask > 0:
		return patterns.FontRelative
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
