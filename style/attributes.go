package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cq/css"
)

// Variant names a bundle of visual attributes, e.g. "base" or "sm".
type Variant string

// ErrUnknownVariant is returned when a variant has no attribute bundle.
var ErrUnknownVariant = errors.New("unknown variant")

// Attributes is the bundle of visual attributes applied as a unit
// for a variant.
type Attributes struct {
	Background Property    // CSS background-color
	Foreground Property    // CSS color
	FontSize   css.DimenT // CSS font-size; the zero value means "not set"
}

// Merge overlays other onto a: every attribute set in other replaces the
// corresponding attribute of a.
func (a Attributes) Merge(other Attributes) Attributes {
	if !other.Background.IsEmpty() {
		a.Background = other.Background
	}
	if !other.Foreground.IsEmpty() {
		a.Foreground = other.Foreground
	}
	if !other.FontSize.IsNone() {
		a.FontSize = other.FontSize
	}
	return a
}

// Check tests if colors and font size are well-formed.
func (a Attributes) Check() error {
	if _, err := a.Background.Color(); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := a.Foreground.Color(); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if !a.FontSize.IsNone() {
		if px, ok := a.FontSize.Pixels(css.DefaultRootFontSize); !ok || px <= 0 {
			return fmt.Errorf("font size %s is not a positive length", a.FontSize)
		}
	}
	return nil
}

// Declarations renders the attributes as CSS declarations, in the fixed
// order background-color, color, font-size. Unset attributes are omitted.
func (a Attributes) Declarations() []string {
	var decl []string
	if !a.Background.IsEmpty() {
		decl = append(decl, "background-color: "+a.Background.String())
	}
	if !a.Foreground.IsEmpty() {
		decl = append(decl, "color: "+a.Foreground.String())
	}
	if !a.FontSize.IsNone() {
		decl = append(decl, "font-size: "+a.FontSize.String())
	}
	return decl
}

func (a Attributes) String() string {
	return "{" + strings.Join(a.Declarations(), "; ") + "}"
}

// Bundles maps variants to their attribute bundles.
type Bundles map[Variant]Attributes

// Lookup returns the attribute bundle for a variant.
func (b Bundles) Lookup(v Variant) (Attributes, error) {
	a, ok := b[v]
	if !ok {
		return Attributes{}, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	return a, nil
}

func (b Bundles) clone() Bundles {
	c := make(Bundles, len(b))
	for v, a := range b {
		c[v] = a
	}
	return c
}
