package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

var namedColors = map[Property]color.RGBA{
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0x80, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"powderblue":  {0xb0, 0xe0, 0xe6, 0xff},
	"transparent": {0, 0, 0, 0},
}

// Color converts a color property to a color value. It understands
// #rgb, #rrggbb and a small set of named colors. Empty properties, "default"
// and the CSS-wide keywords "initial" and "inherit" carry no concrete color;
// they return nil without error.
func (p Property) Color() (color.Color, error) {
	s := Property(strings.ToLower(strings.TrimSpace(string(p))))
	if s == NullStyle || s == "default" || s.IsInitial() || s.IsInherit() {
		return nil, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(string(s), "#") {
		return nil, fmt.Errorf("unknown color %q", p)
	}
	if !isHex(string(s[1:])) {
		return nil, fmt.Errorf("malformed color %q", p)
	}
	c, err := colorful.Hex(string(s))
	if err != nil {
		return nil, fmt.Errorf("malformed color %q: %w", p, err)
	}
	return c, nil
}

// colorful.Hex stops scanning at the first non-digit, so digits are checked
// up front.
func isHex(digits string) bool {
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	return strings.Trim(digits, "0123456789abcdef") == ""
}

// ColorString formats a color as #rrggbb. Nil is formatted as "default",
// fully transparent colors as "transparent".
func ColorString(c color.Color) string {
	if c == nil {
		return "default"
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "transparent"
	}
	return cc.Hex()
}
