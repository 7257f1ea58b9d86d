/*
Package css handles CSS length values for container queries and font sizes.

Lengths are stored in device units (dimen.DU) if absolute, or as a factor
of the font size if font-relative (em, rem). Container widths, however, are
measured in logical pixels (1px = 0.75pt), so clients will usually convert
a length to pixels, given the root font size:

	l, err := css.ParseLength("24rem")
	px, ok := l.Pixels(16) // => 384, true

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css
