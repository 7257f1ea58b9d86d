/*
Package cssom provides a minimal CSS object model for tier sheets.

A tier sheet is a plain CSS stylesheet in which every rule defines one
container-query tier. The rule's class selector names the variant, its
min-width the threshold and the remaining declarations the attribute bundle:

	.base { min-width: 0;     background-color: #93c5fd; color: #1e3a8a; font-size: 1.125rem }
	.sm   { min-width: 24rem; background-color: #86efac; color: #14532d; font-size: 1.25rem }

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation based on douceur may be
found in sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cq.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cq.cssom")
}
