/*
Package page finds query containers and their container-styled elements in
an HTML document.

A query container is an element with class container-type-inline-size (or
Tailwind's @container). Every element below it carrying container-prefixed
utility classes gets a theme of its own; its tiers resolve against the width
of the nearest enclosing query container, not against the viewport.

Apply writes the attributes resolved for a given container width into the
elements' style attributes, which gives a static snapshot of the page at
that container width.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package page

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cq.page'.
func tracer() tracing.Trace {
	return tracing.Select("cq.page")
}
