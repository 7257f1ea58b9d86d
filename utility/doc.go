/*
Package utility reads utility class lists with container-query prefixes.

A page styles its elements with utility classes, prefixing a class with a
named container size to make it conditional on the width of the enclosing
query container:

	bg-blue-300 text-blue-900 @sm:bg-green-300 @sm:text-green-900 @lg:bg-yellow-300

Theme turns such a class list into a style.Theme, with one tier per
container size in use. GenerateCSS renders a single class as CSS, wrapping
it into @container or @media blocks as its prefixes require.

Unknown utilities are ignored; class lists usually carry layout utilities
as well, which have no bearing on tiers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package utility

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cq.utility'.
func tracer() tracing.Trace {
	return tracing.Select("cq.utility")
}
