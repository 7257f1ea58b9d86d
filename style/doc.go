/*
Package style defines the visual attributes a container-query tier applies.

Which tier applies at a given container width is decided by package
breakpoint. What a tier looks like is decided here: every variant maps to
exactly one attribute bundle (background, foreground, font size). A Theme
joins both, validating once that every tier has a bundle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cq.style'
func tracer() tracing.Trace {
	return tracing.Select("cq.style")
}
