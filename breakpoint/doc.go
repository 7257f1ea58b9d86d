/*
Package breakpoint resolves container widths to responsive tiers.

A container query conditions styling on the measured inline size of an
ancestor container instead of the viewport. The decision which variant applies
at a given width is a pure function of the width and a set of tiers, each
tier carrying a minimum width. Resolution is mobile-first: the tier with the
largest threshold not exceeding the width wins.

	tiers, err := breakpoint.New(
	    breakpoint.T(0, "base"),
	    breakpoint.T(384, "sm"),
	    breakpoint.T(1024, "lg"),
	)
	if err != nil {
	    return err // a configuration error, detected once
	}
	v := tiers.Resolve(512) // => "sm"

Sets are immutable after construction and safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package breakpoint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cq.breakpoint'.
func tracer() tracing.Trace {
	return tracing.Select("cq.breakpoint")
}
