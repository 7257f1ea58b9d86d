/*
Package container connects a query container's width notifications to its
theme.

The host rendering environment reports the container's inline size whenever
it changes. An Observer resolves every sample and tells a callback when the
selected tier has changed, so that attributes need to be re-applied only
on tier changes.

	obs := container.New(theme, container.WithOnChange(func(c container.Change) {
	    renderer.Apply(c.Attributes)
	}))
	host.OnResize(func(w float64) { obs.Observe(breakpoint.Width(w)) })

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package container

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cq.container'.
func tracer() tracing.Trace {
	return tracing.Select("cq.container")
}
