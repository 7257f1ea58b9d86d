/*
Package config reads tier definitions from YAML files.

A tier file lists the tiers of one theme together with their attributes:

	rootFontSize: 16
	tiers:
	  - name: base
	    minWidth: 0
	    background: "#93c5fd"
	    foreground: "#1e3a8a"
	    fontSize: 1.125rem
	  - name: sm
	    minWidth: 24rem
	    background: "#86efac"

Tiers may be listed in any order. The environment variable
CQ_ROOT_FONT_SIZE overrides the root font size of a file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cq.config'.
func tracer() tracing.Trace {
	return tracing.Select("cq.config")
}
