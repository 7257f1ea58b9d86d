package container

import (
	"sync"

	"github.com/npillmayer/cq/breakpoint"
	"github.com/npillmayer/cq/style"
)

// Change reports a transition from one tier to another.
type Change struct {
	From       style.Variant // empty for the first sample
	To         style.Variant
	Width      breakpoint.Width // the sample causing the change
	Attributes style.Attributes // attributes of To
}

// Option configures an Observer.
type Option func(*Observer)

// WithOnChange sets a callback to be called on tier changes. Callbacks are
// called synchronously from Observe, outside of the observer's lock.
func WithOnChange(f func(Change)) Option {
	return func(o *Observer) {
		o.onChange = f
	}
}

// Observer tracks the tier of a single query container.
// It is safe for concurrent use.
type Observer struct {
	theme    *style.Theme
	onChange func(Change)
	mx       sync.Mutex
	current  style.Variant
	samples  int
}

// New creates an observer for a container styled by theme.
func New(theme *style.Theme, opts ...Option) *Observer {
	o := &Observer{theme: theme}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Observe takes a width sample and returns the attributes for it.
// Samples are independent of each other; stale or out-of-order samples
// simply yield the attributes for the width given.
func (o *Observer) Observe(w breakpoint.Width) style.Attributes {
	v, attrs := o.theme.Resolve(w)
	o.mx.Lock()
	prev := o.current
	first := o.samples == 0
	o.current = v
	o.samples++
	o.mx.Unlock()
	if first || v != prev {
		tracer().Debugf("container: width %v changes tier %q → %q", w, prev, v)
		if o.onChange != nil {
			o.onChange(Change{From: prev, To: v, Width: w, Attributes: attrs})
		}
	}
	return attrs
}

// Current returns the variant selected by the most recent sample, or ""
// if there has been no sample yet.
func (o *Observer) Current() style.Variant {
	o.mx.Lock()
	defer o.mx.Unlock()
	return o.current
}

// Samples returns the number of width samples observed so far.
func (o *Observer) Samples() int {
	o.mx.Lock()
	defer o.mx.Unlock()
	return o.samples
}
