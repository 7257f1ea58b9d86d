package breakpoint

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigError, i.e.
//
//     errors.Is(err, breakpoint.ErrConfiguration)
//
// holds for all errors flagging an invalid tier configuration.
var ErrConfiguration = errors.New("invalid breakpoint configuration")

// Reason tells what is wrong with a tier configuration.
type Reason uint8

const (
	EmptySet      Reason = iota + 1 // no tiers at all
	MissingBase                     // no tier with min-width 0
	NotIncreasing                   // thresholds not strictly increasing
	MissingBundle                   // a tier variant has no attribute bundle
	BadDefinition                   // a tier definition could not be read
)

var reasonNames = map[Reason]string{
	EmptySet:      "empty tier set",
	MissingBase:   "missing base tier",
	NotIncreasing: "thresholds not strictly increasing",
	MissingBundle: "missing attribute bundle",
	BadDefinition: "bad tier definition",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// ConfigError is returned when tiers violate the invariants of a set.
// It is raised at construction time only; resolving a width never fails.
type ConfigError struct {
	Reason Reason
	Detail string
}

// ConfigErrorf creates a configuration error with a formatted detail message.
// Packages building on top of breakpoint use it to flag their own
// configuration problems with the same error kind.
func ConfigErrorf(r Reason, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: r, Detail: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return ErrConfiguration.Error() + ": " + e.Reason.String()
	}
	return ErrConfiguration.Error() + ": " + e.Reason.String() + ": " + e.Detail
}

// Is makes every ConfigError match ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}
