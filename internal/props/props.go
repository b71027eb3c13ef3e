// Package props reads named calibration properties from a pluggable
// key-value source and parses them into typed values, substituting
// compiled-in defaults whenever a property is absent or malformed.
//
// Resolution never fails: a stale-but-valid default is always preferable
// to an error on the metrics path feeding the compositor.
package props

import (
	"os"
	"strings"
)

// Source supplies raw calibration property strings. Get returns the empty
// string when the named property is unset. Implementations must be safe
// for concurrent reads.
type Source interface {
	Get(name string) string
}

// Static is a fixed in-memory Source, used for tests and fixtures.
type Static map[string]string

// Get implements Source.
func (s Static) Get(name string) string { return s[name] }

// Env resolves properties from environment variables. A property name
// like "persist.dvr.lens_distance" maps to the variable
// PERSIST_DVR_LENS_DISTANCE.
type Env struct{}

// Get implements Source.
func (Env) Get(name string) string { return os.Getenv(EnvKey(name)) }

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// EnvKey returns the environment variable name for a property name.
func EnvKey(name string) string {
	return strings.ToUpper(envKeyReplacer.Replace(name))
}
