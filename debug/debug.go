// Package debug enables tracing of the engine from the environment.
//
// Each flag is read once at start up from a FLAT_DEBUG_* variable
// holding a value accepted by strconv.ParseBool:
//
//	FLAT_DEBUG_NORMALIZE    every value normalized and its entity
//	FLAT_DEBUG_DENORMALIZE  every entity denormalized and its value
//	FLAT_DEBUG_STORE        bucket creation
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Normalize   bool
	Denormalize bool
	Store       bool
}

var d = &debug{
	Normalize:   boolEnv("FLAT_DEBUG_NORMALIZE"),
	Denormalize: boolEnv("FLAT_DEBUG_DENORMALIZE"),
	Store:       boolEnv("FLAT_DEBUG_STORE"),
}

func boolEnv(v string) bool {
	b, _ := strconv.ParseBool(os.Getenv(v))
	return b
}

func Normalize() bool   { return d.Normalize }
func Denormalize() bool { return d.Denormalize }
func Store() bool       { return d.Store }
