// Package simconfig loads and validates run configuration for gridflow.
//
// A run is described by one YAML file covering the geometry, the network
// population (random placement or files on disk), the connectivity policy
// and the demand sweep tunables. Load reads, defaults and validates the
// file in one step; every failure wraps ErrInvalidConfig so callers can
// treat configuration problems as fatal before any solving starts.
package simconfig
