// Package config defines the format-agnostic build profile model along with
// the Loader interface used to populate it.
//
// A Profile names one toolkit-version configuration: where the toolkit comes
// from, which of its libraries are linked, and how the vendored native
// runtime is built. The `app` package selects exactly one profile per
// invocation; concrete loaders, such as the HCL one, live in separate
// packages.
package config
