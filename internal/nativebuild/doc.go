// Package nativebuild drives the external build tool that compiles the
// vendored native runtime.
//
// A Driver moves through Idle, Cleaning, Building and Done. Each step is one
// blocking child process run in the runtime directory; a non-zero exit stops
// the driver in the step that failed and nothing after it runs. Every build
// starts from `clean` so the artifact always reflects the current toolkit.
package nativebuild
