// Package cli is responsible for parsing command-line arguments, reading the
// host build system's environment, and handling process-level concerns like
// exit codes. It translates flags into the application's configuration and
// dispatches to the app package.
package cli
