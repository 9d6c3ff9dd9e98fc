// Package app contains the core orchestration logic. It defines the App
// struct, its configuration, and the single-pass pipeline
// resolve paths → rebuild the native runtime → emit link directives,
// decoupled from any specific entrypoint like a CLI.
package app
