// Package linkdirective builds the ordered set of linker directives for the
// native runtime and encodes it for the host build system.
//
// Order is significant: some linkers resolve symbols strictly in emission
// order, so the toolkit search path comes first and the static runtime
// library comes after every dynamic library it depends on.
package linkdirective
