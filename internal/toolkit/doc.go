// Package toolkit resolves the project root and the compute toolkit
// installation root for one build invocation.
//
// The toolkit root is normalized to end in exactly one path separator before
// any subdirectory is appended to it, and it must exist as a directory. A
// profile that names a toolkit variable makes that variable mandatory: a
// misconfigured host fails here, before any build step runs, instead of
// silently linking against a default toolkit.
package toolkit
