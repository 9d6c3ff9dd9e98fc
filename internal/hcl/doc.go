// Package hcl provides the HCL implementation of config.Loader. It parses the
// built-in profiles embedded in the binary together with any user profile
// files, evaluates their expressions against a small function library, and
// translates the result into the format-agnostic config.Model.
package hcl
