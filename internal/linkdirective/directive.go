package linkdirective

import (
	"fmt"
	"strings"
)

// Kind distinguishes the three directive forms.
type Kind int

const (
	SearchPath Kind = iota
	Dylib
	Static
)

func (k Kind) String() string {
	switch k {
	case SearchPath:
		return "search"
	case Dylib:
		return "dylib"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// SearchKind qualifies a search path; the empty value searches for all kinds.
type SearchKind string

const (
	SearchAll    SearchKind = ""
	SearchNative SearchKind = "native"
)

// Directive is one instruction to the host linker.
type Directive struct {
	Kind  Kind
	Value string
	// Search only applies to SearchPath directives.
	Search SearchKind
}

func (d Directive) String() string {
	if d.Kind == SearchPath && d.Search != SearchAll {
		return fmt.Sprintf("%s %s=%s", d.Kind, d.Search, d.Value)
	}
	return fmt.Sprintf("%s %s", d.Kind, d.Value)
}

// Set is an ordered sequence of directives.
type Set []Directive

// Contains reports whether the set holds a directive of kind with value.
func (s Set) Contains(kind Kind, value string) bool {
	for _, d := range s {
		if d.Kind == kind && d.Value == value {
			return true
		}
	}
	return false
}

// Validate checks the members every set must carry regardless of profile.
func (s Set) Validate(primary, cxxRuntime, runtimeLib string) error {
	var missing []string
	if !s.Contains(Dylib, primary) {
		missing = append(missing, "dylib "+primary)
	}
	if !s.Contains(Dylib, cxxRuntime) {
		missing = append(missing, "dylib "+cxxRuntime)
	}
	if !s.Contains(Static, runtimeLib) {
		missing = append(missing, "static "+runtimeLib)
	}
	hasSearch := false
	for _, d := range s {
		if d.Kind == SearchPath {
			hasSearch = true
			break
		}
	}
	if !hasSearch {
		missing = append(missing, "search path")
	}
	if len(missing) > 0 {
		return fmt.Errorf("link directive set is incomplete: missing %s", strings.Join(missing, ", "))
	}
	return nil
}
