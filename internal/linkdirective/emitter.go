package linkdirective

import (
	"os"
	"strings"
)

// DefaultAuxiliary lists the extra system libraries a platform needs linked
// explicitly. Platforms without an entry need none.
var DefaultAuxiliary = map[Platform][]string{
	Darwin: {"z", "c++"},
}

// Inputs carries everything Emit needs; all of it is already resolved.
type Inputs struct {
	Triple Triple

	// LibraryDir is the toolkit library directory.
	LibraryDir string
	// Libraries are the toolkit libraries, primary first.
	Libraries []string
	// Auxiliary overrides DefaultAuxiliary per platform.
	Auxiliary map[Platform][]string

	CxxRuntime string
	RuntimeLib string
	RuntimeDir string
}

// AuxiliaryFor returns the auxiliary libraries for the inputs' target.
func (in Inputs) AuxiliaryFor() []string {
	platform := in.Triple.Platform()
	if libs, ok := in.Auxiliary[platform]; ok {
		return libs
	}
	return DefaultAuxiliary[platform]
}

// Emit returns the ordered directive set:
// toolkit search path, toolkit libraries, auxiliary libraries, the C++
// runtime, then the static runtime library and its search path.
func Emit(in Inputs) Set {
	set := Set{{Kind: SearchPath, Value: in.LibraryDir}}
	for _, lib := range in.Libraries {
		set = append(set, Directive{Kind: Dylib, Value: lib})
	}
	for _, lib := range in.AuxiliaryFor() {
		set = append(set, Directive{Kind: Dylib, Value: lib})
	}
	set = append(set,
		Directive{Kind: Dylib, Value: in.CxxRuntime},
		Directive{Kind: Static, Value: in.RuntimeLib},
		Directive{Kind: SearchPath, Value: strings.TrimSuffix(in.RuntimeDir, string(os.PathSeparator)), Search: SearchNative},
	)
	return set
}
