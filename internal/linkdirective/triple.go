package linkdirective

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is the category a target operating system falls into when
// choosing auxiliary libraries.
type Platform string

const (
	Darwin  Platform = "darwin"
	Linux   Platform = "linux"
	Windows Platform = "windows"
)

// Triple is a parsed target triple such as x86_64-unknown-linux-gnu.
type Triple struct {
	Arch   string
	Vendor string
	OS     string
	Env    string
}

// ParseTriple splits s into its components. Three-part triples
// (x86_64-apple-darwin) have no environment; two-part triples
// (wasm32-wasip1) have neither vendor nor environment.
func ParseTriple(s string) (Triple, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	for _, p := range parts {
		if p == "" {
			return Triple{}, fmt.Errorf("malformed target triple %q", s)
		}
	}
	switch len(parts) {
	case 2:
		return Triple{Arch: parts[0], OS: parts[1]}, nil
	case 3:
		return Triple{Arch: parts[0], Vendor: parts[1], OS: parts[2]}, nil
	case 4:
		return Triple{Arch: parts[0], Vendor: parts[1], OS: parts[2], Env: parts[3]}, nil
	default:
		return Triple{}, fmt.Errorf("malformed target triple %q: expected arch[-vendor]-os[-env]", s)
	}
}

// String joins the triple back together.
func (t Triple) String() string {
	s := t.Arch
	if t.Vendor != "" {
		s += "-" + t.Vendor
	}
	s += "-" + t.OS
	if t.Env != "" {
		s += "-" + t.Env
	}
	return s
}

// Platform returns the platform category of the triple's operating system.
func (t Triple) Platform() Platform {
	switch {
	case t.OS == "darwin" || (t.Vendor == "apple" && t.OS == "macos"):
		return Darwin
	case strings.HasPrefix(t.OS, "windows"):
		return Windows
	default:
		return Platform(t.OS)
	}
}

var goArchToTriple = map[string]string{
	"amd64":   "x86_64",
	"386":     "i686",
	"arm64":   "aarch64",
	"arm":     "armv7",
	"ppc64le": "powerpc64le",
	"riscv64": "riscv64gc",
	"s390x":   "s390x",
}

// HostTriple describes the platform this binary runs on, for when the host
// build system did not provide a target.
func HostTriple() Triple {
	arch, ok := goArchToTriple[runtime.GOARCH]
	if !ok {
		arch = runtime.GOARCH
	}
	switch runtime.GOOS {
	case "darwin":
		return Triple{Arch: arch, Vendor: "apple", OS: "darwin"}
	case string(Windows):
		return Triple{Arch: arch, Vendor: "pc", OS: "windows", Env: "msvc"}
	case "linux":
		return Triple{Arch: arch, Vendor: "unknown", OS: "linux", Env: "gnu"}
	default:
		return Triple{Arch: arch, Vendor: "unknown", OS: runtime.GOOS}
	}
}
