package linkdirective

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects how a Set is written for the host build system.
type Format string

const (
	// FormatCargo is the `cargo:` line protocol read from a build script's stdout.
	FormatCargo Format = "cargo"
	// FormatLDFlags is a single line suitable for CGO_LDFLAGS.
	FormatLDFlags Format = "ldflags"
	// FormatJSON is an array of directive objects.
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCargo, FormatLDFlags, FormatJSON}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown directive format %q (want one of %v)", s, Formats)
}

// Encode writes set to w in format f.
func Encode(w io.Writer, set Set, f Format) error {
	switch f {
	case FormatCargo:
		return encodeCargo(w, set)
	case FormatLDFlags:
		return encodeLDFlags(w, set)
	case FormatJSON:
		return encodeJSON(w, set)
	default:
		return fmt.Errorf("unknown directive format %q", f)
	}
}

func encodeCargo(w io.Writer, set Set) error {
	bw := bufio.NewWriter(w)
	for _, d := range set {
		switch d.Kind {
		case SearchPath:
			if d.Search != SearchAll {
				fmt.Fprintf(bw, "cargo:rustc-link-search=%s=%s\n", d.Search, d.Value)
			} else {
				fmt.Fprintf(bw, "cargo:rustc-link-search=%s\n", d.Value)
			}
		case Dylib:
			fmt.Fprintf(bw, "cargo:rustc-link-lib=dylib=%s\n", d.Value)
		case Static:
			fmt.Fprintf(bw, "cargo:rustc-link-lib=static=%s\n", d.Value)
		default:
			return fmt.Errorf("cannot encode directive kind %v", d.Kind)
		}
	}
	return bw.Flush()
}

// encodeLDFlags writes search paths first, then static archives, then shared
// libraries. A single-pass C linker only resolves an archive's undefined
// symbols against libraries named after it.
func encodeLDFlags(w io.Writer, set Set) error {
	var search, static, dylib []string
	for _, d := range set {
		switch d.Kind {
		case SearchPath:
			search = append(search, "-L"+d.Value)
		case Static:
			static = append(static, "-l"+d.Value)
		case Dylib:
			dylib = append(dylib, "-l"+d.Value)
		default:
			return fmt.Errorf("cannot encode directive kind %v", d.Kind)
		}
	}
	flags := append(append(search, static...), dylib...)
	_, err := fmt.Fprintln(w, strings.Join(flags, " "))
	return err
}

type jsonDirective struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Search string `json:"search,omitempty"`
}

func encodeJSON(w io.Writer, set Set) error {
	out := make([]jsonDirective, 0, len(set))
	for _, d := range set {
		out = append(out, jsonDirective{Kind: d.Kind.String(), Value: d.Value, Search: string(d.Search)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
