package config

import (
	"fmt"
	"sort"
)

// Defaults applied to any profile field left empty by its source.
const (
	DefaultCxxRuntime = "stdc++"
	DefaultRuntimeDir = "weld_rt/cpp"
	DefaultRuntimeLib = "weldrt"
	DefaultBuildTool  = "make"
)

// Model is the unified set of profiles known to one invocation.
type Model struct {
	Profiles map[string]*Profile
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Profiles: make(map[string]*Profile)}
}

// Add registers p, rejecting a second profile with the same name.
func (m *Model) Add(p *Profile) error {
	if _, exists := m.Profiles[p.Name]; exists {
		return fmt.Errorf("profile %q is defined more than once", p.Name)
	}
	m.Profiles[p.Name] = p
	return nil
}

// Profile returns the named profile.
func (m *Model) Profile(name string) (*Profile, error) {
	p, ok := m.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (available: %v)", name, m.Names())
	}
	return p, nil
}

// Names returns the sorted profile names.
func (m *Model) Names() []string {
	names := make([]string, 0, len(m.Profiles))
	for name := range m.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profile is one toolkit-version configuration.
type Profile struct {
	Name        string
	Description string

	// ToolkitEnv names the variable holding the toolkit root. When set the
	// variable is mandatory; when empty ToolkitFallback is used instead.
	ToolkitEnv      string
	ToolkitFallback string

	// LibrarySubdir is appended to the normalized toolkit root.
	LibrarySubdir string
	// Libraries are linked dynamically in order; the first is the primary
	// compute library, the rest are companions.
	Libraries []string

	CxxRuntime string
	RuntimeDir string // relative to the project root
	RuntimeLib string
	BuildTool  string

	// Platforms replaces the auxiliary library list of a platform category.
	Platforms map[string][]string
}

// PrimaryLibrary returns the toolkit's primary compute library.
func (p *Profile) PrimaryLibrary() string {
	if len(p.Libraries) == 0 {
		return ""
	}
	return p.Libraries[0]
}

// ApplyDefaults fills empty fields with the package defaults.
func (p *Profile) ApplyDefaults() {
	if p.CxxRuntime == "" {
		p.CxxRuntime = DefaultCxxRuntime
	}
	if p.RuntimeDir == "" {
		p.RuntimeDir = DefaultRuntimeDir
	}
	if p.RuntimeLib == "" {
		p.RuntimeLib = DefaultRuntimeLib
	}
	if p.BuildTool == "" {
		p.BuildTool = DefaultBuildTool
	}
}

// Validate checks that the profile can drive a build.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if p.ToolkitEnv == "" && p.ToolkitFallback == "" {
		return fmt.Errorf("profile %q: one of toolkit_env or toolkit_fallback is required", p.Name)
	}
	if p.ToolkitEnv != "" && p.ToolkitFallback != "" {
		return fmt.Errorf("profile %q: toolkit_env and toolkit_fallback are mutually exclusive", p.Name)
	}
	if p.PrimaryLibrary() == "" {
		return fmt.Errorf("profile %q: at least one toolkit library is required", p.Name)
	}
	return nil
}
