// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"strings"

	"github.com/specialistvlad/weldlink/internal/config"
	"github.com/specialistvlad/weldlink/internal/schema"
)

// translateProfile converts the HCL-specific profile schema into the agnostic model.
func (l *Loader) translateProfile(s *schema.Profile) (*config.Profile, error) {
	p := &config.Profile{
		Name:            s.Name,
		Description:     s.Description,
		ToolkitEnv:      strings.TrimSpace(s.ToolkitEnv),
		ToolkitFallback: strings.TrimSpace(s.ToolkitFallback),
		LibrarySubdir:   s.LibrarySubdir,
		Libraries:       append([]string(nil), s.Libraries...),
		CxxRuntime:      s.CxxRuntime,
	}
	if s.Runtime != nil {
		p.RuntimeDir = s.Runtime.Dir
		p.RuntimeLib = s.Runtime.Library
		p.BuildTool = s.Runtime.BuildTool
	}
	if len(s.Platforms) > 0 {
		p.Platforms = make(map[string][]string, len(s.Platforms))
		for _, platform := range s.Platforms {
			p.Platforms[platform.Name] = append([]string(nil), platform.Libraries...)
		}
	}

	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
