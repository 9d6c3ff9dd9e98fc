package hcl

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/weldlink/internal/config"
	"github.com/specialistvlad/weldlink/internal/ctxlog"
	"github.com/specialistvlad/weldlink/internal/fsutil"
	"github.com/specialistvlad/weldlink/internal/schema"
)

//go:embed profiles/builtin.hcl
var builtinProfiles []byte

const builtinFilename = "builtin.hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// SkipBuiltin leaves the embedded profiles out of the model.
	SkipBuiltin bool
}

// NewLoader creates a new HCL profile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the built-in profiles and every .hcl file under paths, and
// merges all of them into one model. A path that does not exist is an error:
// profile paths are always given explicitly.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()
	parser := hclparse.NewParser()

	if !l.SkipBuiltin {
		file, diags := parser.ParseHCL(builtinProfiles, builtinFilename)
		if err := l.decodeInto(ctx, model, file, diags, builtinFilename); err != nil {
			return nil, err
		}
	}

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered profile files.", "count", len(files))

	for _, path := range files {
		file, diags := parser.ParseHCLFile(path)
		if err := l.decodeInto(ctx, model, file, diags, path); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "profiles", model.Names())
	return model, nil
}

func (l *Loader) decodeInto(ctx context.Context, model *config.Model, file *hcl.File, diags hcl.Diagnostics, name string) error {
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}

	var root schema.File
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	for _, block := range root.Profiles {
		profile, err := l.translateProfile(block)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := model.Add(profile); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		ctxlog.FromContext(ctx).Debug("Profile loaded.", "profile", profile.Name, "source", name)
	}
	return nil
}

// findAllHCLFiles expands the given paths into a flat, de-duplicated list of .hcl files.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing profile path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
		} else if filepath.Ext(path) == ".hcl" {
			add(path)
		} else {
			return nil, fmt.Errorf("profile file %s must have the .hcl extension", path)
		}
	}
	return allFiles, nil
}
