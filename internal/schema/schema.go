// Package schema holds the gohcl decoding targets for profile files.
package schema

// File represents the top-level structure of a profile file. Anything other
// than profile blocks is rejected when decoding.
type File struct {
	Profiles []*Profile `hcl:"profile,block"`
}

// Profile represents a `profile` block.
//
//	profile "cuda" {
//	  toolkit_env    = "CUDA_PATH"
//	  library_subdir = "lib64"
//	  libraries      = ["cuda"]
//	}
type Profile struct {
	Name            string      `hcl:"name,label"`
	Description     string      `hcl:"description,optional"`
	ToolkitEnv      string      `hcl:"toolkit_env,optional"`
	ToolkitFallback string      `hcl:"toolkit_fallback,optional"`
	LibrarySubdir   string      `hcl:"library_subdir"`
	Libraries       []string    `hcl:"libraries"`
	CxxRuntime      string      `hcl:"cxx_runtime,optional"`
	Runtime         *Runtime    `hcl:"runtime,block"`
	Platforms       []*Platform `hcl:"platform,block"`
}

// Runtime represents the `runtime` block describing the vendored native library.
type Runtime struct {
	Dir       string `hcl:"dir,optional"`
	Library   string `hcl:"library,optional"`
	BuildTool string `hcl:"build_tool,optional"`
}

// Platform represents a `platform` block overriding the auxiliary libraries
// linked for one target platform category.
type Platform struct {
	Name      string   `hcl:"name,label"`
	Libraries []string `hcl:"libraries"`
}
