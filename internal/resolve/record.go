package resolve

import "github.com/vk/shellforge/internal/catalog"

// Record is the resolved environment for one platform: the ordered tool
// references to install plus the startup action for the constructed shell.
// A Record is created fresh on every resolution and never mutated after.
type Record struct {
	Platform string              `json:"platform"`
	Tools    []catalog.Reference `json:"tools"`
	Startup  string              `json:"startup,omitempty"`

	// StartupArgv is the startup action pre-split with shell quoting
	// rules, for consumers that want an argv instead of a command line.
	StartupArgv []string `json:"startup_argv,omitempty"`
}
