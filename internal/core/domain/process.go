package domain

import "path/filepath"

const (
	// ToolGit is the base name of the version-control client.
	ToolGit = "git"

	// ToolMaven is the base name of the build tool.
	ToolMaven = "mvn"
)

// ExecutableLocation is the resolved path of an external tool binary.
type ExecutableLocation struct {
	Name string
	Path string
}

// IsZero reports whether the location has not been resolved.
func (l ExecutableLocation) IsZero() bool {
	return l.Path == ""
}

// Toolchain holds the executables resolved for one workflow run.
type Toolchain struct {
	Git   ExecutableLocation
	Maven ExecutableLocation
}

// WorkingTree is the directory holding a freshly cloned source repository.
type WorkingTree struct {
	Path string
}

// Manifest returns the path of the build-tool manifest inside the tree.
func (t WorkingTree) Manifest() string {
	return filepath.Join(t.Path, BuildManifest)
}

// Command describes one external process invocation.
type Command struct {
	// Name labels relayed output lines, e.g. "git" yields "git> ...".
	Name string
	Path string
	Args []string
	Dir  string
	Env  []string
}

// ProcessOutcome is the result of a finished external process.
// Zero is success; anything else is failure.
type ProcessOutcome struct {
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (o ProcessOutcome) Success() bool {
	return o.ExitCode == 0
}
