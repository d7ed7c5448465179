package domain

// GOOS values with platform-specific resolution rules.
const (
	OSWindows = "windows"
)

// Platform holds the executable resolution rules of an operating system.
type Platform struct {
	// Extensions lists the candidate suffixes in priority order.
	// An empty string stands for the bare name.
	Extensions []string
	// RequireExecBit demands an execute permission bit on candidates.
	RequireExecBit bool
}

// PlatformFor returns the resolution rules for goos.
func PlatformFor(goos string) Platform {
	if goos == OSWindows {
		return Platform{
			Extensions: []string{".cmd", ".bat", ".exe", ""},
		}
	}
	return Platform{
		Extensions:     []string{""},
		RequireExecBit: true,
	}
}

// Candidates returns the file names to try for name, in priority order.
func (p Platform) Candidates(name string) []string {
	if len(p.Extensions) == 0 {
		return []string{name}
	}
	out := make([]string, 0, len(p.Extensions))
	for _, ext := range p.Extensions {
		out = append(out, name+ext)
	}
	return out
}
