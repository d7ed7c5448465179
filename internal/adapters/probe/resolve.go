// Package probe locates external executables on the search path.
package probe

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/zerr"
)

// StatFunc reports file information for a path. os.Stat satisfies it.
type StatFunc func(name string) (fs.FileInfo, error)

// ResolvePath searches the directories of rawPath, in order, for the first
// candidate of name allowed by rules. Empty list elements stand for the
// current directory. A candidate must be a regular file and, when the rules
// demand it, carry an execute bit.
func ResolvePath(rawPath, name string, rules domain.Platform, stat StatFunc) (domain.ExecutableLocation, error) {
	if stat == nil {
		stat = os.Stat
	}

	for _, dir := range filepath.SplitList(rawPath) {
		if dir == "" {
			dir = "."
		}
		for _, candidate := range rules.Candidates(name) {
			path := filepath.Join(dir, candidate)
			if !isExecutable(stat, path, rules.RequireExecBit) {
				continue
			}
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
			return domain.ExecutableLocation{Name: name, Path: path}, nil
		}
	}

	return domain.ExecutableLocation{}, zerr.With(zerr.Wrap(domain.ErrExecutableNotFound, name+" not found on PATH"), "executable", name)
}

func isExecutable(stat StatFunc, path string, requireExecBit bool) bool {
	info, err := stat(path)
	if err != nil {
		return false
	}
	m := info.Mode()
	if !m.IsRegular() {
		return false
	}
	return !requireExecBit || m&0o111 != 0
}
