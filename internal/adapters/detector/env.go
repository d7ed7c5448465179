// Package detector decides how subprocess output is attached to the terminal.
package detector

import (
	"os"

	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode selects how external processes are attached to the console.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeTTY runs processes under a pseudo-terminal so tools keep colours and progress bars.
	ModeTTY
	// ModePipe runs processes with plain pipes, one relayed line at a time.
	ModePipe
)

// String returns the configuration name of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTTY:
		return domain.OutputModeTTY
	case ModePipe:
		return domain.OutputModePipe
	default:
		return domain.OutputModeAuto
	}
}

// DetectEnvironment returns the recommended mode for the current process.
// Stdout must be a terminal and CI must be unset for ModeTTY.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModePipe
	}
	return ModeTTY
}

// ResolveMode applies the configured mode to the detected one.
func ResolveMode(detected OutputMode, configured string) (OutputMode, error) {
	switch configured {
	case domain.OutputModeTTY:
		return ModeTTY, nil
	case domain.OutputModePipe:
		return ModePipe, nil
	case domain.OutputModeAuto, "":
		return detected, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrInvalidOutputMode, "unknown output mode"), "output_mode", configured)
	}
}
