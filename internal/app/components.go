package app

import "go.trai.ch/dcmget/internal/core/ports"

// Components holds the wired application and the logger used to report its errors.
type Components struct {
	App    *App
	Logger ports.Logger
}
