package domain

import "time"

// Receipt records a completed installation of one version.
type Receipt struct {
	Version         PackageVersion `json:"version"`
	LocalRepository string         `json:"localRepository"`
	WorkingTree     string         `json:"workingTree"`
	Modules         int            `json:"modules"`
	ManifestDigest  uint64         `json:"manifestDigest"`
	InstalledAt     time.Time      `json:"installedAt"`
	Duration        time.Duration  `json:"duration"`
}
