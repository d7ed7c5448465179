package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrVersionNotSet is returned when no package version was supplied.
	ErrVersionNotSet = zerr.New("version of the required dcm4che project is not set")

	// ErrMissingRequirements is returned when a required executable is absent from the search path.
	ErrMissingRequirements = zerr.New("please install the necessary requirements before trying to install dcm4che")

	// ErrExecutableNotFound is returned when an executable cannot be resolved on the search path.
	ErrExecutableNotFound = zerr.New("executable not found")

	// ErrCloneFailed is returned when cloning the upstream repository exits non-zero.
	ErrCloneFailed = zerr.New("cloning the dcm4che git repository failed")

	// ErrCheckoutFailed is returned when checking out the requested version exits non-zero.
	ErrCheckoutFailed = zerr.New("checking out the requested version of the git repository failed")

	// ErrInstallFailed is returned when the build tool install goal exits non-zero.
	ErrInstallFailed = zerr.New("installation of the dcm4che package into the local maven repository failed")

	// ErrCleanFailed is returned when the build tool clean goal exits non-zero.
	ErrCleanFailed = zerr.New("cleaning up the build of the dcm4che package failed")

	// ErrProcessStartFailed is returned when a subprocess cannot be started at all.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrWorkingTreeCreateFailed is returned when the clone destination cannot be prepared.
	ErrWorkingTreeCreateFailed = zerr.New("failed to prepare working tree directory")

	// ErrNotInstalled is returned by check when a version is absent from the local repository.
	ErrNotInstalled = zerr.New("dcm4che version is not installed")

	// ErrManifestReadFailed is returned when a module manifest cannot be read for digesting.
	ErrManifestReadFailed = zerr.New("failed to read module manifest")

	// ErrHomeNotResolved is returned when the user home directory cannot be determined.
	ErrHomeNotResolved = zerr.New("failed to resolve home directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigExists is returned when init would overwrite an existing config file.
	ErrConfigExists = zerr.New("config file already exists")

	// ErrConfigWriteFailed is returned when the config template cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrInvalidOutputMode is returned when an unknown output mode is requested.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'tty' or 'pipe'")

	// ErrStoreCreateFailed is returned when the receipt store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create receipt store directory")

	// ErrStoreReadFailed is returned when a receipt cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read receipt")

	// ErrStoreUnmarshalFailed is returned when a receipt cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal receipt")

	// ErrStoreMarshalFailed is returned when a receipt cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal receipt")

	// ErrStoreWriteFailed is returned when a receipt cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write receipt")
)

// ExitCode returns the "exit_code" metadata attached anywhere in err's chain.
func ExitCode(err error) (int, bool) {
	type metadataer interface {
		Metadata() map[string]any
	}

	for current := err; current != nil; current = errors.Unwrap(current) {
		md, ok := current.(metadataer)
		if !ok {
			continue
		}
		if code, ok := md.Metadata()["exit_code"].(int); ok {
			return code, true
		}
	}
	return 0, false
}
