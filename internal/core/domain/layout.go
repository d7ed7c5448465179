package domain

import "path/filepath"

const (
	// PackageName is the prefix shared by every artifact of the package family.
	PackageName = "dcm4che"

	// RepositoryURL is the fixed upstream repository of the package family.
	RepositoryURL = "https://github.com/dcm4che/dcm4che.git"

	// SourceDirName is the name of the working tree created under the build directory.
	SourceDirName = PackageName

	// GroupPath is the group directory of the package family inside a Maven repository.
	GroupPath = "org/dcm4che"

	// ManifestExt is the extension of the per-module manifest file.
	ManifestExt = "pom"

	// BuildManifest is the build-tool manifest at the root of the working tree.
	BuildManifest = "pom.xml"

	// M2DirName is the per-user Maven directory.
	M2DirName = ".m2"

	// RepositoryDirName is the local repository directory under M2DirName.
	RepositoryDirName = "repository"

	// StateDirName is the name of the tool's state directory inside the build directory.
	StateDirName = ".dcmget"

	// ReceiptDirName is the name of the receipt store directory.
	ReceiptDirName = "receipts"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "dcmget.yaml"

	// DefaultBuildDir is the default parent directory of the working tree.
	DefaultBuildDir = "build"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultLocalRepository returns the Maven local repository for the given home directory.
// It joins home, .m2 and repository.
func DefaultLocalRepository(home string) string {
	return filepath.Join(home, M2DirName, RepositoryDirName)
}

// CacheRoot returns the directory holding every module of the package family
// inside the given local repository.
func CacheRoot(localRepository string) string {
	return filepath.Join(localRepository, filepath.FromSlash(GroupPath))
}

// ReceiptStorePath returns the receipt store directory under the build directory.
// It joins buildDir, .dcmget and receipts.
func ReceiptStorePath(buildDir string) string {
	return filepath.Join(buildDir, StateDirName, ReceiptDirName)
}
