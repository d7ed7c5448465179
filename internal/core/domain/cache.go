package domain

import "path/filepath"

// CacheEntry is the computed location of one module's manifest in the local cache.
// It is derived from a module, a version and a cache root and never stored.
type CacheEntry struct {
	Module       Module
	ModuleDir    string
	ManifestName string
	ExpectedPath string
}

// NewCacheEntry computes the cache entry of module at version under cacheRoot:
// <cacheRoot>/dcm4che-<module>/<version>/dcm4che-<module>-<version>.pom.
func NewCacheEntry(cacheRoot string, module Module, version PackageVersion) CacheEntry {
	dir := module.ArtifactID()
	manifest := dir + "-" + version.String() + "." + ManifestExt

	return CacheEntry{
		Module:       module,
		ModuleDir:    dir,
		ManifestName: manifest,
		ExpectedPath: filepath.Join(cacheRoot, dir, version.String(), manifest),
	}
}

// CacheEntries computes the cache entry of every module, in module order.
func CacheEntries(cacheRoot string, version PackageVersion) []CacheEntry {
	mods := Modules()
	entries := make([]CacheEntry, 0, len(mods))
	for _, m := range mods {
		entries = append(entries, NewCacheEntry(cacheRoot, m, version))
	}
	return entries
}
