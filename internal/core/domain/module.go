// Package domain contains the core types of the dcm4che installer.
package domain

import "strings"

// PackageVersion identifies a release of the package family, typically a tag name.
// It is used both as the checkout target and as a path segment in the local cache.
type PackageVersion string

// String returns the raw version string.
func (v PackageVersion) String() string {
	return string(v)
}

// IsEmpty reports whether no usable version was supplied.
func (v PackageVersion) IsEmpty() bool {
	return strings.TrimSpace(string(v)) == ""
}

// Module is the name of one sub-module of the package family.
type Module string

// ArtifactID returns the Maven artifact id of the module, e.g. "dcm4che-core".
func (m Module) ArtifactID() string {
	return PackageName + "-" + string(m)
}

// modules is the fixed, ordered list of published sub-modules.
// dict-arc is not part of the list.
var modules = [...]Module{
	"assembly",
	"audit",
	"audit-keycloak",
	"camel",
	"conf",
	"conf-api",
	"conf-api-hl7",
	"conf-json",
	"conf-json-schema",
	"conf-ldap",
	"conf-ldap-audit",
	"conf-ldap-hl7",
	"conf-ldap-imageio",
	"conf-ldap-schema",
	"core",
	"dcmr",
	"deident",
	"dict",
	"emf",
	"hl7",
	"image",
	"imageio",
	"imageio-opencv",
	"imageio-rle",
	"jboss-modules",
	"js-dict",
	"json",
	"mime",
	"net",
	"net-audit",
	"net-hl7",
	"net-imageio",
	"parent",
	"soundex",
	"test-data",
	"ws-rs",
	"xdsi",
}

// Modules returns a copy of the ordered module list.
func Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules[:])
	return out
}
