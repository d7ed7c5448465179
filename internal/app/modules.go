package app

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/dcmget/internal/ui/output"
	"go.trai.ch/dcmget/internal/ui/style"
)

// RenderModules writes the module table. Without a version only the artifact
// names are listed.
func RenderModules(w io.Writer, version domain.PackageVersion, localRepository string) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.Profile())

	mods := domain.Modules()
	title := domain.PackageName + " modules (" + strconv.Itoa(len(mods)) + ")"
	if !version.IsEmpty() {
		title = domain.PackageName + " " + version.String() + " modules (" + strconv.Itoa(len(mods)) + ")"
	}
	if _, err := io.WriteString(w, style.Heading.Renderer(r).Render(title)+"\n"); err != nil {
		return err
	}

	width := 0
	for _, m := range mods {
		width = max(width, len(m.ArtifactID()))
	}
	name := r.NewStyle().Width(width + 2)
	path := r.NewStyle().Foreground(style.Slate)

	root := ""
	if localRepository != "" {
		root = domain.CacheRoot(localRepository)
	}

	for _, m := range mods {
		line := "  " + m.ArtifactID()
		if !version.IsEmpty() {
			expected := "(local repository unknown)"
			if root != "" {
				expected = domain.NewCacheEntry(root, m, version).ExpectedPath
			}
			line = "  " + name.Render(m.ArtifactID()) + path.Render(expected)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
