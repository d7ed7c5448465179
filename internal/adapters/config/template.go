package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const templateHeader = "dcmget configuration.\n" +
	"Every key can be overridden with a DCMGET_<KEY> environment variable\n" +
	"or the matching command-line flag."

// WriteTemplate writes a commented configuration file to path.
// An existing file is left untouched unless replace is set, and is only
// replaced once the new content has been written in full.
func (l *Loader) WriteTemplate(path string, cfg *domain.Config, replace bool) error {
	if _, err := os.Stat(path); err == nil && !replace {
		return zerr.With(zerr.Wrap(domain.ErrConfigExists, "use --force to replace it"), "path", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}

	data, err := RenderTemplate(cfg)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".dcmget-*.yaml")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// RenderTemplate renders cfg as a YAML document with a comment on every key.
func RenderTemplate(cfg *domain.Config) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	addScalar(doc, KeyVersion, cfg.Version.String(), "!!str",
		"Tag or branch of the dcm4che repository to install, e.g. 5.20.0.")
	addScalar(doc, KeyBuildDir, orDefault(cfg.BuildDir, domain.DefaultBuildDir), "!!str",
		"Parent directory of the cloned working tree.")
	addScalar(doc, KeyLocalRepository, cfg.LocalRepository, "!!str",
		"Maven local repository receiving the installed artifacts.")
	addScalar(doc, KeyBatchMode, strconv.FormatBool(cfg.BatchMode), "!!bool",
		"Run mvn in non-interactive batch mode (-B).")
	addScalar(doc, KeyOutputMode, cfg.OutputMode, "!!str",
		"Subprocess output: auto, tty (pseudo-terminal) or pipe.")
	addScalar(doc, KeyLogFormat, cfg.LogFormat, "!!str",
		"Log format: pretty or json.")

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: templateHeader,
		Content:     []*yaml.Node{doc},
	}); err != nil {
		return nil, zerr.Wrap(domain.ErrConfigWriteFailed, err.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(domain.ErrConfigWriteFailed, err.Error())
	}
	return buf.Bytes(), nil
}

func addScalar(mapping *yaml.Node, key, value, tag, comment string) {
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key, HeadComment: comment},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value},
	)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
