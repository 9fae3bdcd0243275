package cargo

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/cargostep/internal/core/domain"
	"go.trai.ch/zerr"
)

type cargoConfig struct {
	Source map[string]sourceEntry              `toml:"source"`
	Target map[string]map[string]linkDirective `toml:"target,omitempty"`
}

type sourceEntry struct {
	Registry    string `toml:"registry,omitempty"`
	ReplaceWith string `toml:"replace-with,omitempty"`
	Directory   string `toml:"directory,omitempty"`
}

type linkDirective struct {
	RustcLinkSearch []string `toml:"rustc-link-search"`
	RustcLinkLib    []string `toml:"rustc-link-lib"`
	Root            string   `toml:"root"`
}

// ConfigWriter implements ports.VendorConfigWriter.
type ConfigWriter struct{}

// NewConfigWriter creates a new ConfigWriter.
func NewConfigWriter() *ConfigWriter {
	return &ConfigWriter{}
}

// Write replaces the cargo configuration at path.
func (w *ConfigWriter) Write(path string, cfg domain.VendorConfig) error {
	data, err := Render(cfg)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVendorConfigWriteFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVendorConfigWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is the gen dir supplied by the outer graph
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVendorConfigWriteFailed.Error()), "path", path)
	}

	return nil
}

// Render encodes the configuration. Crates-io is redirected to the vendor
// directory; each native library gets a link directive scoped to the target
// triple. The target table is omitted when there are no native libraries.
func Render(cfg domain.VendorConfig) ([]byte, error) {
	doc := cargoConfig{
		Source: map[string]sourceEntry{
			"crates-io": {
				Registry:    domain.CratesIORegistry,
				ReplaceWith: domain.VendoredSourcesName,
			},
			domain.VendoredSourcesName: {
				Directory: cfg.VendorDir,
			},
		},
	}

	if len(cfg.NativeLibs) > 0 {
		libs := make(map[string]linkDirective, len(cfg.NativeLibs))
		for _, lib := range cfg.NativeLibs {
			libs[lib] = linkDirective{
				RustcLinkSearch: []string{cfg.SharedLibsRoot},
				RustcLinkLib:    []string{lib},
				Root:            cfg.SharedLibsRoot,
			}
		}
		doc.Target = map[string]map[string]linkDirective{cfg.TargetTriple: libs}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
