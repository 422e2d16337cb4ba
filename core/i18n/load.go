package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"sigs.k8s.io/yaml"
)

// ErrNoCatalogs indicates a catalog directory contained no catalog files.
var ErrNoCatalogs = errors.New("i18n: no catalog files found")

// catalogExtensions lists recognized catalog file extensions. YAML is
// converted to JSON before parsing, so both formats share one code path.
var catalogExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// ParseCatalog builds a catalog for the given locale from JSON or YAML
// bytes. The document must be a nested object whose leaves are template
// strings or {one, other} objects; structurally malformed leaves survive
// parsing and surface as InvalidEntry diagnostics at resolve time, but a
// document that is not an object at all is a load error.
func ParseCatalog(locale string, data []byte) (*Catalog, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("i18n: parse catalog %q: %w", locale, err)
	}
	return NewCatalog(locale, tree), nil
}

// LoadCatalogDir reads every catalog file in dir, keyed by locale taken
// from the file name: "nn.json" loads the "nn" catalog. Files with
// unrecognized extensions are skipped. Catalogs are loaded once at
// startup; to pick up changed files, load again and swap the resolver.
func LoadCatalogDir(fsys fs.FS, dir string) (map[string]*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read catalog dir %q: %w", dir, err)
	}

	catalogs := make(map[string]*Catalog)
	for _, dirEntry := range entries {
		if dirEntry.IsDir() {
			continue
		}
		name := dirEntry.Name()
		ext := path.Ext(name)
		if !catalogExtensions[ext] {
			continue
		}
		locale := strings.TrimSuffix(name, ext)

		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("i18n: read catalog file %q: %w", name, err)
		}
		catalog, err := ParseCatalog(locale, data)
		if err != nil {
			return nil, err
		}
		catalogs[locale] = catalog
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogs, dir)
	}
	return catalogs, nil
}
