// Package dataset is the engine's input boundary: it fetches the raw record
// collections by name and decodes them into the normalized domain types. The
// fetch layer behind Source owns retries, caching and authentication; this
// package only names collections and parses what it is given.
package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Collection names understood by every Source.
const (
	CollectionProducts   = "products"
	CollectionLocations  = "locations"
	CollectionWarehouses = "warehouses"
	CollectionLots       = "lots"
	CollectionQuants     = "stock_quantities"
)

// Collections lists every collection a full dataset is built from.
func Collections() []string {
	return []string{
		CollectionProducts,
		CollectionLocations,
		CollectionWarehouses,
		CollectionLots,
		CollectionQuants,
	}
}

// Source retrieves one raw collection by name, already serialized as a JSON
// array of records.
type Source interface {
	Fetch(ctx context.Context, collection string) ([]byte, error)
}

// FileSource reads collections from <dir>/<collection>.json. It backs the
// CLI and tests; production callers plug in their own Source.
type FileSource struct {
	dir string
}

// NewFileSource creates a Source over the given directory.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Fetch reads the collection's JSON file. A missing file is reported as is,
// wrapped with the collection name.
func (s *FileSource) Fetch(_ context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, collection+".json"))
	if err != nil {
		return nil, fmt.Errorf("fetch collection %q: %w", collection, err)
	}
	return data, nil
}
