package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Fixtures seeds the cache keys from the JSON files shipped with the store.
// Each fixture is a wrapper object holding a single named array, for example
// {"users": [...]} in users.json. A fixture is only consulted when its cache
// key is empty; once filled, the cache is the source of truth and the file
// is never read again.
type Fixtures struct {
	dir string
}

// NewFixtures creates a loader reading from dir. An empty dir disables
// fixture seeding.
func NewFixtures(dir string) *Fixtures {
	return &Fixtures{dir: dir}
}

type fixtureSource struct {
	file  string
	field string
}

func fixtureSources() map[string]fixtureSource {
	return map[string]fixtureSource{
		keyUsersCache:  {file: "users.json", field: "users"},
		keyMenuCache:   {file: "menu.json", field: "menu"},
		keyOrdersCache: {file: "orders.json", field: "orders"},
	}
}

// Fill populates the cache key from its fixture and returns the raw array.
// A missing or disabled fixture yields an empty collection, matching a
// store that simply has no data yet.
func (f *Fixtures) Fill(store Store, cacheKey string) ([]byte, error) {
	empty := []byte("[]")

	source, ok := fixtureSources()[cacheKey]
	if !ok || f == nil || f.dir == "" {
		return empty, store.Set(cacheKey, empty)
	}

	raw, err := os.ReadFile(filepath.Join(f.dir, source.file))
	if errors.Is(err, os.ErrNotExist) {
		return empty, store.Set(cacheKey, empty)
	}
	if err != nil {
		return nil, err
	}

	var wrapper map[string]json.RawMessage
	if err = json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", source.file, err)
	}

	collection, ok := wrapper[source.field]
	if !ok {
		return nil, fmt.Errorf("fixture %s has no %q field", source.file, source.field)
	}

	if err = store.Set(cacheKey, collection); err != nil {
		return nil, err
	}
	return collection, nil
}
