package ratetable

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed uk-2024-25.yaml
var defaultTableYAML []byte

var (
	mu     sync.RWMutex
	tables = map[string]*RateTable{}

	defaultOnce  sync.Once
	defaultTable *RateTable
)

// Default returns the built-in 2024/25 table. The embedded file is parsed once;
// a parse or validation failure there is a build defect and panics.
func Default() *RateTable {
	defaultOnce.Do(func() {
		t, err := Parse(defaultTableYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded rate table: %v", err))
		}
		defaultTable = t
		mu.Lock()
		tables[t.TaxYear] = t
		mu.Unlock()
	})
	return defaultTable
}

// Parse unmarshals and validates a YAML rate table.
func Parse(data []byte) (*RateTable, error) {
	var t RateTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse rate table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads, parses and validates a rate table file.
func Load(path string) (*RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate table: %w", err)
	}
	return Parse(data)
}

// Register makes a validated table resolvable by its tax-year label, letting
// multiple tax years coexist in one process.
func Register(t *RateTable) error {
	if err := t.Validate(); err != nil {
		return err
	}
	mu.Lock()
	tables[t.TaxYear] = t
	mu.Unlock()
	return nil
}

// Get resolves a registered table by tax-year label. An empty label resolves
// to the default table.
func Get(taxYear string) (*RateTable, bool) {
	if taxYear == "" {
		return Default(), true
	}
	Default() // ensure the built-in year is registered
	mu.RLock()
	t, ok := tables[taxYear]
	mu.RUnlock()
	return t, ok
}
