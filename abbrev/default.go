package abbrev

import (
	_ "embed"
	"sync"
)

//go:embed data/abbreviations.yaml
var defaultTableYAML []byte

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the embedded US English table. It is parsed on first call
// and shared afterwards. A corrupt embedded table panics.
func Default() *Table {
	defaultTableOnce.Do(func() {
		t, err := parse(defaultTableYAML, FormatYAML)
		if err != nil {
			panic(&LoadError{Source: "embedded", Err: err})
		}
		defaultTable = t
	})
	return defaultTable
}
