package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"calendar-tui/internal/store"
)

// ErrInvalidDocument is returned when the import file is not a calendar export.
var ErrInvalidDocument = errors.New("not a calendar export")

// Replacer accepts a whole new calendar document.
type Replacer interface {
	Replace(store.Data) error
}

// FileImporter replaces the calendar with the contents of a JSON export.
type FileImporter struct {
	Path string
}

// Import reads, validates and applies the file. The decoded document is
// returned on success.
func (f FileImporter) Import(ctx context.Context, target Replacer) (store.Data, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return store.Data{}, fmt.Errorf("read import file: %w", err)
	}
	data, err := Decode(raw)
	if err != nil {
		return store.Data{}, err
	}
	if err := ctx.Err(); err != nil {
		return store.Data{}, err
	}
	if err := target.Replace(data); err != nil {
		return store.Data{}, fmt.Errorf("replace calendar: %w", err)
	}
	return data, nil
}

// Decode parses an export document; entries and categories must both be present.
func Decode(raw []byte) (store.Data, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return store.Data{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	for _, required := range []string{"entries", "categories"} {
		if _, ok := fields[required]; !ok {
			return store.Data{}, fmt.Errorf("%w: missing %q", ErrInvalidDocument, required)
		}
	}

	// Absent preferences keep their defaults.
	data := store.NewData()
	if err := json.Unmarshal(raw, &data); err != nil {
		return store.Data{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	data.Normalize()
	return data, nil
}
