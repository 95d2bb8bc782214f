package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteRecords serializes records to path as an indented JSON array.
// Non-ASCII text and markup characters are written literally.
func WriteRecords(path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		return fmt.Errorf("encode records: %w", err)
	}
	return f.Close()
}
