package scenario

import (
	"encoding/json"
	"fmt"
)

// ImportResult reports the outcome of a bulk import: how many records merged
// into the store and which ones were rejected with their validation errors.
type ImportResult struct {
	Imported int                 `json:"imported"`
	Rejected map[string][]string `json:"rejected,omitempty"`
}

// ExportJSON serializes records for transfer between installations.
func ExportJSON(records []Record) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode scenarios: %w", err)
	}
	return data, nil
}

// ImportJSON deserializes an exported scenario array and merges the valid
// records into the store. Each record is validated before merging; invalid
// records are reported per-name and skipped while valid ones still import.
func ImportJSON(data []byte, store Store) (ImportResult, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return ImportResult{}, fmt.Errorf("failed to parse scenario import: %w", err)
	}

	result := ImportResult{}
	for i, record := range records {
		if errs := Validate(record); len(errs) > 0 {
			if result.Rejected == nil {
				result.Rejected = make(map[string][]string)
			}
			name := record.Name
			if name == "" {
				name = fmt.Sprintf("record %d", i+1)
			}
			result.Rejected[name] = errs
			continue
		}

		if _, err := store.Save(record); err != nil {
			return result, fmt.Errorf("failed to save imported scenario %q: %w", record.Name, err)
		}
		result.Imported++
	}

	return result, nil
}
