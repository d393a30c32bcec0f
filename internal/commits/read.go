package commits

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadFile loads structured commits from a JSON file. The file holds the
// output of an external commit parser: a JSON array of commit objects.
func ReadFile(path string) ([]Commit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read commits file %s: %w", path, err)
	}
	var cs []Commit
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("parse commits file %s: %w", path, err)
	}
	return cs, nil
}
