package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// DocketSchema is the top-level JSON structure for a bulk docket import:
// judges to register followed by cases to file.
type DocketSchema struct {
	Judges []JudgeImport `json:"judges,omitempty"`
	Cases  []CaseImport  `json:"cases"`
}

// JudgeImport defines a judge in the import file.
type JudgeImport struct {
	Name      string `json:"name"`
	CourtRoom string `json:"court_room,omitempty"`
}

// CaseImport defines a case filing in the import file.
type CaseImport struct {
	Title      string `json:"title"`
	Complexity string `json:"complexity"`
}

// LoadDocketSchema reads and parses a docket import JSON file.
func LoadDocketSchema(path string) (*DocketSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema DocketSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
