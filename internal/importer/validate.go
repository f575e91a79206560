package importer

import (
	"fmt"
	"strings"

	"github.com/rsanghvi/courtsched/internal/domain"
)

// ValidateDocketSchema checks the import schema for errors before filing.
// Returns a slice of all validation errors found.
func ValidateDocketSchema(schema *DocketSchema) []error {
	var errs []error

	if len(schema.Cases) == 0 {
		errs = append(errs, fmt.Errorf("import file contains no cases"))
	}

	seenJudges := make(map[string]bool)
	for i, j := range schema.Judges {
		name := strings.TrimSpace(j.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("judges[%d].name is required", i))
			continue
		}
		key := strings.ToLower(name)
		if seenJudges[key] {
			errs = append(errs, fmt.Errorf("judges[%d]: duplicate judge %q", i, name))
		}
		seenJudges[key] = true
	}

	for i, c := range schema.Cases {
		if strings.TrimSpace(c.Title) == "" {
			errs = append(errs, fmt.Errorf("cases[%d].title is required", i))
		}
		if !domain.ValidComplexities[c.Complexity] {
			errs = append(errs, fmt.Errorf("cases[%d].complexity: invalid value %q", i, c.Complexity))
		}
	}

	return errs
}
