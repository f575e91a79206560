package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveCaseID accepts a case number (CASE-...), a full UUID, or a UUID
// prefix and returns the case's ID.
func resolveCaseID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("case number or ID is required")
	}

	if strings.HasPrefix(strings.ToUpper(input), "CASE-") {
		c, err := app.Cases.GetByNumber(ctx, strings.ToUpper(input))
		if err != nil {
			return "", err
		}
		return c.ID, nil
	}

	all, err := app.Cases.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, c := range all {
		if c.ID == input {
			return c.ID, nil
		}
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("case not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("case ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveJudgeID accepts a judge's name (case-insensitive), full UUID, or
// UUID prefix.
func resolveJudgeID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("judge name or ID is required")
	}

	judges, err := app.Judges.List(ctx)
	if err != nil {
		return "", err
	}

	for _, j := range judges {
		if strings.EqualFold(j.Name, input) {
			return j.ID, nil
		}
	}

	var matches []string
	for _, j := range judges {
		if j.ID == input {
			return j.ID, nil
		}
		if strings.HasPrefix(j.ID, input) {
			matches = append(matches, j.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("judge not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("judge ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
