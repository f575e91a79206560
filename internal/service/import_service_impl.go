package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/importer"
	"github.com/rsanghvi/courtsched/internal/logger"
)

type importService struct {
	judges JudgeService
	cases  CaseService
	log    logger.Logger
}

func NewImportService(judges JudgeService, cases CaseService, log logger.Logger) ImportService {
	return &importService{judges: judges, cases: cases, log: log}
}

// ImportDocket validates the whole file before touching the database, then
// registers judges and files cases in order. Filing is tolerant: a case
// that cannot be scheduled yet is still created as pending.
func (s *importService) ImportDocket(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadDocketSchema(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateDocketSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid import file: %w", errors.Join(errs...))
	}

	result := &ImportResult{}
	for _, j := range schema.Judges {
		if _, err := s.judges.Register(ctx, j.Name, j.CourtRoom); err != nil {
			return nil, fmt.Errorf("registering judge %q: %w", j.Name, err)
		}
		result.JudgesAdded++
	}

	for _, ci := range schema.Cases {
		c, err := s.cases.File(ctx, ci.Title, domain.CaseComplexity(ci.Complexity))
		if err != nil {
			return nil, fmt.Errorf("filing case %q: %w", ci.Title, err)
		}
		result.CasesFiled++
		if c.Status == domain.CaseScheduled {
			result.CasesScheduled++
		}
	}

	s.log.Infof("docket import: %d judges, %d cases filed, %d scheduled",
		result.JudgesAdded, result.CasesFiled, result.CasesScheduled)
	return result, nil
}
