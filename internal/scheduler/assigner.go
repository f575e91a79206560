package scheduler

import (
	"context"

	"github.com/rsanghvi/courtsched/internal/domain"
)

// WorkloadSource reports how many active cases (scheduled or in progress)
// a judge currently holds.
type WorkloadSource interface {
	CountActiveByJudge(ctx context.Context, judgeID string) (int, error)
}

// AssignJudge picks the judge with the fewest active cases. Ties go to the
// first judge encountered in enumeration order. Returns ErrNoJudgeAvailable
// when the pool is empty.
func AssignJudge(ctx context.Context, judges []domain.Judge, src WorkloadSource) (*domain.Judge, error) {
	if len(judges) == 0 {
		return nil, ErrNoJudgeAvailable
	}

	var best *domain.Judge
	bestLoad := 0
	for i := range judges {
		load, err := src.CountActiveByJudge(ctx, judges[i].ID)
		if err != nil {
			return nil, err
		}
		if best == nil || load < bestLoad {
			best = &judges[i]
			bestLoad = load
		}
	}
	return best, nil
}
