package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AlexandreDecan/pcorr/domain/core"
	"github.com/AlexandreDecan/pcorr/domain/correction"
	"github.com/AlexandreDecan/pcorr/internal"
	"github.com/AlexandreDecan/pcorr/internal/errors"

	"golang.org/x/sync/semaphore"
)

// BatchService evaluates independent families with bounded concurrency
type BatchService struct {
	reports *ReportService
	sem     *semaphore.Weighted
	logger  *internal.Logger
}

// BatchRequest defines the families to evaluate and the shared settings
type BatchRequest struct {
	Families []correction.Family
	Alpha    float64
	Sort     bool
}

// BatchResult holds one report per family, in request order
type BatchResult struct {
	Reports   []*correction.Report `json:"reports"`
	RuntimeMs int64                `json:"runtime_ms"`
}

// NewBatchService creates a batch service running at most workers families at once
func NewBatchService(reports *ReportService, workers int, logger *internal.Logger) *BatchService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &BatchService{
		reports: reports,
		sem:     semaphore.NewWeighted(int64(workers)),
		logger:  logger,
	}
}

// Run evaluates every family. The first failure cancels the remaining work
// and is returned.
func (b *BatchService) Run(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	startTime := time.Now()
	if len(req.Families) == 0 {
		return nil, errors.InvalidInput("batch has no families", core.ErrEmptyFamily)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reports := make([]*correction.Report, len(req.Families))
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i, family := range req.Families {
		if err := b.sem.Acquire(ctx, 1); err != nil {
			fail(fmt.Errorf("batch interrupted before family %s: %w", family.Name, err))
			break
		}

		wg.Add(1)
		go func(i int, family correction.Family) {
			defer wg.Done()
			defer b.sem.Release(1)

			if len(family.PValues) == 0 {
				fail(errors.InvalidInput(fmt.Sprintf("family %s", family.Name), core.ErrEmptyFamily))
				return
			}
			report, err := b.reports.EvaluateFamily(family, req.Alpha, req.Sort)
			if err != nil {
				fail(err)
				return
			}
			reports[i] = report
		}(i, family)
	}
	wg.Wait()

	if firstErr != nil {
		b.logger.Error("batch failed: %v", firstErr)
		return nil, firstErr
	}

	result := &BatchResult{
		Reports:   reports,
		RuntimeMs: time.Since(startTime).Milliseconds(),
	}
	b.logger.Info("batch evaluated %d families in %dms", len(reports), result.RuntimeMs)
	return result, nil
}
