// Package report drives the full analysis pipeline: analytic schedulability
// tests, one simulation run per algorithm over a shared duration, per-task
// statistics, and cross-validation of simulated against analytic response
// times. Its output is pure data; rendering is layered on top.
package report

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/analysis"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/domain"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/pkg/logger"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/simulation"
)

// Finding records a validation failure: a simulated response time above the
// analytic bound signals either an analysis error or a simulation bug, and is
// reported rather than swallowed.
type Finding struct {
	Algorithm domain.Algorithm
	TaskID    int
	Simulated int
	Analytic  int
}

// Report bundles the analytic and simulated results of one invocation.
type Report struct {
	Tasks       []*domain.Task
	Utilization float64
	LLBound     float64
	LLPassed    bool
	Duration    int

	Analytic map[domain.Algorithm]map[int]domain.AnalysisResult
	Stats    map[domain.Algorithm]map[int]domain.TaskStats
	Traces   map[domain.Algorithm][]domain.TraceEntry

	Findings []Finding
}

// Service runs the end-to-end evaluation of a task set.
type Service struct {
	Analysis         *analysis.Service
	FallbackDuration int
}

func NewService(analysisSvc *analysis.Service, fallbackDuration int) *Service {
	return &Service{
		Analysis:         analysisSvc,
		FallbackDuration: fallbackDuration,
	}
}

var simulatedAlgorithms = []domain.Algorithm{
	domain.RateMonotonic,
	domain.EarliestDeadlineFirst,
	domain.DeadlineMonotonic,
}

// Run evaluates the task set: Liu & Layland bound, RM and DM response-time
// analysis, then RM, EDF and DM simulations over one shared duration,
// finishing with the analytic-vs-simulated validation. A non-positive
// duration means one hyperperiod, with the configured fallback substituted
// when the task set leaves the hyperperiod at zero.
func (svc *Service) Run(ctx context.Context, tasks []*domain.Task, duration int) (*Report, error) {
	if len(tasks) == 0 {
		return nil, errors.Wrap(domain.ErrNoTasks, "nothing to evaluate")
	}

	rpt := &Report{
		Tasks:    sortTasksByID(tasks),
		Analytic: make(map[domain.Algorithm]map[int]domain.AnalysisResult, 2),
		Stats:    make(map[domain.Algorithm]map[int]domain.TaskStats, len(simulatedAlgorithms)),
		Traces:   make(map[domain.Algorithm][]domain.TraceEntry, len(simulatedAlgorithms)),
	}
	rpt.LLPassed, rpt.Utilization, rpt.LLBound = svc.Analysis.LiuLaylandTest(tasks)
	if rpt.Utilization > 1 {
		logger.Logger(ctx).Warn().
			Float64("utilization", rpt.Utilization).
			Msg("task set is overloaded, deadlines will be missed")
	}

	for _, algorithm := range []domain.Algorithm{domain.RateMonotonic, domain.DeadlineMonotonic} {
		results, err := svc.Analysis.ResponseTimeAnalysis(tasks, algorithm)
		if err != nil {
			return nil, err
		}
		rpt.Analytic[algorithm] = results
	}

	// All algorithms share one window so their statistics are comparable.
	rpt.Duration = duration
	if rpt.Duration <= 0 {
		rpt.Duration = simulation.NewScheduler(tasks, domain.RateMonotonic).Hyperperiod()
	}
	if rpt.Duration == 0 {
		rpt.Duration = svc.FallbackDuration
	}

	for _, algorithm := range simulatedAlgorithms {
		sched := simulation.NewScheduler(tasks, algorithm)
		_, trace, err := sched.Run(ctx, rpt.Duration)
		if err != nil {
			return nil, errors.Wrapf(err, "%s simulation", algorithm)
		}
		rpt.Traces[algorithm] = trace
		rpt.Stats[algorithm] = sched.Stats()
	}

	rpt.Findings = validate(rpt)
	for _, finding := range rpt.Findings {
		logger.Logger(ctx).Error().
			Str("algorithm", string(finding.Algorithm)).
			Int("task", finding.TaskID).
			Int("simulated_wcrt", finding.Simulated).
			Int("analytic_wcrt", finding.Analytic).
			Msg("simulated response time exceeds analytic bound")
	}
	return rpt, nil
}

// validate cross-checks every fixed-priority algorithm that has both analytic
// and simulated results: the observed WCRT must never exceed the analytic one.
func validate(rpt *Report) []Finding {
	var findings []Finding
	for _, algorithm := range []domain.Algorithm{domain.RateMonotonic, domain.DeadlineMonotonic} {
		analytic := rpt.Analytic[algorithm]
		stats := rpt.Stats[algorithm]
		for _, task := range rpt.Tasks {
			res, ok := analytic[task.ID]
			if !ok {
				continue
			}
			if sim := stats[task.ID].WCRT; sim > res.WCRT {
				findings = append(findings, Finding{
					Algorithm: algorithm,
					TaskID:    task.ID,
					Simulated: sim,
					Analytic:  res.WCRT,
				})
			}
		}
	}
	return findings
}

func sortTasksByID(tasks []*domain.Task) []*domain.Task {
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}
