package analysis

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/domain"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/pkg/util"
)

// Service implements the analytic schedulability tests: utilization bounds and
// exact worst-case response-time analysis for fixed-priority orderings.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// UtilizationSum returns the summed processor utilization of the task set.
func (svc *Service) UtilizationSum(tasks []*domain.Task) float64 {
	var sum float64
	for _, t := range tasks {
		sum += t.Utilization()
	}
	return sum
}

// LiuLaylandTest checks the summed utilization against the Liu & Layland
// bound n(2^(1/n) - 1). The test is sufficient but not necessary: a negative
// result means "inconclusive", never "unschedulable".
func (svc *Service) LiuLaylandTest(tasks []*domain.Task) (passed bool, utilization, bound float64) {
	n := len(tasks)
	utilization = svc.UtilizationSum(tasks)
	if n == 0 {
		return true, 0, 0
	}
	bound = float64(n) * (math.Pow(2, 1/float64(n)) - 1)
	return utilization <= bound, utilization, bound
}

// ExactWCRT solves Ri = Ci + sum(ceil(Ri/Tj) * Cj) over the higher-priority
// tasks by fixed-point iteration starting at Ri = Ci. The sequence is
// non-decreasing, so the first candidate above the task's deadline is
// returned as-is: it cannot come back under the deadline and already proves
// the task unschedulable. Otherwise the converged fixed point is returned.
func (svc *Service) ExactWCRT(task *domain.Task, higherPriority []*domain.Task) int {
	current := task.WCET
	for {
		interference := 0
		for _, hp := range higherPriority {
			interference += util.CeilDiv(current, hp.Period) * hp.WCET
		}

		next := task.WCET + interference
		if next > task.Deadline {
			return next
		}
		if next == current {
			return next
		}
		current = next
	}
}

// ResponseTimeAnalysis runs exact WCRT analysis for every task under the
// static-priority ordering of the given algorithm: RM orders by ascending
// period, DM by ascending deadline, ties broken by ascending task id. Each
// task is analyzed against all tasks ordered strictly before it.
func (svc *Service) ResponseTimeAnalysis(tasks []*domain.Task, algorithm domain.Algorithm) (map[int]domain.AnalysisResult, error) {
	if !algorithm.FixedPriority() {
		return nil, errors.Wrapf(domain.ErrUnknownAlgorithm, "response-time analysis requires a fixed-priority ordering, got %q", algorithm)
	}

	ordered := domain.CloneTasks(tasks)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		switch algorithm {
		case domain.DeadlineMonotonic:
			if a.Deadline != b.Deadline {
				return a.Deadline < b.Deadline
			}
		default:
			if a.Period != b.Period {
				return a.Period < b.Period
			}
		}
		return a.ID < b.ID
	})

	results := make(map[int]domain.AnalysisResult, len(ordered))
	for i, task := range ordered {
		wcrt := svc.ExactWCRT(task, ordered[:i])
		results[task.ID] = domain.AnalysisResult{
			Period:      task.Period,
			WCET:        task.WCET,
			WCRT:        wcrt,
			Schedulable: wcrt <= task.Deadline,
		}
	}
	return results, nil
}
