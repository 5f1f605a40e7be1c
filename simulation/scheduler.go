package simulation

import (
	"context"
	"sort"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/pkg/errors"
	"github.com/rs/xid"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/domain"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/pkg/logger"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/pkg/util"
)

// Scheduler runs one uniprocessor simulation of a task set under a single
// algorithm. Construction takes a deep copy of the task set: fixed-priority
// policies overwrite the Priority field of their copy, and that assignment
// must never be observable by another run.
type Scheduler struct {
	algorithm domain.Algorithm
	runID     string

	tasks     []*domain.Task
	taskIndex *cache.Cache[int, *domain.Task]

	hyperperiod int

	ready     []*domain.Job
	completed []*domain.Job
	trace     []domain.TraceEntry
}

// NewScheduler builds a scheduler over its own copy of the task set and
// assigns static priorities for fixed-priority algorithms: RM by ascending
// period, DM by ascending deadline, ties broken by ascending task id. EDF
// ignores static priorities entirely.
func NewScheduler(tasks []*domain.Task, algorithm domain.Algorithm) *Scheduler {
	owned := domain.CloneTasks(tasks)

	switch algorithm {
	case domain.RateMonotonic:
		assignPriorities(owned, func(t *domain.Task) int { return t.Period })
	case domain.DeadlineMonotonic:
		assignPriorities(owned, func(t *domain.Task) int { return t.Deadline })
	}

	index := cache.New[int, *domain.Task]()
	periods := make([]int, 0, len(owned))
	for _, t := range owned {
		index.Set(t.ID, t)
		periods = append(periods, t.Period)
	}

	return &Scheduler{
		algorithm:   algorithm,
		runID:       xid.New().String(),
		tasks:       owned,
		taskIndex:   index,
		hyperperiod: util.LCM(periods...),
	}
}

func assignPriorities(tasks []*domain.Task, key func(*domain.Task) int) {
	sort.Slice(tasks, func(i, j int) bool {
		if key(tasks[i]) != key(tasks[j]) {
			return key(tasks[i]) < key(tasks[j])
		}
		return tasks[i].ID < tasks[j].ID
	})
	for i, t := range tasks {
		t.Priority = i
	}
}

// Hyperperiod is the least common multiple of all task periods, 0 for an
// empty task set.
func (s *Scheduler) Hyperperiod() int {
	return s.hyperperiod
}

// Task looks up a task by id. The scheduler is constructed from a closed task
// set, so a miss is a configuration inconsistency, not a recoverable state.
func (s *Scheduler) Task(id int) (*domain.Task, error) {
	task, ok := s.taskIndex.Get(id)
	if !ok {
		return nil, errors.Wrapf(domain.ErrTaskNotFound, "task id %d", id)
	}
	return task, nil
}

// Run simulates the task set tick by tick. A non-positive duration means one
// hyperperiod; callers must substitute their own fallback for an empty task
// set, whose hyperperiod is 0. Returns the completed jobs and the execution
// trace, one entry per tick.
func (s *Scheduler) Run(ctx context.Context, duration int) ([]*domain.Job, []domain.TraceEntry, error) {
	if duration <= 0 {
		duration = s.hyperperiod
	}

	logger.Logger(ctx).Debug().
		Str("run_id", s.runID).
		Str("algorithm", string(s.algorithm)).
		Int("duration", duration).
		Int("tasks", len(s.tasks)).
		Msg("starting simulation run")

	var current *domain.Job
	for t := 0; t < duration; t++ {
		// Releases: every task whose period divides t gets a fresh job.
		for _, task := range s.tasks {
			if t%task.Period == 0 {
				s.ready = append(s.ready, domain.NewJob(task, t/task.Period, t))
			}
		}

		next, err := s.pickJob()
		if err != nil {
			return nil, nil, err
		}

		// Start time is set only on first dispatch; a preempted job keeps
		// its original start time when re-dispatched.
		if next != current {
			if next != nil && next.StartTime == domain.TimeUnset {
				next.StartTime = t
			}
			current = next
		}

		if current == nil {
			s.trace = append(s.trace, domain.TraceEntry{Time: t, TaskID: domain.IdleTask})
			continue
		}

		s.trace = append(s.trace, domain.TraceEntry{Time: t, TaskID: current.TaskID})
		current.RemainingTime--

		if current.RemainingTime == 0 {
			current.FinishTime = t + 1
			s.completed = append(s.completed, current)
			s.removeReady(current)
			current = nil
		}
	}

	logger.Logger(ctx).Debug().
		Str("run_id", s.runID).
		Str("algorithm", string(s.algorithm)).
		Int("completed_jobs", len(s.completed)).
		Msg("simulation run finished")

	return s.completed, s.trace, nil
}

// pickJob selects the ready job to execute this tick: minimum static priority
// for RM/DM, minimum absolute deadline for EDF. Ties are broken by lowest
// task id, then lowest job id, so repeated runs on identical input produce
// identical traces.
func (s *Scheduler) pickJob() (*domain.Job, error) {
	var best *domain.Job
	for _, job := range s.ready {
		if best == nil {
			best = job
			continue
		}
		better, err := s.before(job, best)
		if err != nil {
			return nil, err
		}
		if better {
			best = job
		}
	}
	return best, nil
}

func (s *Scheduler) before(a, b *domain.Job) (bool, error) {
	var ka, kb int
	if s.algorithm.FixedPriority() {
		taskA, err := s.Task(a.TaskID)
		if err != nil {
			return false, err
		}
		taskB, err := s.Task(b.TaskID)
		if err != nil {
			return false, err
		}
		ka, kb = taskA.Priority, taskB.Priority
	} else {
		ka, kb = a.AbsoluteDeadline, b.AbsoluteDeadline
	}

	if ka != kb {
		return ka < kb, nil
	}
	if a.TaskID != b.TaskID {
		return a.TaskID < b.TaskID, nil
	}
	return a.JobID < b.JobID, nil
}

func (s *Scheduler) removeReady(job *domain.Job) {
	for i, j := range s.ready {
		if j == job {
			s.ready = append(s.ready[:i], s.ready[i+1:]...)
			return
		}
	}
}
