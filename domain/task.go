package domain

// Algorithm identifies a scheduling policy.
type Algorithm string

const (
	RateMonotonic         Algorithm = "RM"
	DeadlineMonotonic     Algorithm = "DM"
	EarliestDeadlineFirst Algorithm = "EDF"
)

// FixedPriority reports whether the algorithm dispatches by static,
// policy-assigned priority rather than by absolute deadline.
func (a Algorithm) FixedPriority() bool {
	return a == RateMonotonic || a == DeadlineMonotonic
}

// Task is the static descriptor of a periodic task. All times are discrete
// integer units. Priority is policy-assigned (lower value = higher priority)
// and only meaningful under fixed-priority algorithms; it is the single field
// a scheduling policy may overwrite, which is why simulation runs operate on
// their own clone of the task set.
type Task struct {
	ID       int
	Name     string
	BCET     int
	WCET     int
	Period   int
	Deadline int
	Priority int
}

// Utilization is the fraction of processor time the task requires. Derived,
// never stored.
func (t *Task) Utilization() float64 {
	return float64(t.WCET) / float64(t.Period)
}

// Clone returns an independent copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// CloneTasks deep-copies a task set so one run's priority assignment cannot
// leak into another.
func CloneTasks(tasks []*Task) []*Task {
	cloned := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		cloned = append(cloned, t.Clone())
	}
	return cloned
}
