package domain

// IdleTask is the task id recorded in a trace entry for a tick on which no
// job was ready.
const IdleTask = -1

// AnalysisResult is the analytic response-time record for one task under a
// fixed-priority ordering.
type AnalysisResult struct {
	Period      int
	WCET        int
	WCRT        int
	Schedulable bool
}

// TaskStats aggregates the completed jobs of one task after a simulation run.
// A task with no completed jobs in the window reports all zeroes; that is
// "nothing measured", not "perfectly met".
type TaskStats struct {
	WCRT            int
	AvgResponseTime float64
	Missed          int
}

// TraceEntry records which task executed on one tick (IdleTask for none).
type TraceEntry struct {
	Time   int
	TaskID int
}
