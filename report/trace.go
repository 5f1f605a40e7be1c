package report

import "github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/domain"

// TraceInterval is a run of contiguous ticks executing the same task,
// suitable for Gantt-style display.
type TraceInterval struct {
	Start  int
	Length int
	TaskID int
}

// ConsolidateTrace merges contiguous same-task trace entries into intervals.
// Idle stretches are dropped: consumers draw executed work, gaps show through
// on their own.
func ConsolidateTrace(trace []domain.TraceEntry) []TraceInterval {
	var intervals []TraceInterval
	if len(trace) == 0 {
		return intervals
	}

	start := trace[0].Time
	taskID := trace[0].TaskID
	for _, entry := range trace[1:] {
		if entry.TaskID == taskID {
			continue
		}
		if taskID != domain.IdleTask {
			intervals = append(intervals, TraceInterval{Start: start, Length: entry.Time - start, TaskID: taskID})
		}
		start = entry.Time
		taskID = entry.TaskID
	}

	if taskID != domain.IdleTask {
		end := trace[len(trace)-1].Time + 1
		intervals = append(intervals, TraceInterval{Start: start, Length: end - start, TaskID: taskID})
	}
	return intervals
}
