package domain

// TimeUnset marks a job start or finish time that has not happened yet.
const TimeUnset = -1

// Job is one release of a periodic task. JobID is the release index within
// the task (arrival / period). StartTime is set exactly once, on first
// dispatch; preemption and re-dispatch leave it untouched.
type Job struct {
	TaskID           int
	JobID            int
	ArrivalTime      int
	AbsoluteDeadline int
	RemainingTime    int
	StartTime        int
	FinishTime       int
}

// NewJob creates the release-index'th job of a task arriving at the given time.
func NewJob(task *Task, releaseIndex, arrival int) *Job {
	return &Job{
		TaskID:           task.ID,
		JobID:            releaseIndex,
		ArrivalTime:      arrival,
		AbsoluteDeadline: arrival + task.Deadline,
		RemainingTime:    task.WCET,
		StartTime:        TimeUnset,
		FinishTime:       TimeUnset,
	}
}

// Finished reports whether the job has completed execution.
func (j *Job) Finished() bool {
	return j.FinishTime != TimeUnset
}

// ResponseTime returns finish minus arrival. The ok result is false until the
// job finishes; an unfinished job has no response time.
func (j *Job) ResponseTime() (int, bool) {
	if !j.Finished() {
		return 0, false
	}
	return j.FinishTime - j.ArrivalTime, true
}

// Missed reports whether the job finished after its absolute deadline. An
// unfinished job is never reported as missed.
func (j *Job) Missed() bool {
	return j.Finished() && j.FinishTime > j.AbsoluteDeadline
}
