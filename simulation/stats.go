package simulation

import (
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/domain"
)

// Stats reduces the completed jobs of the finished run to per-task
// statistics: observed WCRT (max response time), mean response time, and the
// number of missed deadlines. A task with no completed jobs in the simulated
// window reports all zeroes.
func (s *Scheduler) Stats() map[int]domain.TaskStats {
	jobsByTask := make(map[int][]*domain.Job, len(s.tasks))
	for _, job := range s.completed {
		jobsByTask[job.TaskID] = append(jobsByTask[job.TaskID], job)
	}

	stats := make(map[int]domain.TaskStats, len(s.tasks))
	for _, task := range s.tasks {
		jobs := jobsByTask[task.ID]
		if len(jobs) == 0 {
			stats[task.ID] = domain.TaskStats{}
			continue
		}

		var maxResponse, totalResponse, missed int
		for _, job := range jobs {
			response, ok := job.ResponseTime()
			if !ok {
				continue
			}
			if response > maxResponse {
				maxResponse = response
			}
			totalResponse += response
			if job.Missed() {
				missed++
			}
		}

		stats[task.ID] = domain.TaskStats{
			WCRT:            maxResponse,
			AvgResponseTime: float64(totalResponse) / float64(len(jobs)),
			Missed:          missed,
		}
	}
	return stats
}
