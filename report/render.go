package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/domain"
)

// Render writes the human-readable report: utilization summary, analytic
// response-time tables for RM and DM, the per-algorithm comparison table, and
// the validation verdict.
func Render(w io.Writer, rpt *Report) {
	fmt.Fprintf(w, "Total utilization:    %.4f\n", rpt.Utilization)
	fmt.Fprintf(w, "Liu & Layland bound:  %.4f\n", rpt.LLBound)
	if rpt.LLPassed {
		fmt.Fprintln(w, "LL test:              schedulable")
	} else {
		// The bound is sufficient, not necessary.
		fmt.Fprintln(w, "LL test:              inconclusive (requires exact analysis)")
	}
	if rpt.Utilization > 1 {
		fmt.Fprintln(w, "WARNING: utilization above 1, the task set is overloaded")
	}
	fmt.Fprintf(w, "Simulated duration:   %d\n", rpt.Duration)

	for _, algorithm := range []domain.Algorithm{domain.RateMonotonic, domain.DeadlineMonotonic} {
		fmt.Fprintf(w, "\n%s exact response-time analysis\n", algorithm)
		renderAnalytic(w, rpt, algorithm)
	}

	fmt.Fprintln(w, "\nAnalytic vs simulated comparison")
	renderComparison(w, rpt)

	fmt.Fprintln(w)
	if len(rpt.Findings) == 0 {
		fmt.Fprintln(w, "Validation successful: analytic WCRT bounds held for RM and DM simulations.")
		return
	}
	for _, f := range rpt.Findings {
		fmt.Fprintf(w, "DISCREPANCY (%s): task %d simulated response %d exceeds predicted %d\n",
			f.Algorithm, f.TaskID, f.Simulated, f.Analytic)
	}
}

func renderAnalytic(w io.Writer, rpt *Report, algorithm domain.Algorithm) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Task", "Period", "Deadline", "WCET", "WCRT", "Schedulable"})
	for _, task := range rpt.Tasks {
		res := rpt.Analytic[algorithm][task.ID]
		tw.AppendRow(table.Row{task.Name, task.Period, task.Deadline, res.WCET, res.WCRT, res.Schedulable})
	}
	tw.Render()
}

func renderComparison(w io.Writer, rpt *Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{
		"Task",
		"Analytic WCRT (RM)", "Analytic WCRT (DM)",
		"Sim WCRT (RM)", "Sim WCRT (EDF)", "Sim WCRT (DM)",
		"Missed (RM)", "Missed (EDF)", "Missed (DM)",
	})
	for _, task := range rpt.Tasks {
		rm := rpt.Stats[domain.RateMonotonic][task.ID]
		edf := rpt.Stats[domain.EarliestDeadlineFirst][task.ID]
		dm := rpt.Stats[domain.DeadlineMonotonic][task.ID]
		tw.AppendRow(table.Row{
			task.Name,
			rpt.Analytic[domain.RateMonotonic][task.ID].WCRT,
			rpt.Analytic[domain.DeadlineMonotonic][task.ID].WCRT,
			rm.WCRT, edf.WCRT, dm.WCRT,
			rm.Missed, edf.Missed, dm.Missed,
		})
	}
	tw.Render()
}
