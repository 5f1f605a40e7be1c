// Package taskio loads task sets from tabular CSV files. Any malformed input
// surfaces as a descriptive error and an empty task set; a partially
// populated set is never returned.
package taskio

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/domain"
)

const (
	columnTask     = "Task"
	columnName     = "Name"
	columnBCET     = "BCET"
	columnWCET     = "WCET"
	columnPeriod   = "Period"
	columnDeadline = "Deadline"
	columnPriority = "Priority"
)

var requiredColumns = []string{columnTask, columnBCET, columnWCET, columnPeriod, columnDeadline}

// LoadTasks reads a task set from a header-keyed CSV file. Rows with a blank
// task id are skipped (trailing lines from spreadsheet exports). The Name and
// Priority columns are optional; Priority is advisory because scheduling
// policies assign their own.
func LoadTasks(path string) ([]*domain.Task, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open task set %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read task set %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("task set %s has no header row", path)
	}

	columns, err := indexColumns(records[0])
	if err != nil {
		return nil, errors.Wrapf(err, "task set %s", path)
	}

	tasks := make([]*domain.Task, 0, len(records)-1)
	seen := make(map[int]bool, len(records)-1)
	for line, record := range records[1:] {
		if strings.TrimSpace(field(record, columns, columnTask)) == "" {
			continue
		}

		task, err := parseTask(record, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "task set %s line %d", path, line+2)
		}
		if seen[task.ID] {
			return nil, errors.Errorf("task set %s line %d: duplicate task id %d", path, line+2, task.ID)
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		// Excel exports may prefix the first header cell with a BOM.
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, errors.Errorf("missing required column %q", name)
		}
	}
	return columns, nil
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func parseTask(record []string, columns map[string]int) (*domain.Task, error) {
	id, err := parseIntField(record, columns, columnTask)
	if err != nil {
		return nil, err
	}
	bcet, err := parseIntField(record, columns, columnBCET)
	if err != nil {
		return nil, err
	}
	wcet, err := parseIntField(record, columns, columnWCET)
	if err != nil {
		return nil, err
	}
	period, err := parseIntField(record, columns, columnPeriod)
	if err != nil {
		return nil, err
	}
	deadline, err := parseIntField(record, columns, columnDeadline)
	if err != nil {
		return nil, err
	}

	priority := 0
	if strings.TrimSpace(field(record, columns, columnPriority)) != "" {
		priority, err = parseIntField(record, columns, columnPriority)
		if err != nil {
			return nil, err
		}
	}

	task := &domain.Task{
		ID:       id,
		Name:     strings.TrimSpace(field(record, columns, columnName)),
		BCET:     bcet,
		WCET:     wcet,
		Period:   period,
		Deadline: deadline,
		Priority: priority,
	}
	if task.Name == "" {
		task.Name = "T" + strconv.Itoa(task.ID)
	}
	return task, validateTask(task)
}

func parseIntField(record []string, columns map[string]int, name string) (int, error) {
	raw := strings.TrimSpace(field(record, columns, name))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Errorf("column %q: %q is not an integer", name, raw)
	}
	return value, nil
}

func validateTask(task *domain.Task) error {
	switch {
	case task.WCET <= 0:
		return errors.Errorf("task %d: wcet must be positive, got %d", task.ID, task.WCET)
	case task.BCET < 0:
		return errors.Errorf("task %d: bcet must be non-negative, got %d", task.ID, task.BCET)
	case task.BCET > task.WCET:
		return errors.Errorf("task %d: bcet %d exceeds wcet %d", task.ID, task.BCET, task.WCET)
	case task.Period <= 0:
		return errors.Errorf("task %d: period must be positive, got %d", task.ID, task.Period)
	case task.Deadline <= 0:
		return errors.Errorf("task %d: deadline must be positive, got %d", task.ID, task.Deadline)
	}
	return nil
}
