package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/analysis"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/config"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/report"
)

func TestRunAnalysisRequiresTasksetPath(t *testing.T) {
	svc := report.NewService(analysis.NewService(), 100)

	err := RunAnalysis(Options{}, config.TasksetConfig{}, svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no task set file")
}

func TestRunAnalysisEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskset.csv")
	content := "Task,BCET,WCET,Period,Deadline\n1,1,2,5,5\n2,1,1,10,10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	svc := report.NewService(analysis.NewService(), 100)
	err := RunAnalysis(Options{TasksetPath: path, Duration: 10}, config.TasksetConfig{}, svc)
	require.NoError(t, err)
}

func TestRunAnalysisRejectsMalformedTaskset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskset.csv")
	require.NoError(t, os.WriteFile(path, []byte("Task,BCET,WCET,Period\n1,1,1,4\n"), 0o644))

	svc := report.NewService(analysis.NewService(), 100)
	err := RunAnalysis(Options{TasksetPath: path}, config.TasksetConfig{}, svc)
	require.Error(t, err)
}
