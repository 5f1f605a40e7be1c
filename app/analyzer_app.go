package app

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/config"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/pkg/logger"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/report"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/taskio"
)

// Options carries CLI flag overrides into the Fx graph.
type Options struct {
	TasksetPath string
	Duration    int
}

// NewAnalyzerApp wires the batch analyzer. The whole evaluation runs inside
// fx.Invoke; the caller inspects app.Err() for the outcome.
func NewAnalyzerApp(configName string, configPath string, opts Options) (*fx.App, error) {
	serviceModule, err := ServiceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		serviceModule,
		fx.Supply(opts),
		fx.NopLogger,
		fx.Invoke(func(logCfg config.LoggingConfig) {
			logger.InitLogger(logCfg.Level)
		}),
		fx.Invoke(RunAnalysis),
	)
	return app, nil
}

// RunAnalysis loads the task set, runs the full evaluation, and renders the
// report to stdout.
func RunAnalysis(opts Options, tasksetCfg config.TasksetConfig, svc *report.Service) error {
	ctx := context.Background()

	path := opts.TasksetPath
	if path == "" {
		path = tasksetCfg.Path
	}
	if path == "" {
		return errors.New("no task set file given (use --taskset or taskset.path in the config)")
	}

	tasks, err := taskio.LoadTasks(path)
	if err != nil {
		// Input errors are recoverable at this boundary: report them and an
		// empty task set rather than a partially loaded one.
		logger.Logger(ctx).Error().Err(err).Str("path", path).Msg("task set rejected, zero tasks loaded")
		return err
	}
	logger.Logger(ctx).Info().Int("tasks", len(tasks)).Str("path", path).Msg("task set loaded")

	rpt, err := svc.Run(ctx, tasks, opts.Duration)
	if err != nil {
		return err
	}
	report.Render(os.Stdout, rpt)
	return nil
}
