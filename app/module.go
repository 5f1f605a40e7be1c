package app

import (
	"go.uber.org/fx"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/analysis"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/config"
	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/report"
)

func ConfigModule(configName string, configPath string) (fx.Option, error) {
	cfg, err := config.InitConfig(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() config.Config {
			return cfg
		}),
		fx.Provide(func(cfg config.Config) config.TasksetConfig {
			return cfg.Taskset
		}),
		fx.Provide(func(cfg config.Config) config.SimulationConfig {
			return cfg.Simulation
		}),
		fx.Provide(func(cfg config.Config) config.LoggingConfig {
			return cfg.Logging
		}),
	), nil
}

// ServiceModule creates an Fx module that provides the analysis and report
// services on top of the configuration layer.
func ServiceModule(configName string, configPath string) (fx.Option, error) {
	configModule, err := ConfigModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(analysis.NewService),
		fx.Provide(func(analysisSvc *analysis.Service, simCfg config.SimulationConfig) *report.Service {
			return report.NewService(analysisSvc, simCfg.FallbackDuration)
		}),
	), nil
}
