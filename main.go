package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/app"
)

func main() {
	var (
		configName  string
		configPath  string
		tasksetPath string
		duration    int
	)

	rootCmd := &cobra.Command{
		Use:          "rtsched",
		Short:        "Schedulability analysis and simulation for periodic real-time task sets",
		SilenceUsage: true,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run RM/DM response-time analysis and RM/EDF/DM simulations over a task set",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.NewAnalyzerApp(configName, configPath, app.Options{
				TasksetPath: tasksetPath,
				Duration:    duration,
			})
			if err != nil {
				return err
			}
			return application.Err()
		},
	}
	analyzeCmd.Flags().StringVar(&configName, "config", "", "config file name without extension (default rtsched)")
	analyzeCmd.Flags().StringVar(&configPath, "config-path", "", "directory to search for the config file")
	analyzeCmd.Flags().StringVarP(&tasksetPath, "taskset", "t", "", "path to the task set CSV file")
	analyzeCmd.Flags().IntVarP(&duration, "duration", "d", 0, "simulated duration in ticks (default: one hyperperiod)")

	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
