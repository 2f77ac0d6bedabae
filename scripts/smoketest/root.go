package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "smoketest",
	Short:        "Smoke tests for the StudyMate backend services",
	Long:         "smoketest calls the running resume analyzer, profile service and API gateway over HTTP and reports which checks pass.",
	SilenceUsage: true,
	RunE:         runAll,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML targets file (default: built-in localhost targets)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request timeout")
}

func newChecker(cmd *cobra.Command) (*Checker, error) {
	targets, err := LoadTargets(cfgPath)
	if err != nil {
		return nil, err
	}
	return NewChecker(targets, timeout, cmd.OutOrStdout()), nil
}
