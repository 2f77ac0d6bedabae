package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("some checks failed")

var (
	jobRole        string
	jobDescription string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "GET /health on every service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd, func(c *Checker) []CheckResult {
			var results []CheckResult
			for _, service := range c.targets.Ordered() {
				results = append(results, c.Health(service))
			}
			return results
		})
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "GET / on every service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd, func(c *Checker) []CheckResult {
			var results []CheckResult
			for _, service := range c.targets.Ordered() {
				results = append(results, c.Info(service))
			}
			return results
		})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Upload the sample resume to the resume analyzer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd, func(c *Checker) []CheckResult {
			return []CheckResult{c.Analyze(jobRole, jobDescription)}
		})
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Extract and look up a profile on the profile service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd, func(c *Checker) []CheckResult {
			return []CheckResult{c.ProfileExtraction(), c.ProfileLookup()}
		})
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every check and print a summary",
	RunE:  runAll,
}

func init() {
	analyzeCmd.Flags().StringVar(&jobRole, "job-role", "Software Engineer", "target job role")
	analyzeCmd.Flags().StringVar(&jobDescription, "job-description", "Full-stack role using Python, React and AWS", "target job description")
	allCmd.Flags().AddFlagSet(analyzeCmd.Flags())
	rootCmd.Flags().AddFlagSet(analyzeCmd.Flags())

	rootCmd.AddCommand(healthCmd, infoCmd, analyzeCmd, profileCmd, allCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	return runChecks(cmd, func(c *Checker) []CheckResult {
		var results []CheckResult

		c.printf("\n📋 Testing Service Health Checks...")
		for _, service := range c.targets.Ordered() {
			results = append(results, c.Health(service))
		}

		c.printf("\n📋 Testing Service Info Endpoints...")
		for _, service := range c.targets.Ordered() {
			results = append(results, c.Info(service))
		}

		if _, ok := c.targets.Services[ServiceResumeAnalyzer]; ok {
			c.printf("\n📋 Testing Resume Analysis...")
			results = append(results, c.Analyze(jobRole, jobDescription))
		}

		if _, ok := c.targets.Services[ServiceProfile]; ok {
			c.printf("\n📋 Testing Profile Service...")
			results = append(results, c.ProfileExtraction(), c.ProfileLookup())
		}

		return results
	})
}

func runChecks(cmd *cobra.Command, run func(c *Checker) []CheckResult) error {
	checker, err := newChecker(cmd)
	if err != nil {
		return err
	}

	results := run(checker)
	printSummary(cmd.OutOrStdout(), results)

	for _, r := range results {
		if !r.Passed {
			return errChecksFailed
		}
	}
	return nil
}

func printSummary(out io.Writer, results []CheckResult) {
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}

	fmt.Fprintln(out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(out, "📊 TEST SUMMARY")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, r := range results {
		mark := "✅"
		if !r.Passed {
			mark = "❌"
		}
		fmt.Fprintf(out, "%s %-28s %s\n", mark, r.Name, r.Detail)
	}
	fmt.Fprintf(out, "Total Tests: %d\n", len(results))
	fmt.Fprintf(out, "Passed: %d\n", passed)
	fmt.Fprintf(out, "Failed: %d\n", len(results)-passed)
	if len(results) > 0 {
		fmt.Fprintf(out, "Success Rate: %.1f%%\n", float64(passed)/float64(len(results))*100)
	}

	if passed == len(results) {
		fmt.Fprintln(out, "🎉 All tests passed!")
	} else {
		fmt.Fprintln(out, "⚠️  Some tests failed. Check the output above for details.")
	}
}
