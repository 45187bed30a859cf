// Package main provides the orthtest CLI entry point.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires every subcommand to the given streams so tests can drive
// the CLI without touching the process stdout/stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orthtest",
		Short: "orthtest - fast approximate orthogonalization test",
		Long: `orthtest tests each candidate covariate of a design matrix against a
response vector, adjusting for all other covariates through a ridge-regularized
projection, and reports z statistics with two-sided normal p-values.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().String("log-level", getEnvStr("ORTHTEST_LOG_LEVEL", "info"), "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", getEnvStr("ORTHTEST_LOG_FORMAT", "console"), "Log format: console, json")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orthtest v%s (%s)\n", version, commit)
		},
	})
	rootCmd.AddCommand(newRunCmd())

	return rootCmd
}

// getEnvStr returns environment variable or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns environment variable as int or default
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return i
		}
	}
	return defaultVal
}
