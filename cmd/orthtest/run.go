package main

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orthtest/dataset"
	"github.com/katalvlaran/orthtest/orth"
)

const outputTable = "table"

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the orthogonalization test on a problem file",
		Long: `Run reads y, X, sig_hat, k and the tested columns (or q2) from a YAML or
JSON problem file and prints ts and pval for every tested column.
--k and --sig-hat override the values from the file.`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}
	runCmd.Flags().StringP("file", "f", "", "Problem file (.yaml, .yml or .json)")
	runCmd.Flags().String("solver", getEnvStr("ORTHTEST_SOLVER", "general"), "Dense solver: general, cholesky")
	runCmd.Flags().Int("workers", getEnvInt("ORTHTEST_WORKERS", runtime.GOMAXPROCS(0)), "Columns solved concurrently")
	runCmd.Flags().StringP("output", "o", getEnvStr("ORTHTEST_OUTPUT", outputTable), "Output format: table, json, yaml")
	runCmd.Flags().Float64("k", 0, "Ridge regularization strength (overrides the file)")
	runCmd.Flags().Float64("sig-hat", 0, "Noise standard deviation (overrides the file)")
	_ = runCmd.MarkFlagRequired("file")

	return runCmd
}

func runRun(cmd *cobra.Command, args []string) error {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	path, _ := cmd.Flags().GetString("file")
	solverName, _ := cmd.Flags().GetString("solver")
	workers, _ := cmd.Flags().GetInt("workers")
	output, _ := cmd.Flags().GetString("output")

	log, err := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
	if err != nil {
		return err
	}
	solver, err := orth.ParseSolverKind(solverName)
	if err != nil {
		return err
	}
	if workers < 1 {
		return fmt.Errorf("--workers must be >= 1, got %d", workers)
	}
	var format dataset.Format
	if output != outputTable {
		if format, err = dataset.ParseFormat(output); err != nil {
			return err
		}
	}

	raw, err := dataset.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("k") {
		k, _ := cmd.Flags().GetFloat64("k")
		raw.K = &k
	}
	if cmd.Flags().Changed("sig-hat") {
		s, _ := cmd.Flags().GetFloat64("sig-hat")
		raw.SigHat = &s
	}
	problem, err := raw.ToOrth()
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	log = log.With().Str("run_id", runID).Logger()
	log.Info().Str("file", path).Int("n", len(problem.Y)).Int("q1", problem.X.Cols()).
		Int("tests", len(problem.Tested)).Msg("problem loaded")

	start := time.Now()
	res, err := orth.Solve(cmd.Context(), problem,
		orth.WithSolver(solver),
		orth.WithWorkers(workers),
		orth.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("orthogonalization complete")

	if output == outputTable {
		return writeTable(cmd.OutOrStdout(), res)
	}

	return dataset.WriteReport(cmd.OutOrStdout(), dataset.Report{
		RunID:  runID,
		Solver: solver.String(),
		K:      problem.K,
		SigHat: problem.SigHat,
		Result: res,
	}, format)
}

// writeTable prints one aligned row per tested column.
func writeTable(w io.Writer, res orth.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tts\tpval\tproj_norm")
	for i, j := range res.Tested {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", j, formatFloat(res.TS[i]), formatFloat(res.PVal[i]), formatFloat(res.ProjNorm[i]))
	}

	return tw.Flush()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}

	return fmt.Sprintf("%.6g", v)
}
