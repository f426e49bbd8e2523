package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmatch/bipartite"
	"github.com/katalvlaran/lvmatch/internal/config"
	"github.com/katalvlaran/lvmatch/internal/logging"
	"github.com/katalvlaran/lvmatch/internal/weightsio"
	"github.com/katalvlaran/lvmatch/matrix"
)

// verifyTol is the relative tolerance of the --verify cost re-check.
const verifyTol = 1e-9

// solveOutput is the JSON shape of a solve result.
type solveOutput struct {
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	Assignment []int   `json:"assignment"`
	Cost       float64 `json:"cost"`
}

func newSolveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve the assignment problem for a weight matrix file",
		Long: `Read a weight matrix (YAML or JSON, a list of rows or {weights: [...]})
from file, or from stdin when the file is "-" or omitted, and print the
minimum-cost assignment. Rows without a partner print as unassigned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			return runSolve(cmd, cfg, args)
		},
	}

	cmd.Flags().Bool("parallel", false, "try top-level columns concurrently")
	cmd.Flags().Int("max-size", config.Default().Solver.MaxSize, "refuse matrices with max(rows, cols) above this (0 = unlimited)")
	cmd.Flags().Bool("verify", false, "re-check the assignment and its cost before printing")
	cmd.Flags().StringP("output", "o", "", "output format: text or json")
	_ = v.BindPFlag("solver.parallel", cmd.Flags().Lookup("parallel"))
	_ = v.BindPFlag("solver.max_size", cmd.Flags().Lookup("max-size"))
	_ = v.BindPFlag("solver.verify", cmd.Flags().Lookup("verify"))
	_ = v.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runSolve(cmd *cobra.Command, cfg *config.Config, args []string) error {
	logger, err := logging.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	w, err := readWeights(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}
	logger.Debug("weights loaded", "source", source, "rows", w.Rows(), "cols", w.Cols())

	var st bipartite.Stats
	opts := append(cfg.SolverOptions(), bipartite.WithStats(&st))

	start := time.Now()
	res, err := bipartite.MinCostMatch(w, opts...)
	if err != nil {
		logger.Error("solve failed", "source", source, "error", err)
		return err
	}
	logger.Info("solve finished",
		"rows", w.Rows(),
		"cols", w.Cols(),
		"cost", res.Cost,
		"parallel", cfg.Solver.Parallel,
		"calls", st.Calls,
		"hits", st.Hits,
		"subproblems", st.Subproblems,
		"elapsed", time.Since(start),
	)

	if cfg.Solver.Verify {
		if err := verify(w, res); err != nil {
			logger.Error("verification failed", "error", err)
			return err
		}
		logger.Debug("verification passed")
	}

	return writeResult(cmd.OutOrStdout(), cfg.Output, w, res)
}

// readWeights opens source ("-" is stdin) and decodes it.
func readWeights(stdin io.Reader, source string) (*matrix.Dense, error) {
	if source == "-" {
		w, err := weightsio.Read(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return w, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open weights: %w", err)
	}
	defer f.Close()

	w, err := weightsio.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return w, nil
}

// verify re-checks validity and recomputes the cost.
func verify(w matrix.Matrix, res bipartite.Result) error {
	if err := bipartite.ValidateAssignment(w.Rows(), w.Cols(), res.Assignment); err != nil {
		return err
	}
	sum, err := bipartite.AssignmentCost(w, res.Assignment)
	if err != nil {
		return err
	}
	if math.Abs(sum-res.Cost) > verifyTol*math.Max(1, math.Abs(sum)) {
		return fmt.Errorf("reported cost %g, recomputed %g: %w", res.Cost, sum, bipartite.ErrInvalidAssignment)
	}
	return nil
}

func writeResult(out io.Writer, format string, w matrix.Matrix, res bipartite.Result) error {
	if strings.EqualFold(format, config.OutputJSON) {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{
			Rows:       w.Rows(),
			Cols:       w.Cols(),
			Assignment: res.Assignment,
			Cost:       res.Cost,
		})
	}

	for r, c := range res.Assignment {
		if c == bipartite.Unassigned {
			fmt.Fprintf(out, "row %d -> unassigned\n", r)
			continue
		}
		fmt.Fprintf(out, "row %d -> col %d\n", r, c)
	}
	fmt.Fprintf(out, "cost: %g\n", res.Cost)
	return nil
}
