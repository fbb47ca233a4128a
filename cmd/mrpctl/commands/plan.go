package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sporadicmrp/engine/pkg/mrp"
	"github.com/sporadicmrp/engine/pkg/mrpapi"
)

var (
	planIn  string
	planOut string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "run a single planning request",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(planIn, planOut)
	},
}

func init() {
	planCmd.Flags().StringVar(&planIn, "in", "", "path to a JSON request file (required)")
	planCmd.Flags().StringVar(&planOut, "out", "", "path to write the JSON response (default: stdout)")
	_ = planCmd.MarkFlagRequired("in")
}

func runPlan(inPath, outPath string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	var req mrpapi.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return writeError(outPath, &mrp.PlanningError{Kind: mrp.KindInvalidInput, Message: "parsing request", Err: err}, nil)
	}

	params, demand, err := mrpapi.ToPlanningInputs(req)
	if err != nil {
		return writeError(outPath, &mrp.PlanningError{Kind: mrp.KindInvalidInput, Message: "invalid request", Err: err}, nil)
	}

	result, err := mrp.Plan(context.Background(), params, demand, mrp.WithLogger(&log))
	if err != nil {
		return writeError(outPath, err, result)
	}

	return writeResponse(outPath, mrpapi.FromPlanResult(result))
}

func writeResponse(outPath string, resp mrpapi.Response) error {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	return writeOutput(outPath, out)
}

func writeError(outPath string, err error, result *mrp.PlanResult) error {
	pe, ok := mrp.AsPlanningError(err)
	if !ok {
		return err
	}
	out, encErr := json.MarshalIndent(mrpapi.FromError(pe, result), "", "  ")
	if encErr != nil {
		return encErr
	}
	if writeErr := writeOutput(outPath, out); writeErr != nil {
		return writeErr
	}
	return pe
}

func writeOutput(outPath string, data []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(outPath, append(data, '\n'), 0644)
}
