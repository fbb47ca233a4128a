package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sporadicmrp/engine/pkg/mrp"
	"github.com/sporadicmrp/engine/pkg/mrpapi"
)

var (
	batchInDir       string
	batchOutDir      string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "run one independent planning request per file in a directory, concurrently",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(batchInDir, batchOutDir, batchConcurrency)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchInDir, "in-dir", "", "directory of JSON request files (required)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "directory to write JSON response files (required)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max concurrent planning calls (default: config MRPCTL_MAX_CONCURRENCY)")
	_ = batchCmd.MarkFlagRequired("in-dir")
	_ = batchCmd.MarkFlagRequired("out-dir")
}

// runBatch fans each request file in inDir out across a bounded pool
// of independent mrp.Plan calls (spec.md §5's host-boundary
// concurrency). Every call owns its own inputs/outputs exclusively;
// results are written as each goroutine finishes, but the summary is
// reported back in input (filename) order so the host's own output
// stays deterministic regardless of scheduling order.
func runBatch(inDir, outDir string, concurrency int) error {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("reading input directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if concurrency <= 0 {
		concurrency = cfg.MaxConcurrency
	}

	results := make([]error, len(names))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = planOne(ctx, filepath.Join(inDir, name), filepath.Join(outDir, name))
			return nil
		})
	}
	_ = g.Wait()

	failures := 0
	for i, name := range names {
		if results[i] != nil {
			log.Error().Str("file", name).Err(results[i]).Msg("planning request failed")
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d requests failed", failures, len(names))
	}
	return nil
}

func planOne(ctx context.Context, inPath, outPath string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	var req mrpapi.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	params, demand, err := mrpapi.ToPlanningInputs(req)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	result, err := mrp.Plan(ctx, params, demand, mrp.WithLogger(&log))
	if err != nil {
		pe, ok := mrp.AsPlanningError(err)
		if !ok {
			return err
		}
		out, encErr := json.MarshalIndent(mrpapi.FromError(pe, result), "", "  ")
		if encErr != nil {
			return encErr
		}
		if writeErr := os.WriteFile(outPath, append(out, '\n'), 0644); writeErr != nil {
			return writeErr
		}
		return pe
	}

	out, err := json.MarshalIndent(mrpapi.FromPlanResult(result), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	return os.WriteFile(outPath, append(out, '\n'), 0644)
}
