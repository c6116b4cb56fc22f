package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verifysense/verifysense/internal/model"
	"github.com/verifysense/verifysense/internal/pipeline"
	"github.com/verifysense/verifysense/internal/worker"
)

var (
	batchConcurrency int
	batchTimeout     time.Duration
	batchOutJSON     string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify many inputs from a file",
	Long: `Batch reads one input per line from the given file and verifies them
concurrently. A line is either bare text or "kind|content" where kind is
text, url or image. Blank lines and lines starting with # are skipped.

Example:
  verifysense batch claims.txt --concurrency 4 --json results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 2, "number of inputs verified in parallel")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "overall batch timeout")
	batchCmd.Flags().StringVar(&batchOutJSON, "json", "", "write results to a JSON file instead of stdout")
}

// batchEntry is the JSON shape emitted per input
type batchEntry struct {
	Content string                     `json:"content"`
	Kind    model.ContentKind          `json:"input_type"`
	Results []model.VerificationResult `json:"results,omitempty"`
	Error   string                     `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	requests, err := worker.ReadRequests(args[0])
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		return fmt.Errorf("no inputs found in %s", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Verifying %d inputs with concurrency %d\n", len(requests), batchConcurrency)
	}

	processor := worker.NewBatchProcessor(p, batchConcurrency)
	outcomes := processor.Process(ctx, requests)

	entries := make([]batchEntry, 0, len(outcomes))
	failed := 0
	for _, outcome := range outcomes {
		entry := batchEntry{
			Content: outcome.Request.Content,
			Kind:    outcome.Request.Kind,
			Results: outcome.Results,
		}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
			failed++
		}
		entries = append(entries, entry)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Done: %d succeeded, %d failed\n", len(entries)-failed, failed)
	}

	if err := writeResults(entries, batchOutJSON); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(entries))
	}
	return nil
}
