package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verifysense/verifysense/internal/model"
	"github.com/verifysense/verifysense/internal/pipeline"
)

var (
	verifyKind    string
	verifyTimeout time.Duration
	verifyOutJSON string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <content>",
	Short: "Verify a piece of content and print scored claims",
	Long: `Verify decomposes the given content into factual claims, gathers
fact-checks and web evidence for each, and prints the fused credibility
scores with their component breakdowns and explanations.

Example:
  verifysense verify "Vaccines contain microchips"
  verifysense verify --kind url https://example.com/article
  verifysense verify --kind image "$(base64 screenshot.png)"`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyKind, "kind", "text", "content kind (text, url, image)")
	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 2*time.Minute, "overall verification timeout")
	verifyCmd.Flags().StringVar(&verifyOutJSON, "json", "", "write results to a JSON file instead of stdout")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	req := model.VerifyRequest{
		Content: args[0],
		Kind:    model.ContentKind(verifyKind),
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Verifying %s content (%d bytes)\n", req.Kind, len(req.Content))
	}

	results, err := p.Verify(ctx, req)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Verified %d claims\n", len(results))
		for _, result := range results {
			fmt.Fprintf(os.Stderr, "  [%3d] %-25s %s\n", result.Score.Final, result.Score.Label, result.Claim)
		}
		fmt.Fprintln(os.Stderr)
	}

	return writeResults(results, verifyOutJSON)
}

func writeResults(results any, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", path)
	}
	return nil
}
