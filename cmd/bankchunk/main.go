// Command bankchunk chunks bank statement files for retrieval pipelines.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/bankchunk"
)

var (
	chunkSize    int
	overlap      int
	jsonOutput   bool
	markdownFile string
	verbose      bool
)

func main() {
	root := &cobra.Command{
		Use:   "bankchunk [files...]",
		Short: "Turn bank statements into retrieval-ready chunks",
		Long: `bankchunk extracts the transaction table from PDF, CSV or Excel bank
statements, normalizes its columns and emits fixed-size text chunks suitable
for embedding. When no table can be recovered it falls back to plain-text
chunks of the raw content.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	root.Flags().IntVar(&chunkSize, "chunk-size", 5, "transactions per chunk")
	root.Flags().IntVar(&overlap, "overlap", 0, "rows repeated between consecutive chunks")
	root.Flags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	root.Flags().StringVar(&markdownFile, "markdown", "", "also write chunks to a Markdown file")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	svc := bankchunk.NewService(chunkSize, overlap, logger)

	if len(args) == 1 {
		result, err := svc.ProcessFile(args[0])
		if err != nil {
			return err
		}
		if markdownFile != "" {
			if err := writeMarkdownFile(markdownFile, &result.ProcessingResult); err != nil {
				return err
			}
		}
		return printResult(cmd, result)
	}

	items, err := svc.BatchProcess(args)
	if err != nil {
		return err
	}
	return printBatch(cmd, items)
}

func printResult(cmd *cobra.Command, result *bankchunk.ServiceResult) error {
	if jsonOutput {
		return printJSON(cmd, result)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d chunks (fallback: %v)\n",
		result.FileInfo.Path, len(result.Chunks), result.FallbackUsed)
	for i, chunk := range result.Chunks {
		fmt.Fprintf(cmd.OutOrStdout(), "\n--- chunk %d ---\n%s\n", i+1, chunk)
	}
	return nil
}

func printBatch(cmd *cobra.Command, items []bankchunk.BatchItem) error {
	if jsonOutput {
		return printJSON(cmd, items)
	}

	for _, item := range items {
		if item.Err != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %s\n", item.Path, item.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d chunks (fallback: %v)\n",
			item.Path, len(item.Result.Chunks), item.Result.FallbackUsed)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeMarkdownFile(path string, result *bankchunk.ProcessingResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating markdown file: %w", err)
	}
	defer f.Close()
	return bankchunk.WriteMarkdown(f, result)
}
