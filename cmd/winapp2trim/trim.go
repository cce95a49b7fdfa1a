package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/rogpeppe/go-internal/diff"
	"github.com/spf13/cobra"

	"github.com/lwd-temp/Winapp2/internal/fetch"
	"github.com/lwd-temp/Winapp2/pkg/winapp"
)

var (
	trimInput       string
	trimOutput      string
	trimIncludes    string
	trimExcludes    string
	trimUseIncludes bool
	trimUseExcludes bool
	trimDownload    bool
	trimURL         string
	trimShowDiff    bool
)

func init() {
	cmd := newTrimCmd()
	cmd.Flags().StringVarP(&trimInput, "input", "i", "winapp2.ini", "Ruleset to trim")
	cmd.Flags().StringVarP(&trimOutput, "output", "o", "winapp2.ini", "Where to write the trimmed ruleset")
	cmd.Flags().StringVar(&trimIncludes, "includes", "includes.ini", "Entries to retain unconditionally")
	cmd.Flags().StringVar(&trimExcludes, "excludes", "excludes.ini", "Entries to discard unconditionally")
	cmd.Flags().BoolVar(&trimUseIncludes, "use-includes", false, "Apply the includes file")
	cmd.Flags().BoolVar(&trimUseExcludes, "use-excludes", false, "Apply the excludes file")
	cmd.Flags().BoolVar(&trimDownload, "download", false, "Fetch the ruleset from the remote URL instead of --input")
	cmd.Flags().StringVar(&trimURL, "url", winapp.DefaultDownloadURL, "Download URL for --download")
	cmd.Flags().BoolVar(&trimShowDiff, "show-diff", false, "Print a unified diff of the ruleset")
	rootCmd.AddCommand(cmd)
}

func newTrimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim",
		Short: "Remove entries whose detection targets are absent",
		Long: `The trim command audits every entry of the ruleset against the
current machine and writes back only the entries that apply, augmented
with VirtualStore mirror keys where those exist.

Example:
  winapp2trim trim
  winapp2trim trim -i winapp2.ini -o winapp2-trimmed.ini
  winapp2trim trim --download --show-diff
  winapp2trim trim --use-excludes --excludes my-excludes.ini`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrim(cmd.Context())
		},
	}
}

func runTrim(ctx context.Context) error {
	cfg := winapp.TrimConfig{
		InputPath:    trimInput,
		OutputPath:   trimOutput,
		IncludesPath: trimIncludes,
		ExcludesPath: trimExcludes,
		UseIncludes:  trimUseIncludes,
		UseExcludes:  trimUseExcludes,
		Download:     trimDownload,
		DownloadURL:  trimURL,
	}

	if !trimShowDiff {
		stats, err := winapp.Trim(ctx, cfg)
		if err != nil {
			return err
		}
		printSummary(stats)
		return nil
	}

	raw, err := readRuleset(ctx, cfg)
	if err != nil {
		return err
	}
	rs, err := winapp.Parse(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	before, err := winapp.Marshal(rs)
	if err != nil {
		return err
	}

	stats, err := winapp.TrimRuleset(rs, cfg)
	if err != nil {
		return err
	}
	after, err := winapp.Marshal(rs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.OutputPath, after, 0o644); err != nil {
		return fmt.Errorf("writing trimmed ruleset: %w", err)
	}

	os.Stdout.Write(diff.Diff("before", before, "after", after))
	printSummary(stats)
	return nil
}

func readRuleset(ctx context.Context, cfg winapp.TrimConfig) ([]byte, error) {
	if cfg.Download {
		if !fetch.Online(ctx, nil, cfg.DownloadURL) {
			return nil, fmt.Errorf("%w: %s", winapp.ErrOffline, cfg.DownloadURL)
		}
		return fetch.Ruleset(ctx, nil, cfg.DownloadURL)
	}
	return os.ReadFile(cfg.InputPath)
}

func printSummary(stats winapp.Stats) {
	printInfo("Initial entry count: %d\n", stats.Initial)
	printInfo("Final entry count:   %d\n", stats.Final)
	printInfo("Entries removed:     %d (%d%%)\n", stats.Removed(), stats.Percent())
}
