package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ytget/ytpro/internal/model"
)

// BatchEntry is one video of a batch file. Empty fields take the flag values.
type BatchEntry struct {
	URL     string `yaml:"url"`
	Quality string `yaml:"quality,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// BatchFile is the YAML document read by the batch command
type BatchFile struct {
	Videos []BatchEntry `yaml:"videos"`
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [YAML_FILE]",
		Short: "Download every video listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read batch file: %w", err)
			}

			base, err := requestDefaults()
			if err != nil {
				return err
			}
			reqs, err := parseBatch(data, base)
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				return fmt.Errorf("no videos found in %s", args[0])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			orch, err := newOrchestrator()
			if err != nil {
				return err
			}
			out := newTerminal(cmd.OutOrStdout())
			out.header(fmt.Sprintf("%s (%d videos)", args[0], len(reqs)))
			return out.run(orch.StartBatch(ctx, reqs))
		},
	}
	return cmd
}

// parseBatch turns a batch file into requests; base supplies the defaults
func parseBatch(data []byte, base model.DownloadRequest) ([]model.DownloadRequest, error) {
	var file BatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	reqs := make([]model.DownloadRequest, 0, len(file.Videos))
	for i, entry := range file.Videos {
		if strings.TrimSpace(entry.URL) == "" {
			continue
		}

		req := base
		req.URL = entry.URL
		if entry.Quality != "" {
			q, err := model.ParseQuality(entry.Quality)
			if err != nil {
				return nil, fmt.Errorf("video %d: %w", i+1, err)
			}
			req.Quality = q
		}
		if entry.Format != "" {
			f, err := model.ParseFormat(entry.Format)
			if err != nil {
				return nil, fmt.Errorf("video %d: %w", i+1, err)
			}
			req.Format = f
		}
		if entry.Output != "" {
			req.OutputDir = entry.Output
		}
		reqs = append(reqs, req.Normalized())
	}
	return reqs, nil
}
