// This file implements the ask command: the end-to-end path from a raw
// student query to a rendered specialist reply.
package cmd

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/hostelbuddy/core/config"
)

var (
	askConfigPath string
	askImagePath  string
	askVerbose    bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask HostelBuddy a question",
	Long: `Ask routes a free-text query to the right hostel specialist and prints
the formatted reply. Attach a photo with --image for complaints, food
quality issues, or lost/found items.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askConfigPath, "config", "c", "", "path to YAML config file")
	askCmd.Flags().StringVarP(&askImagePath, "image", "i", "", "path to an image to attach")
	askCmd.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "log request handling details")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if askVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(askConfigPath)
	if err != nil {
		return err
	}

	p, cleanup, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	imageBase64, err := loadImage(askImagePath)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	output, meta, err := p.Handle(cmd.Context(), query, imageBase64)
	if err != nil {
		return err
	}

	if askVerbose {
		logger.Info("request complete",
			"request_id", meta.RequestID,
			"urgency", string(meta.Urgency),
			"next_steps", meta.NextStepCount,
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

// loadImage reads an image file and returns its base64 encoding. An empty
// path returns an empty payload.
func loadImage(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
