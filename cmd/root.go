package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/engrrio07/busybook/bedrock"
	"github.com/engrrio07/busybook/busybook"
)

// defaultThemes are the books generated when no --themes flag is given.
var defaultThemes = []string{
	"Under the Sea Wonders",
	"Jungle Adventure",
	"Space Exploration",
	"Dinosaur Discovery",
	"Animals",
}

func NewRootCmd() *cobra.Command {
	var (
		themes []string
		pages  int
		output string
		region string
	)

	cmd := &cobra.Command{
		Use:   "busybook",
		Short: "Generate themed children's busy book PDFs with AWS Bedrock",
		Long: `Busybook generates printable activity books for children: for each theme it
requests line-art illustrations and short fun facts from AWS Bedrock, saves the
images, and lays everything out into a PDF with a themed cover.

Credentials come from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY (a .env file
is loaded if present), falling back to the default AWS credential chain.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := bedrock.NewClient(bedrock.Config{
				Region:          region,
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(output, 0o755); err != nil {
				return fmt.Errorf("error creating output folder: %w", err)
			}

			// A failed theme is logged and the run moves on; partial output
			// still exits zero.
			for _, theme := range themes {
				book := busybook.New(theme, pages, output, client, slog.Default())
				if err := book.Generate(cmd.Context()); err != nil {
					slog.Error("busy book generation failed", "theme", theme, "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&themes, "themes", defaultThemes, "themes to generate, one book per theme")
	cmd.Flags().IntVar(&pages, "pages", 20, "illustrated pages per book")
	cmd.Flags().StringVar(&output, "output", "BusyBooks", "output folder for PDFs and page images")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region hosting the Bedrock models")

	return cmd
}
