package media

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal"
)

func NewMediaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Inspect and download media",
		Example: `  wagraph media info 1234567890
  wagraph media download 1234567890 --output voice.ogg`,
	}

	cmd.AddCommand(newInfoCommand(), newDownloadCommand())
	return cmd
}

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <media-id>",
		Short: "Resolve a media id to its download metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			c, _, err := internal.NewClient(cfg)
			if err != nil {
				return err
			}

			info, err := c.RetrieveMedia(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("id:        %s\n", info.ID)
			fmt.Printf("mime type: %s\n", info.MimeType)
			fmt.Printf("size:      %d bytes\n", info.FileSize)
			fmt.Printf("sha256:    %s\n", info.SHA256)
			fmt.Printf("url:       %s\n", info.URL)
			return nil
		},
	}
}

func newDownloadCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <media-id>",
		Short: "Download media content to a file (or stdout with --output -)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			c, _, err := internal.NewClient(cfg)
			if err != nil {
				return err
			}

			data, err := c.GetMedia(context.Background(), args[0])
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}
			path := output
			if path == "" {
				path = args[0] + ".bin"
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %d bytes to %s\n", len(data), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "",
		"Output file path, or - for stdout (default: <media-id>.bin)")
	return cmd
}
