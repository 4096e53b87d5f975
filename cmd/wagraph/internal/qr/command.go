package qr

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal"
	"github.com/tinyland-inc/wagraph/pkg/client"
	"github.com/tinyland-inc/wagraph/pkg/qrlink"
)

func NewQRCommand() *cobra.Command {
	var bot string

	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Manage message QR codes",
		Example: `  wagraph qr create "Hi! I'd like to know more" --format svg
  wagraph qr list
  wagraph qr update 4O4YGZEG3RIVE1 "New prefilled text"
  wagraph qr delete 4O4YGZEG3RIVE1
  wagraph qr show 15551234567 "Hi!"`,
	}

	cmd.PersistentFlags().StringVar(&bot, "bot", "",
		"Phone number id owning the QR codes (default: bot_id from config)")

	cmd.AddCommand(
		newCreateCommand(&bot),
		newListCommand(&bot),
		newUpdateCommand(&bot),
		newDeleteCommand(&bot),
		newShowCommand(),
	)
	return cmd
}

func newCreateCommand(bot *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "create <prefilled-message>",
		Short: "Create a QR code with a prefilled message",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			imageFormat, err := client.ParseImageFormat(format)
			if err != nil {
				return err
			}
			c, botID, err := buildClient(*bot)
			if err != nil {
				return err
			}

			res, err := c.CreateQR(context.Background(), botID, args[0], imageFormat)
			if err != nil {
				return err
			}
			printQR(res.QRCode, res.Raw)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "png", "Rendered image format: png or svg")
	return cmd
}

func newListCommand(bot *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list [qr-id]",
		Short: "List QR codes, or show one by id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, botID, err := buildClient(*bot)
			if err != nil {
				return err
			}

			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			res, err := c.RetrieveQR(context.Background(), botID, id)
			if err != nil {
				return err
			}
			if len(res.Data) == 0 {
				fmt.Printf("Response: %s\n", string(res.Raw))
				return nil
			}
			for _, code := range res.Data {
				printQR(code, nil)
			}
			return nil
		},
	}
}

func newUpdateCommand(bot *string) *cobra.Command {
	return &cobra.Command{
		Use:   "update <qr-id> <prefilled-message>",
		Short: "Replace the prefilled message of a QR code",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c, botID, err := buildClient(*bot)
			if err != nil {
				return err
			}

			res, err := c.UpdateQR(context.Background(), botID, args[0], args[1])
			if err != nil {
				return err
			}
			printQR(res.QRCode, res.Raw)
			return nil
		},
	}
}

func newDeleteCommand(bot *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <qr-id>",
		Short: "Delete a QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, botID, err := buildClient(*bot)
			if err != nil {
				return err
			}

			res, err := c.DeleteQR(context.Background(), botID, args[0])
			if err != nil {
				return err
			}
			if res.Success {
				fmt.Println("Deleted")
			} else {
				fmt.Printf("Response: %s\n", string(res.Raw))
			}
			return nil
		},
	}
}

// newShowCommand renders a deep link locally, no API call involved.
func newShowCommand() *cobra.Command {
	var save, format string
	var size int

	cmd := &cobra.Command{
		Use:   "show <phone> [prefilled-message]",
		Short: "Render a wa.me QR code locally (terminal, png or svg)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			text := ""
			if len(args) == 2 {
				text = args[1]
			}
			link := qrlink.DeepLink(args[0], text)

			if save == "" {
				qrlink.RenderTerminal(link, os.Stdout)
				fmt.Println(link)
				return nil
			}

			imageFormat, err := client.ParseImageFormat(format)
			if err != nil {
				return err
			}
			switch imageFormat {
			case client.FormatPNG:
				png, err := qrlink.RenderPNG(link, size)
				if err != nil {
					return err
				}
				if err := os.WriteFile(save, png, 0o644); err != nil {
					return err
				}
			case client.FormatSVG:
				svg, err := qrlink.RenderSVG(link, size)
				if err != nil {
					return err
				}
				if err := os.WriteFile(save, []byte(svg), 0o644); err != nil {
					return err
				}
			}
			fmt.Printf("Wrote %s\n", save)
			return nil
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "Write the rendered code to this file instead of the terminal")
	cmd.Flags().StringVar(&format, "format", "png", "Rendered image format for --save: png or svg")
	cmd.Flags().IntVar(&size, "size", qrlink.DefaultSize, "Edge size in pixels")
	return cmd
}

func buildClient(bot string) (*client.Client, string, error) {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return nil, "", err
	}
	c, _, err := internal.NewClient(cfg)
	if err != nil {
		return nil, "", err
	}
	botID, err := internal.ResolveBotID(cfg, bot)
	if err != nil {
		return nil, "", err
	}
	return c, botID, nil
}

func printQR(code client.QRCode, raw []byte) {
	if code.Code == "" {
		if raw != nil {
			fmt.Printf("Response: %s\n", string(raw))
		}
		return
	}
	fmt.Printf("code:      %s\n", code.Code)
	fmt.Printf("message:   %s\n", code.PrefilledMessage)
	fmt.Printf("deep link: %s\n", code.DeepLinkURL)
	if code.QRImageURL != "" {
		fmt.Printf("image:     %s\n", code.QRImageURL)
	}
}
