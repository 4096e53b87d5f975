package send

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal"
	"github.com/tinyland-inc/wagraph/pkg/messages"
)

type sendFlags struct {
	bot     string
	to      string
	replyTo string
}

func NewSendCommand() *cobra.Command {
	var flags sendFlags

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Example: `  wagraph send text --to 15551234567 "hello there"
  wagraph send image --to 15551234567 --link https://example.com/cat.jpg --caption "cat"
  wagraph send location --to 15551234567 --lat 48.8584 --long 2.2945 --name "Eiffel Tower"`,
	}

	cmd.PersistentFlags().StringVar(&flags.bot, "bot", "",
		"Sending phone number id (default: bot_id from config)")
	cmd.PersistentFlags().StringVar(&flags.to, "to", "",
		"Recipient phone number")
	cmd.PersistentFlags().StringVar(&flags.replyTo, "reply-to", "",
		"Message id this message replies to")

	cmd.AddCommand(
		newTextCommand(&flags),
		newImageCommand(&flags),
		newDocumentCommand(&flags),
		newLocationCommand(&flags),
		newReactionCommand(&flags),
	)

	return cmd
}

func newTextCommand(flags *sendFlags) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "text <body>",
		Short: "Send a text message",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var opts []messages.TextOption
			if preview {
				opts = append(opts, messages.WithPreviewURL())
			}
			msg, err := messages.NewText(args[0], opts...)
			if err != nil {
				return err
			}
			return deliver(flags, msg)
		},
	}
	cmd.Flags().BoolVar(&preview, "preview-url", false,
		"Render a link preview for the first URL in the body")
	return cmd
}

func newImageCommand(flags *sendFlags) *cobra.Command {
	var mediaID, link, caption string

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Send an image by media id or link",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			msg, err := messages.NewImage(mediaID, link, caption)
			if err != nil {
				return err
			}
			return deliver(flags, msg)
		},
	}
	cmd.Flags().StringVar(&mediaID, "media-id", "", "Previously uploaded media id")
	cmd.Flags().StringVar(&link, "link", "", "Public HTTPS link to the image")
	cmd.Flags().StringVar(&caption, "caption", "", "Caption shown under the image")
	return cmd
}

func newDocumentCommand(flags *sendFlags) *cobra.Command {
	var mediaID, link, caption, filename string

	cmd := &cobra.Command{
		Use:   "document",
		Short: "Send a document by media id or link",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			msg, err := messages.NewDocument(mediaID, link, caption, filename)
			if err != nil {
				return err
			}
			return deliver(flags, msg)
		},
	}
	cmd.Flags().StringVar(&mediaID, "media-id", "", "Previously uploaded media id")
	cmd.Flags().StringVar(&link, "link", "", "Public HTTPS link to the document")
	cmd.Flags().StringVar(&caption, "caption", "", "Caption shown with the document")
	cmd.Flags().StringVar(&filename, "filename", "", "Filename shown to the recipient")
	return cmd
}

func newLocationCommand(flags *sendFlags) *cobra.Command {
	var lat, long float64
	var name, address string

	cmd := &cobra.Command{
		Use:   "location",
		Short: "Send a map pin",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			msg, err := messages.NewLocation(lat, long, name, address)
			if err != nil {
				return err
			}
			return deliver(flags, msg)
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&long, "long", 0, "Longitude")
	cmd.Flags().StringVar(&name, "name", "", "Location name")
	cmd.Flags().StringVar(&address, "address", "", "Location address")
	return cmd
}

func newReactionCommand(flags *sendFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reaction <message-id> <emoji>",
		Short: "React to a message (empty emoji withdraws)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			emoji := ""
			if len(args) == 2 {
				emoji = args[1]
			}
			msg, err := messages.NewReaction(args[0], emoji)
			if err != nil {
				return err
			}
			return deliver(flags, msg)
		},
	}
	return cmd
}

func deliver(flags *sendFlags, msg messages.Message) error {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	c, _, err := internal.NewClient(cfg)
	if err != nil {
		return err
	}
	botID, err := internal.ResolveBotID(cfg, flags.bot)
	if err != nil {
		return err
	}

	res, err := c.SendMessage(context.Background(), botID, flags.to, msg, flags.replyTo)
	if err != nil {
		return err
	}
	if id := res.MessageID(); id != "" {
		fmt.Printf("Sent %s message %s\n", msg.MessageType(), id)
	} else {
		fmt.Printf("Sent %s message: %s\n", msg.MessageType(), strings.TrimSpace(string(res.Raw)))
	}
	return nil
}
