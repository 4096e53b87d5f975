package read

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal"
)

func NewReadCommand() *cobra.Command {
	var bot string

	cmd := &cobra.Command{
		Use:     "read <message-id>",
		Short:   "Mark a received message as read",
		Args:    cobra.ExactArgs(1),
		Example: "  wagraph read wamid.HBgLMTU1NTEyMzQ1NjcVAgARGBJGQUNFQjAwRkY2RjY2NEYwRkEA",
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			c, _, err := internal.NewClient(cfg)
			if err != nil {
				return err
			}
			botID, err := internal.ResolveBotID(cfg, bot)
			if err != nil {
				return err
			}

			res, err := c.MarkAsRead(context.Background(), botID, args[0])
			if err != nil {
				return err
			}
			if res.Success {
				fmt.Println("Marked as read")
			} else {
				fmt.Printf("Response: %s\n", string(res.Raw))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bot, "bot", "",
		"Receiving phone number id (default: bot_id from config)")
	return cmd
}
