package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal"
)

func NewAuthCommand() *cobra.Command {
	var bot string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Store the access token in the config file",
		Args:  cobra.NoArgs,
		Example: `  wagraph auth
  wagraph auth --bot 106540352242922`,
		RunE: func(_ *cobra.Command, _ []string) error {
			token, err := pasteToken(os.Stdin)
			if err != nil {
				return err
			}

			cfg, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			cfg.Token = token
			if bot != "" {
				cfg.BotID = bot
			}
			if err := cfg.Save(internal.GetConfigPath()); err != nil {
				return err
			}
			fmt.Printf("Token saved to %s\n", internal.GetConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&bot, "bot", "",
		"Also store this phone number id as the default bot")
	return cmd
}

func pasteToken(r io.Reader) (string, error) {
	fmt.Println("Paste your WhatsApp Business access token from developers.facebook.com:")
	fmt.Print("> ")

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return "", errors.New("no input received")
	}

	token := strings.TrimSpace(scanner.Text())
	if token == "" {
		return "", errors.New("token cannot be empty")
	}
	return token, nil
}
