package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal"
	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal/auth"
	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal/media"
	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal/qr"
	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal/read"
	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal/send"
	"github.com/tinyland-inc/wagraph/cmd/wagraph/internal/version"
)

func NewWagraphCommand() *cobra.Command {
	short := fmt.Sprintf("%s wagraph - WhatsApp Cloud API client v%s\n\n", internal.Logo, internal.GetVersion())

	cmd := &cobra.Command{
		Use:     "wagraph",
		Short:   short,
		Example: "wagraph send text --to 15551234567 \"hello\"",
	}

	cmd.AddCommand(
		auth.NewAuthCommand(),
		send.NewSendCommand(),
		read.NewReadCommand(),
		media.NewMediaCommand(),
		qr.NewQRCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}

func main() {
	cmd := NewWagraphCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
