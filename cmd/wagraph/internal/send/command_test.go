package send

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSendCommand(t *testing.T) {
	cmd := NewSendCommand()

	require.NotNil(t, cmd)

	assert.Equal(t, "send", cmd.Use)
	assert.True(t, cmd.HasExample())
	assert.True(t, cmd.HasSubCommands())

	assert.NotNil(t, cmd.PersistentFlags().Lookup("bot"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("to"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("reply-to"))
}

func TestNewSendCommand_Subcommands(t *testing.T) {
	cmd := NewSendCommand()

	for _, name := range []string{"text", "image", "document", "location", "reaction"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		require.NotNil(t, sub, name)
		assert.NotNil(t, sub.RunE, name)
	}

	text, _, err := cmd.Find([]string{"text"})
	require.NoError(t, err)
	assert.NotNil(t, text.Flags().Lookup("preview-url"))

	image, _, err := cmd.Find([]string{"image"})
	require.NoError(t, err)
	assert.NotNil(t, image.Flags().Lookup("media-id"))
	assert.NotNil(t, image.Flags().Lookup("link"))
	assert.NotNil(t, image.Flags().Lookup("caption"))

	location, _, err := cmd.Find([]string{"location"})
	require.NoError(t, err)
	assert.NotNil(t, location.Flags().Lookup("lat"))
	assert.NotNil(t, location.Flags().Lookup("long"))
}
