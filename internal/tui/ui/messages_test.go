package ui_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/pitchdeck/internal/tui/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	t.Parallel()

	cmd := ui.Frame(time.Millisecond, 3, 7)
	require.NotNil(t, cmd)

	msg, ok := cmd().(ui.FrameMsg)
	require.True(t, ok)
	assert.Equal(t, 3, msg.Generation)
	assert.Equal(t, 7, msg.Target)
	assert.False(t, msg.Time.IsZero())
}
