package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSession_InitAndClear(t *testing.T) {
	t.Parallel()

	s := NewSession()
	require.False(t, s.Active())

	s.Init("tok", "a@x.com")
	require.True(t, s.Active())
	require.Equal(t, "tok", s.Token())
	require.Equal(t, "a@x.com", s.Email())

	s.Clear()
	require.False(t, s.Active())
	require.Empty(t, s.Token())
	require.Empty(t, s.Email())
}

func TestSession_SubscribersNotifiedOnClear(t *testing.T) {
	t.Parallel()

	s := NewSession()
	var notified int
	s.Subscribe(func() { notified++ })

	// Clearing an inactive session is a no-op for subscribers.
	s.Clear()
	require.Zero(t, notified)

	s.Init("tok", "a@x.com")
	s.Clear()
	require.Equal(t, 1, notified)
}
