package cli

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multichat/internal/entities"
	"multichat/internal/repository"
	"multichat/internal/usecases"
)

type fakeBackend struct {
	reply string
	err   error
	calls int
}

func (b *fakeBackend) Send(context.Context, entities.Platform, string, string) (string, error) {
	b.calls++
	return b.reply, b.err
}

func newTestSession(t *testing.T, backend Backend, useBackend bool) (*Session, *bytes.Buffer) {
	t.Helper()
	conversations, err := repository.NewConversationRepository(1, 20)
	require.NoError(t, err)

	var out bytes.Buffer
	s := NewSession(SessionConfig{
		Out:        &out,
		Backend:    backend,
		Local:      usecases.NewMessageService(conversations, usecases.NewRenderer(rand.NewPCG(1, 1), nil)),
		Platform:   entities.WhatsApp,
		SessionID:  "cli",
		UseBackend: useBackend,
		Thinking:   func() time.Duration { return 0 },
	})
	return s, &out
}

func TestSessionUsesBackend(t *testing.T) {
	backend := &fakeBackend{reply: "from the server"}
	s, out := newTestSession(t, backend, true)

	quit, err := s.Handle(context.Background(), "hello")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 1, backend.calls)
	assert.Contains(t, out.String(), "from the server")
}

func TestSessionFallsBackToLocal(t *testing.T) {
	backend := &fakeBackend{err: errors.New("connection refused")}
	s, out := newTestSession(t, backend, true)

	_, err := s.Handle(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.calls)
	assert.Contains(t, out.String(), "WhatsApp")
	assert.NotContains(t, out.String(), "connection refused")
}

func TestSessionOfflineSkipsBackend(t *testing.T) {
	backend := &fakeBackend{reply: "unused"}
	s, _ := newTestSession(t, backend, false)

	_, err := s.Handle(context.Background(), "hello")
	require.NoError(t, err)
	assert.Zero(t, backend.calls)
}

func TestSessionCommands(t *testing.T) {
	backend := &fakeBackend{reply: "pong"}
	s, out := newTestSession(t, backend, false)
	ctx := context.Background()

	_, err := s.Handle(ctx, "/platform Telegram")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Switched to Telegram AI assistant")
	assert.Equal(t, entities.Telegram, s.platform)

	out.Reset()
	_, err = s.Handle(ctx, "/platform Discord")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "unsupported platform")
	assert.Equal(t, entities.Telegram, s.platform)

	_, err = s.Handle(ctx, "/backend")
	require.NoError(t, err)
	assert.True(t, s.useBackend)

	_, err = s.Handle(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.calls)

	quit, err := s.Handle(ctx, "/quit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestSessionClearForgetsHistory(t *testing.T) {
	s, out := newTestSession(t, nil, false)
	ctx := context.Background()

	_, err := s.Handle(ctx, "something random")
	require.NoError(t, err)
	assert.True(t, s.local.RecentFollowUpSignal("cli", "yes"))

	_, err = s.Handle(ctx, "/clear")
	require.NoError(t, err)
	assert.False(t, s.local.RecentFollowUpSignal("cli", "yes"))
	assert.Contains(t, out.String(), "Conversation cleared")
}

func TestRunStopsOnQuit(t *testing.T) {
	s, out := newTestSession(t, nil, false)

	err := s.Run(context.Background(), strings.NewReader("hello\n/quit\nnever read\n"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome to your WhatsApp AI assistant")
	assert.Contains(t, out.String(), "Goodbye!")
	assert.NotContains(t, out.String(), "never read")
}

func TestRandomThinking(t *testing.T) {
	d := RandomThinking(time.Second, 3*time.Second)
	for i := 0; i < 20; i++ {
		got := d()
		assert.GreaterOrEqual(t, got, time.Second)
		assert.Less(t, got, 3*time.Second)
	}
	assert.Equal(t, time.Second, RandomThinking(time.Second, time.Second)())
}
