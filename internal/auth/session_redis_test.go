package auth

import (
	"context"
	"elite-dashboard/internal/models"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldExpiryRecorder captures HEXPIRE commands queued inside transactions and
// forwards them as generic commands, since miniredis answers HEXPIRE with a
// scalar that the typed IntSliceCmd reply parser rejects.
type fieldExpiryRecorder struct {
	mu   sync.Mutex
	args [][]any
}

func (h *fieldExpiryRecorder) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *fieldExpiryRecorder) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return next
}

func (h *fieldExpiryRecorder) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		forwarded := make([]redis.Cmder, len(cmds))
		for i, cmd := range cmds {
			forwarded[i] = cmd
			if cmd.Name() != "hexpire" {
				continue
			}

			h.mu.Lock()
			h.args = append(h.args, cmd.Args())
			h.mu.Unlock()

			forwarded[i] = redis.NewCmd(ctx, cmd.Args()...)
		}

		return next(ctx, forwarded)
	}
}

func (h *fieldExpiryRecorder) recorded() [][]any {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.args
}

func newFieldExpiryStore(t *testing.T) (*SessionStore, *miniredis.Miniredis, *fieldExpiryRecorder) {
	t.Helper()

	mr, client := newTestRedis(t)
	recorder := &fieldExpiryRecorder{}
	client.AddHook(recorder)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSessionStore(client, logger, testSessionConfig(), true), mr, recorder
}

func TestSessionStore_SaveQueuesFieldExpiry(t *testing.T) {
	store, mr, recorder := newFieldExpiryStore(t)
	ctx := context.Background()

	sessionID, err := store.Init(ctx, "csrf-1")
	require.NoError(t, err)
	require.NoError(t, store.ValidateInit(ctx, sessionID, "csrf-1"))

	tokens := testTokens()
	tokens.ExpiresIn = time.Minute
	require.NoError(t, store.Save(ctx, sessionID, tokens, "123", models.RoleStaff))

	calls := recorder.recorded()
	require.Len(t, calls, 1)

	args := calls[0]
	require.Len(t, args, 6)
	assert.True(t, strings.EqualFold("hexpire", fmt.Sprint(args[0])))
	assert.Equal(t, sessionKey(sessionID), fmt.Sprint(args[1]))
	assert.Equal(t, "55", fmt.Sprint(args[2]))
	assert.True(t, strings.EqualFold("fields", fmt.Sprint(args[3])))
	assert.Equal(t, "1", fmt.Sprint(args[4]))
	assert.Equal(t, FieldDiscordAccessToken, fmt.Sprint(args[5]))

	assert.Equal(t, 30*24*time.Hour, mr.TTL(sessionKey(sessionID)))

	session, err := store.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "discord-access", session.DiscordAccessToken)
}

func TestSessionStore_SaveSkipsFieldExpiryWithoutAccessToken(t *testing.T) {
	store, _, recorder := newFieldExpiryStore(t)
	ctx := context.Background()

	sessionID, err := store.Init(ctx, "csrf-1")
	require.NoError(t, err)

	tokens := testTokens()
	tokens.ExpiresIn = accessTokenMargin
	require.NoError(t, store.Save(ctx, sessionID, tokens, "123", models.RoleElite))

	assert.Empty(t, recorder.recorded())
}

func TestSessionStore_AccessTokenExpiresBeforeSession(t *testing.T) {
	store, mr, _ := newFieldExpiryStore(t)
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	sessionID, err := store.Init(ctx, "csrf-1")
	require.NoError(t, err)

	tokens := testTokens()
	tokens.ExpiresIn = time.Minute
	require.NoError(t, store.Save(ctx, sessionID, tokens, "123", models.RoleElite))

	now = now.Add(2 * time.Minute)
	mr.FastForward(2 * time.Minute)

	session, err := store.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, session.DiscordAccessToken)
	assert.Equal(t, "discord-refresh", session.DiscordRefreshToken)
	assert.True(t, mr.Exists(sessionKey(sessionID)))
}

func TestSessionStore_SaveReturnsOnErrorReply(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1, PoolSize: 1})
	t.Cleanup(func() { _ = client.Close() })

	store := NewSessionStore(client, slog.New(slog.NewTextHandler(io.Discard, nil)), testSessionConfig(), false)

	mr.SetError("READONLY You can't write against a read only replica.")

	done := make(chan error, 1)
	go func() {
		ctx := context.Background()
		for i := 0; i < 2; i++ {
			if err := store.Save(ctx, "abc", testTokens(), "123", models.RoleElite); err == nil {
				done <- fmt.Errorf("save %d succeeded against a failing server", i)
				return
			}
		}

		mr.SetError("")
		_, err := store.Init(ctx, "csrf")
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("session store did not return after an error reply")
	}
}
