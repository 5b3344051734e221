package chat_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ishashah2303/Legal-DocAnalyzer/internal/backend/mocks"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/domain/chat"
	"github.com/ishashah2303/Legal-DocAnalyzer/internal/localstore"
)

const greeting = "Hello! I am DocBot 🤖 — your AI-powered Document Analyzer. How can I assist you today?"

func newFixture(t *testing.T, store localstore.Store) (*chat.Service, *mocks.API) {
	t.Helper()
	api := &mocks.API{}
	svc, err := chat.NewService(context.Background(), api, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return svc, api
}

func TestService_OpensWithGreeting(t *testing.T) {
	svc, _ := newFixture(t, localstore.NewMemory())

	messages := svc.Messages()
	require.Len(t, messages, 1)
	require.Equal(t, chat.RoleAssistant, messages[0].Role)
	require.Equal(t, greeting, messages[0].Content)
}

func TestService_ReusesPersistedSessionID(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	require.NoError(t, store.Set(ctx, localstore.KeySessionID, "session-100"))

	svc, _ := newFixture(t, store)
	require.Equal(t, "session-100", svc.SessionID())
}

func TestService_MintsAndPersistsSessionID(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()

	svc, _ := newFixture(t, store)
	id := svc.SessionID()
	require.Regexp(t, `^session-\d+$`, id)

	persisted, err := store.Get(ctx, localstore.KeySessionID)
	require.NoError(t, err)
	require.Equal(t, id, persisted)
}

func TestService_SendAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t, localstore.NewMemory())

	api.On("Chat", ctx, "what is an NDA?", svc.SessionID()).
		Return("A confidentiality agreement.", nil).Once()
	api.On("Chat", ctx, "thanks", svc.SessionID()).
		Return("You are welcome!", nil).Once()

	require.NoError(t, svc.Send(ctx, "what is an NDA?"))
	require.NoError(t, svc.Send(ctx, "thanks"))

	messages := svc.Messages()
	require.Len(t, messages, 5)
	require.Equal(t, chat.RoleUser, messages[1].Role)
	require.Equal(t, chat.StatusDelivered, messages[1].Status)
	require.Equal(t, chat.RoleAssistant, messages[2].Role)
	require.Equal(t, "A confidentiality agreement.", messages[2].Content)
	require.Equal(t, chat.RoleUser, messages[3].Role)
	require.Equal(t, "You are welcome!", messages[4].Content)
}

func TestService_SendFailureApologizes(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t, localstore.NewMemory())

	api.On("Chat", ctx, "hello", svc.SessionID()).
		Return("", errors.New("backend down"))

	require.NoError(t, svc.Send(ctx, "hello"))

	messages := svc.Messages()
	require.Len(t, messages, 3)
	require.Equal(t, chat.StatusFailed, messages[1].Status)
	require.Equal(t, chat.RoleAssistant, messages[2].Role)
	require.Equal(t, "Oops! Something went wrong. Please try again.", messages[2].Content)
}

func TestService_SendBlankIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t, localstore.NewMemory())

	require.NoError(t, svc.Send(ctx, "   "))
	require.Len(t, svc.Messages(), 1)
	api.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ClearRotatesSessionID(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	svc, api := newFixture(t, store)
	old := svc.SessionID()

	api.On("ClearSession", ctx, old).Return(nil)

	require.NoError(t, svc.Clear(ctx))

	require.NotEqual(t, old, svc.SessionID())
	messages := svc.Messages()
	require.Len(t, messages, 1)
	require.Equal(t, "Chat cleared. Ready for a fresh start! 😊", messages[0].Content)

	persisted, err := store.Get(ctx, localstore.KeySessionID)
	require.NoError(t, err)
	require.Equal(t, svc.SessionID(), persisted)
}

func TestService_ClearDuringSendDropsReply(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t, localstore.NewMemory())
	old := svc.SessionID()

	entered := make(chan struct{})
	release := make(chan struct{})
	api.On("Chat", mock.Anything, "hello", old).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return("late reply", nil)
	api.On("ClearSession", mock.Anything, old).Return(nil)

	var wg sync.WaitGroup
	var sendErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		sendErr = svc.Send(ctx, "hello")
	}()

	<-entered
	require.NoError(t, svc.Clear(ctx))
	close(release)
	wg.Wait()

	require.NoError(t, sendErr)
	messages := svc.Messages()
	require.Len(t, messages, 1)
	require.Equal(t, "Chat cleared. Ready for a fresh start! 😊", messages[0].Content)
}

func TestService_ClearSurvivesServerFailure(t *testing.T) {
	ctx := context.Background()
	svc, api := newFixture(t, localstore.NewMemory())
	old := svc.SessionID()

	api.On("ClearSession", ctx, old).Return(errors.New("server down"))

	require.NoError(t, svc.Clear(ctx))
	require.NotEqual(t, old, svc.SessionID())
}
