package bot

import (
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	mu      sync.Mutex
	byUser  map[int64][]int
	panicOn int
}

func (h *recordingHandler) HandleUpdate(update *tgbotapi.Update) {
	if h.panicOn != 0 && update.UpdateID == h.panicOn {
		panic("boom")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.byUser == nil {
		h.byUser = make(map[int64][]int)
	}
	userID := update.SentFrom().ID
	h.byUser[userID] = append(h.byUser[userID], update.UpdateID)
}

func messageUpdate(updateID int, userID int64) *tgbotapi.Update {
	return &tgbotapi.Update{
		UpdateID: updateID,
		Message: &tgbotapi.Message{
			MessageID: updateID,
			From:      &tgbotapi.User{ID: userID},
			Chat:      &tgbotapi.Chat{ID: userID},
			Text:      "hi",
		},
	}
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	handler := &recordingHandler{}
	d := NewDispatcher(handler, 4, 64)

	// Interleave updates from two users
	for i := 1; i <= 20; i++ {
		require.NoError(t, d.Enqueue(messageUpdate(i, int64(100+i%2))))
	}
	d.Stop()

	// Updates from the same user arrive at the handler in delivery order
	for _, ids := range handler.byUser {
		for i := 1; i < len(ids); i++ {
			assert.Greater(t, ids[i], ids[i-1], "same-user updates must stay ordered")
		}
	}

	total := len(handler.byUser[100]) + len(handler.byUser[101])
	assert.Equal(t, 20, total)
}

func TestDispatcher_RecoversFromHandlerPanic(t *testing.T) {
	handler := &recordingHandler{panicOn: 2}
	d := NewDispatcher(handler, 1, 8)

	require.NoError(t, d.Enqueue(messageUpdate(1, 7)))
	require.NoError(t, d.Enqueue(messageUpdate(2, 7)))
	require.NoError(t, d.Enqueue(messageUpdate(3, 7)))
	d.Stop()

	// The panicking update is skipped; the worker keeps going
	assert.Equal(t, []int{1, 3}, handler.byUser[7])
}

func TestDispatcher_EnqueueAfterStop(t *testing.T) {
	d := NewDispatcher(&recordingHandler{}, 1, 8)
	d.Stop()

	err := d.Enqueue(messageUpdate(1, 7))
	assert.Error(t, err)
}

func TestDispatcher_ConcurrentUsers(t *testing.T) {
	var mu sync.Mutex
	started := make(map[int64]time.Time)

	block := make(chan struct{})
	handler := handlerFunc(func(update *tgbotapi.Update) {
		mu.Lock()
		started[update.SentFrom().ID] = time.Now()
		mu.Unlock()
		if update.SentFrom().ID == 0 {
			<-block
		}
	})

	d := NewDispatcher(handler, 4, 8)

	// User 0's handler blocks its shard; user 1 must still be processed
	require.NoError(t, d.Enqueue(messageUpdate(1, 0)))
	require.NoError(t, d.Enqueue(messageUpdate(2, 1)))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		_, ok := started[1]
		return ok
	}, time.Second, 5*time.Millisecond, "a busy handler for one user must not stall another user")

	close(block)
	d.Stop()
}

type handlerFunc func(update *tgbotapi.Update)

func (f handlerFunc) HandleUpdate(update *tgbotapi.Update) { f(update) }
