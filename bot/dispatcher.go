package bot

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// UpdateHandler processes one inbound update to completion
type UpdateHandler interface {
	HandleUpdate(update *tgbotapi.Update)
}

// Dispatcher drains inbound updates through a fixed pool of workers. Updates
// are sharded by user ID: updates from the same user are processed in the
// order they arrived, while different users proceed concurrently.
type Dispatcher struct {
	handler UpdateHandler
	shards  []chan *tgbotapi.Update
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher with the given worker count and
// per-worker queue capacity, and starts the workers.
func NewDispatcher(handler UpdateHandler, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}

	d := &Dispatcher{
		handler: handler,
		shards:  make([]chan *tgbotapi.Update, workers),
	}

	for i := range d.shards {
		d.shards[i] = make(chan *tgbotapi.Update, queueSize)
		d.wg.Add(1)
		go d.work(i)
	}

	return d
}

// Enqueue accepts one update for processing. It blocks only when the target
// shard's queue is full, and fails once the dispatcher has been stopped.
func (d *Dispatcher) Enqueue(update *tgbotapi.Update) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return fmt.Errorf("dispatcher is stopped")
	}
	d.shards[d.shardFor(update)] <- update

	updatesEnqueued.Inc()
	queueDepth.Inc()
	return nil
}

// Stop closes the queues and waits for in-flight handlers to finish
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, shard := range d.shards {
		close(shard)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// shardFor keeps all of one user's updates on the same worker
func (d *Dispatcher) shardFor(update *tgbotapi.Update) int {
	var userID int64
	if from := update.SentFrom(); from != nil {
		userID = from.ID
	}
	if userID < 0 {
		userID = -userID
	}
	return int(userID % int64(len(d.shards)))
}

func (d *Dispatcher) work(shard int) {
	defer d.wg.Done()

	for update := range d.shards[shard] {
		queueDepth.Dec()
		d.dispatch(update)
		updatesProcessed.Inc()
	}
}

// dispatch isolates handler failures: a panic is logged and recovered so one
// bad update cannot take down the worker or the process.
func (d *Dispatcher) dispatch(update *tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			handlerPanics.Inc()
			log.WithFields(log.Fields{
				"update_id": update.UpdateID,
				"panic":     r,
			}).Error("Recovered from handler panic")
		}
	}()

	d.handler.HandleUpdate(update)
}
