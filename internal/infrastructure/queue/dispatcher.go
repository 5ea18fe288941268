package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// RefreshFunc redraws whatever is live for a bear.
type RefreshFunc func(ctx context.Context, bearID string) error

// Dispatcher routes map refreshes to a fixed set of workers using consistent
// hashing on the bear id, so refreshes of one bear never run concurrently.
// A bear that already has a refresh waiting is not queued twice.
type Dispatcher struct {
	workers []chan string
	refresh RefreshFunc
	log     zerolog.Logger

	pending sync.Map
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, refresh RefreshFunc, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan string, numWorkers),
		refresh: refresh,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue schedules a refresh of bearID on its worker. It never blocks: when
// the worker queue is full the request is dropped.
func (d *Dispatcher) Enqueue(bearID string) {
	if _, queued := d.pending.LoadOrStore(bearID, struct{}{}); queued {
		return
	}

	idx := d.shardIndex(bearID)
	// Counted before the send: the worker may dequeue before select returns.
	depth := metrics.RefreshQueueDepth.WithLabelValues(strconv.Itoa(idx))
	depth.Inc()
	select {
	case d.workers[idx] <- bearID:
	default:
		depth.Dec()
		d.pending.Delete(bearID)
		metrics.RefreshesDroppedTotal.Inc()
		d.log.Warn().Str("bear_id", bearID).Int("worker_id", idx).Msg("refresh queue full, dropping")
	}
}

// shardIndex maps a bear id deterministically to a worker index.
func (d *Dispatcher) shardIndex(bearID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bearID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	defer d.wg.Done()
	depth := metrics.RefreshQueueDepth.WithLabelValues(strconv.Itoa(id))

	for {
		select {
		case <-ctx.Done():
			return
		case bearID, ok := <-ch:
			if !ok {
				return
			}
			depth.Dec()
			d.pending.Delete(bearID)
			if err := d.refresh(ctx, bearID); err != nil {
				d.log.Error().Err(err).
					Str("bear_id", bearID).
					Int("worker_id", id).
					Msg("map refresh failed")
			}
		}
	}
}
