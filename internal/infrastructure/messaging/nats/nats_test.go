package nats

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

func runServer(t *testing.T) string {
	t.Helper()
	srv, err := server.NewServer(&server.Options{Host: "127.0.0.1", Port: -1, NoLog: true, NoSigs: true})
	require.NoError(t, err)
	go srv.Start()
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("nats server did not start")
	}
	t.Cleanup(srv.Shutdown)
	return srv.ClientURL()
}

type recordingQueue struct {
	mu  sync.Mutex
	ids []string
	got chan struct{}
}

func newRecordingQueue() *recordingQueue {
	return &recordingQueue{got: make(chan struct{}, 16)}
}

func (q *recordingQueue) Enqueue(bearID string) {
	q.mu.Lock()
	q.ids = append(q.ids, bearID)
	q.mu.Unlock()
	q.got <- struct{}{}
}

func (q *recordingQueue) bearIDs() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.ids...)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "bearwatch.sightings.finlay", Subject("finlay"))
	assert.Equal(t, "bearwatch.sightings.mr_bear", Subject("mr.bear"))
}

func TestPublishReachesOtherInstances(t *testing.T) {
	url := runServer(t)

	pubConn, err := Connect(url, zerolog.Nop())
	require.NoError(t, err)
	defer pubConn.Close()
	subConn, err := Connect(url, zerolog.Nop())
	require.NoError(t, err)
	defer subConn.Close()

	queue := newRecordingQueue()
	sub, err := Subscribe(subConn, queue, zerolog.Nop())
	require.NoError(t, err)
	defer sub.Close()
	require.NoError(t, subConn.Flush())

	err = NewPublisher(pubConn).PublishSightingRecorded(context.Background(), ports.SightingRecorded{
		BearID: "finlay", SightingID: "s1", City: "Paris", Country: "France", Lat: 48.85, Lng: 2.35,
	})
	require.NoError(t, err)

	select {
	case <-queue.got:
	case <-time.After(5 * time.Second):
		t.Fatal("sighting event was not delivered")
	}
	assert.Equal(t, []string{"finlay"}, queue.bearIDs())
}

func TestSubscriberIgnoresMalformedEvents(t *testing.T) {
	url := runServer(t)

	pubConn, err := Connect(url, zerolog.Nop())
	require.NoError(t, err)
	defer pubConn.Close()
	subConn, err := Connect(url, zerolog.Nop())
	require.NoError(t, err)
	defer subConn.Close()

	queue := newRecordingQueue()
	sub, err := Subscribe(subConn, queue, zerolog.Nop())
	require.NoError(t, err)
	defer sub.Close()
	require.NoError(t, subConn.Flush())

	require.NoError(t, pubConn.Publish(Subject("finlay"), []byte("not json")))
	require.NoError(t, pubConn.Publish(Subject("finlay"), []byte(`{"bear_id":""}`)))
	require.NoError(t, pubConn.Publish(Subject("hamish"), []byte(`{"bear_id":"hamish"}`)))
	require.NoError(t, pubConn.Flush())

	// messages on one subscription are handled in order
	select {
	case <-queue.got:
	case <-time.After(5 * time.Second):
		t.Fatal("valid event was not delivered")
	}
	assert.Equal(t, []string{"hamish"}, queue.bearIDs())
}
