// Package nats broadcasts accepted sightings between bearwatch instances so
// each of them can refresh the maps it is serving.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

// SubjectPrefix is followed by one token holding the bear id.
const SubjectPrefix = "bearwatch.sightings"

var subjectReplacer = strings.NewReplacer(".", "_", " ", "_", "*", "_", ">", "_")

// Subject returns the subject sightings of bearID are published on.
func Subject(bearID string) string {
	return SubjectPrefix + "." + subjectReplacer.Replace(bearID)
}

// Connect dials NATS and keeps reconnecting in the background. Messages
// published on this connection are not delivered back to it.
func Connect(url string, logger zerolog.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("bearwatch"),
		nats.NoEcho(),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info().Str("url", c.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return nc, nil
}

// Publisher implements ports.SightingPublisher.
type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

func (p *Publisher) PublishSightingRecorded(ctx context.Context, ev ports.SightingRecorded) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode sighting event: %w", err)
	}
	if err := p.nc.Publish(Subject(ev.BearID), data); err != nil {
		return fmt.Errorf("publish sighting event: %w", err)
	}
	return nil
}

// Subscriber turns sightings recorded by other instances into map refreshes.
type Subscriber struct {
	sub    *nats.Subscription
	queue  ports.RefreshQueue
	logger zerolog.Logger
}

func Subscribe(nc *nats.Conn, queue ports.RefreshQueue, logger zerolog.Logger) (*Subscriber, error) {
	s := &Subscriber{queue: queue, logger: logger}
	sub, err := nc.Subscribe(SubjectPrefix+".*", s.handle)
	if err != nil {
		return nil, fmt.Errorf("nats subscribe: %w", err)
	}
	s.sub = sub
	return s, nil
}

func (s *Subscriber) handle(msg *nats.Msg) {
	var ev ports.SightingRecorded
	if err := json.Unmarshal(msg.Data, &ev); err != nil || ev.BearID == "" {
		s.logger.Warn().Str("subject", msg.Subject).Msg("ignoring malformed sighting event")
		return
	}
	s.logger.Debug().Str("bear_id", ev.BearID).Str("sighting_id", ev.SightingID).Msg("remote sighting")
	s.queue.Enqueue(ev.BearID)
}

// Close stops receiving after in-flight messages are handled.
func (s *Subscriber) Close() error {
	return s.sub.Drain()
}
