package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	KeyStayBooked           = "stay.booked"
	KeyStayTransferred      = "stay.transferred"
	KeyReservationsPurged   = "reservations.purged"
	KeyReservationsImported = "reservations.imported"
)

type StayBooked struct {
	StayID    string `json:"stay_id"`
	Room      int    `json:"room"`
	Name      string `json:"name"`
	PartySize int    `json:"party_size"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	GroupKey  string `json:"group_key"`
}

type StayTransferred struct {
	Origin       int    `json:"origin"`
	Destination  int    `json:"destination"`
	OccupantName string `json:"occupant_name"`
	Moved        int    `json:"moved"`
	Relocated    int    `json:"relocated_charges"`
	Reason       string `json:"reason,omitempty"`
}

type ReservationsPurged struct {
	CheckIn  string `json:"check_in"`
	Removed  int    `json:"removed"`
	Snapshot string `json:"snapshot,omitempty"`
}

type ReservationsImported struct {
	Added    int    `json:"added"`
	Snapshot string `json:"snapshot,omitempty"`
}

// Publisher emits domain events after a write is committed. Delivery is best effort and never
// fails the operation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, key string, payload any)
	// Close waits for in-flight events and releases the broker client.
	Close() error
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
	wg     sync.WaitGroup
}

func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, key string, payload any) {
	p.wg.Add(1)

	go func() {
		defer p.wg.Done()

		c, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
		defer scope.End()

		scope.SetAttribute("event.key", key)

		err := p.client.SendMessages(c, p.topic, kafka.Message{Key: key, Value: payload})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("key", key).Msg("failed to publish event")
		}
	}()
}

func (p *publisherImpl) Close() error {
	p.wg.Wait()

	return p.client.Close() // nolint:wrapcheck
}
