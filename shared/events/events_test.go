package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/events"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
	}{
		{name: "delivered"},
		{name: "broker failure is swallowed", sendErr: errors.New("broker down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := kafkaMocks.NewMockClient(ctrl)

			cfg := &config.Config{}
			cfg.Kafka.Topic = "frontdesk.events"

			payload := events.StayBooked{StayID: "s1", Room: 101}
			done := make(chan struct{})

			client.EXPECT().
				SendMessages(gomock.Any(), "frontdesk.events", kafka.Message{Key: events.KeyStayBooked, Value: payload}).
				DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
					close(done)

					return tt.sendErr
				})

			ctx, cancel := context.WithCancel(context.Background())
			events.New(cfg, client, mocks.NewOtel()).Publish(ctx, events.KeyStayBooked, payload)
			cancel()

			select {
			case <-done:
			case <-time.After(time.Second):
				assert.Fail(t, "event was not published")
			}
		})
	}
}

func TestPublisher_CloseWaitsForInFlightEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := kafkaMocks.NewMockClient(ctrl)
	cfg := &config.Config{}
	cfg.Kafka.Topic = "frontdesk.events"

	sent := false

	gomock.InOrder(
		client.EXPECT().SendMessages(gomock.Any(), "frontdesk.events", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
				time.Sleep(20 * time.Millisecond)
				sent = true

				return nil
			}),
		client.EXPECT().Close().Return(nil),
	)

	publisher := events.New(cfg, client, mocks.NewOtel())
	publisher.Publish(context.Background(), events.KeyReservationsPurged, events.ReservationsPurged{Removed: 2})

	assert.NoError(t, publisher.Close())
	assert.True(t, sent)
}
