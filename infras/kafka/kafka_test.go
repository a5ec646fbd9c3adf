package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kafkaGo "github.com/segmentio/kafka-go"

	"autocare/config"
	"autocare/infras/kafka"
)

type bookingPayload struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func TestMessageRoundTrip(t *testing.T) {
	occurred := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	msg := kafka.Message{
		Key: "b-1",
		Value: kafka.Event[bookingPayload]{
			Type:       "booking.created",
			OccurredAt: occurred,
			Payload:    bookingPayload{ID: "b-1", Status: "pending"},
		},
	}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("b-1"), raw.Key)
	assert.JSONEq(t, `{"type":"booking.created","occurredAt":"2025-05-01T09:30:00Z","payload":{"id":"b-1","status":"pending"}}`, string(raw.Value))

	event, err := kafka.Decode[kafka.Event[bookingPayload]](raw)
	require.NoError(t, err)
	assert.Equal(t, "pending", event.Payload.Status)
	assert.True(t, event.OccurredAt.Equal(occurred))
}

func TestDecode_Invalid(t *testing.T) {
	_, err := kafka.Decode[bookingPayload](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "x", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestNew_DisabledClientDropsMessages(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.NoError(t, client.SendMessages(context.Background(), "autocare.booking", kafka.Message{Key: "b-1", Value: "x"}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		client.Consume(ctx, "", "autocare.booking", func(kafkaGo.Message) {})
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after cancel")
	}

	assert.NoError(t, client.Close())
}
