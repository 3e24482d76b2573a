package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillPublisher_GoChannel(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	pubSub := NewGoChannelPubSub(logger)
	t.Cleanup(func() { pubSub.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "activity")
	require.NoError(t, err)

	publisher := NewWatermillPublisher(pubSub, "activity", logger)
	event := NewEvent(TypeOnboarded, "session-1", map[string]interface{}{"domain": "jee"})
	require.NoError(t, publisher.Publish(ctx, event))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, TypeOnboarded, msg.Metadata.Get("event_type"))
		assert.Equal(t, "session-1", msg.Metadata.Get("session_id"))

		var got Event
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, event.Type, got.Type)
		assert.Equal(t, "jee", got.Data["domain"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestWatermillPublisher_NoSubscriber(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	pubSub := NewGoChannelPubSub(logger)
	t.Cleanup(func() { pubSub.Close() })

	publisher := NewWatermillPublisher(pubSub, "activity", logger)
	assert.NoError(t, publisher.Publish(context.Background(), NewEvent(TypeStepChanged, "s", nil)))
}

func TestConsumeActivity(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	pubSub := NewGoChannelPubSub(logger)
	t.Cleanup(func() { pubSub.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, ConsumeActivity(ctx, pubSub, "activity", logger))

	publisher := NewWatermillPublisher(pubSub, "activity", logger)
	assert.NoError(t, publisher.Publish(ctx, NewEvent(TypeCoinsRedeemed, "s", nil)))
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(TypeSectionChanged, "s1", nil)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventSource, event.Source)
	assert.Equal(t, EventVersion, event.Version)
	assert.False(t, event.Timestamp.IsZero())
}

func TestMockEventPublisher(t *testing.T) {
	m := NewMockEventPublisher(nil)
	ctx := context.Background()

	require.NoError(t, m.Publish(ctx, NewEvent(TypeStepChanged, "s", nil)))
	require.NoError(t, m.Publish(ctx, NewEvent(TypeOnboarded, "s", nil)))
	assert.Len(t, m.GetPublishedEvents(), 2)
	assert.Len(t, m.EventsOfType(TypeOnboarded), 1)

	m.ClearEvents()
	assert.Empty(t, m.GetPublishedEvents())

	m.Err = assert.AnError
	assert.ErrorIs(t, m.Publish(ctx, NewEvent(TypeStepChanged, "s", nil)), assert.AnError)
}
