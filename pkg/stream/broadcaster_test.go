package stream

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/lifecycle"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := lifecycle.CreateLogger(&logger.Config{Level: "disabled"})
	require.NoError(t, err)

	return log
}

func receiveEnvelope(t *testing.T, sub *Subscriber) models.StreamMessage {
	t.Helper()

	select {
	case frame := <-sub.Queue():
		var msg models.StreamMessage
		require.NoError(t, json.Unmarshal(frame, &msg))

		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return models.StreamMessage{}
	}
}

func TestBroadcastDeliversToAllSubscribers(t *testing.T) {
	b := NewBroadcaster(4, newTestLogger(t))

	first := b.Register()
	second := b.Register()
	require.Equal(t, 2, b.Count())

	b.Broadcast(models.EventTypeTelemetry, map[string]string{"device_id": "sensor-1"})

	for _, sub := range []*Subscriber{first, second} {
		msg := receiveEnvelope(t, sub)
		assert.Equal(t, models.EventTypeTelemetry, msg.Type)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(msg.Data, &payload))
		assert.Equal(t, "sensor-1", payload["device_id"])
	}
}

func TestBroadcastDropsSubscriberWithFullQueue(t *testing.T) {
	b := NewBroadcaster(1, newTestLogger(t))

	healthy := b.Register()
	stalled := b.Register()

	// Fill the stalled subscriber's queue without draining it.
	b.Broadcast(models.EventTypeTelemetry, map[string]string{"seq": "1"})
	receiveEnvelope(t, healthy)

	// The second broadcast overflows the stalled queue: it must be removed
	// while the healthy subscriber still receives the event.
	b.Broadcast(models.EventTypeTelemetry, map[string]string{"seq": "2"})

	msg := receiveEnvelope(t, healthy)
	assert.Equal(t, models.EventTypeTelemetry, msg.Type)
	assert.Equal(t, 1, b.Count())

	// A further broadcast reaches only the survivor.
	b.Broadcast(models.EventTypeAnomaly, map[string]string{"seq": "3"})
	assert.Equal(t, models.EventTypeAnomaly, receiveEnvelope(t, healthy).Type)
	_ = stalled
}

func TestUnregisterIsIdempotent(t *testing.T) {
	b := NewBroadcaster(4, newTestLogger(t))

	sub := b.Register()
	require.Equal(t, 1, b.Count())

	b.Unregister(sub)
	assert.Equal(t, 0, b.Count())

	// A second unregister of the same handle must not panic or close the
	// queue twice.
	b.Unregister(sub)
	assert.Equal(t, 0, b.Count())
}

func TestBroadcastWithNoSubscribers(t *testing.T) {
	b := NewBroadcaster(4, newTestLogger(t))

	b.Broadcast(models.EventTypeDeviceStatus, map[string]string{"device_id": "sensor-1"})

	assert.Equal(t, 0, b.Count())
}

func TestSubscriberQueueClosedAfterUnregister(t *testing.T) {
	b := NewBroadcaster(4, newTestLogger(t))

	sub := b.Register()
	b.Unregister(sub)

	_, ok := <-sub.Queue()
	assert.False(t, ok)
}
