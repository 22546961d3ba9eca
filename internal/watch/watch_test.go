package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
		panic("unreachable")
	}
}

func TestTopic_LateSubscriberGetsReplay(t *testing.T) {
	topic := NewTopic[[]string]()
	topic.Publish([]string{"abys", "beng"})

	sub := topic.Subscribe()
	defer sub.Cancel()

	assert.Equal(t, []string{"abys", "beng"}, receive(t, sub.C))
}

func TestTopic_AllSubscribersReceivePublish(t *testing.T) {
	topic := NewTopic[int]()

	s1 := topic.Subscribe()
	defer s1.Cancel()
	s2 := topic.Subscribe()
	defer s2.Cancel()

	topic.Publish(7)

	assert.Equal(t, 7, receive(t, s1.C))
	assert.Equal(t, 7, receive(t, s2.C))
}

func TestTopic_SlowConsumerSeesNewestValue(t *testing.T) {
	topic := NewTopic[int]()
	sub := topic.Subscribe()
	defer sub.Cancel()

	// Nobody is reading; the buffer holds one value and conflation keeps
	// replacing it.
	topic.Publish(1)
	topic.Publish(2)
	topic.Publish(3)

	assert.Equal(t, 3, receive(t, sub.C))
}

func TestTopic_CancelStopsDeliveryAndCloses(t *testing.T) {
	topic := NewTopic[int]()
	sub := topic.Subscribe()
	require.Equal(t, 1, topic.Len())

	sub.Cancel()
	assert.Equal(t, 0, topic.Len())

	_, ok := <-sub.C
	assert.False(t, ok, "channel should be closed after cancel")

	// Publishing after cancel must not panic.
	topic.Publish(5)

	// Cancel is idempotent.
	sub.Cancel()
}

func TestTopic_SubscribeBeforeAnyPublishStartsEmpty(t *testing.T) {
	topic := NewTopic[int]()
	sub := topic.Subscribe()
	defer sub.Cancel()

	select {
	case v := <-sub.C:
		t.Fatalf("expected no buffered value, got %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}
