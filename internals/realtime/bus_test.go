package realtime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("transactions", EventInsert)
	defer sub.Unsubscribe()

	id := uuid.New()
	bus.Publish(Event{Table: "transactions", Type: EventInsert, RecordID: id})

	ev := <-sub.C
	assert.Equal(t, "transactions", ev.Table)
	assert.Equal(t, EventInsert, ev.Type)
	assert.Equal(t, id, ev.RecordID)
	assert.False(t, ev.At.IsZero())
}

func TestSubscribeFiltersByType(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("transactions", EventDelete)
	defer sub.Unsubscribe()

	bus.Publish(Event{Table: "transactions", Type: EventInsert})
	bus.Publish(Event{Table: "transactions", Type: EventDelete})

	ev := <-sub.C
	assert.Equal(t, EventDelete, ev.Type)
	// INSERT tadi tidak boleh masuk
	select {
	case extra := <-sub.C:
		t.Fatalf("tidak mengharapkan event lagi, dapat %v", extra.Type)
	default:
	}
}

func TestSubscribeFiltersByTable(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("operators")
	defer sub.Unsubscribe()

	bus.Publish(Event{Table: "transactions", Type: EventInsert})
	select {
	case ev := <-sub.C:
		t.Fatalf("event tabel lain bocor: %+v", ev)
	default:
	}
}

func TestWildcardReceivesAll(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("transactions", EventAll)
	defer sub.Unsubscribe()

	for _, typ := range []EventType{EventInsert, EventUpdate, EventDelete} {
		bus.Publish(Event{Table: "transactions", Type: typ})
	}
	for _, want := range []EventType{EventInsert, EventUpdate, EventDelete} {
		ev := <-sub.C
		assert.Equal(t, want, ev.Type)
	}
}

func TestUnsubscribeIsDeterministic(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("transactions")

	sub.Unsubscribe()
	// channel harus tertutup, tidak ada event yang masuk lagi
	bus.Publish(Event{Table: "transactions", Type: EventInsert})
	_, open := <-sub.C
	assert.False(t, open)

	// idempotent — tidak panic
	require.NotPanics(t, sub.Unsubscribe)
}

func TestPublishNonBlockingWhenBufferFull(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("transactions")
	defer sub.Unsubscribe()

	// isi melewati kapasitas buffer; publish tidak boleh nge-block
	for i := 0; i < subscriberBuffer*2; i++ {
		bus.Publish(Event{Table: "transactions", Type: EventInsert})
	}
	assert.Len(t, sub.C, subscriberBuffer)
}
