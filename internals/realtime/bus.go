// Package realtime menyediakan notifikasi perubahan tabel in-process.
// Repository mem-publish event SETELAH mutasi commit; konsumen subscribe per
// tabel + jenis event (wildcard didukung) dan wajib Unsubscribe saat selesai
// supaya tidak ada listener bocor antar transisi view.
package realtime

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
	EventAll    EventType = "*"
)

type Event struct {
	Table string
	Type  EventType
	// RecordID mengacu ke baris yang berubah (uuid.Nil kalau tidak relevan)
	RecordID uuid.UUID
	At       time.Time
}

// ukuran buffer per subscriber; publish tidak pernah blocking —
// subscriber yang ketinggalan kehilangan event dan harus re-poll (pull)
const subscriberBuffer = 16

type Subscription struct {
	C     <-chan Event
	ch    chan Event
	bus   *Bus
	id    int
	table string
	types map[EventType]struct{}
	once  sync.Once
}

// Unsubscribe melepas subscription secara deterministik; channel ditutup
// dan tidak ada event baru yang masuk. Aman dipanggil berulang.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.remove(s.id)
		close(s.ch)
	})
}

func (s *Subscription) matches(ev Event) bool {
	if s.table != "*" && s.table != ev.Table {
		return false
	}
	if _, ok := s.types[EventAll]; ok {
		return true
	}
	_, ok := s.types[ev.Type]
	return ok
}

type Bus struct {
	mu     sync.RWMutex
	subs   map[int]*Subscription
	nextID int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]*Subscription)}
}

// Subscribe mendaftarkan listener untuk satu tabel. Tanpa types, semua jenis
// event diterima.
func (b *Bus) Subscribe(table string, types ...EventType) *Subscription {
	if len(types) == 0 {
		types = []EventType{EventAll}
	}
	set := make(map[EventType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}

	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := &Subscription{
		C:     ch,
		ch:    ch,
		bus:   b,
		id:    b.nextID,
		table: table,
		types: set,
	}
	b.subs[sub.id] = sub
	return sub
}

// Publish mengirim event ke semua subscriber yang cocok, non-blocking.
func (b *Bus) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if !sub.matches(ev) {
			continue
		}
		select {
		case sub.ch <- ev:
		default: // buffer penuh, subscriber harus re-poll
		}
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
}
