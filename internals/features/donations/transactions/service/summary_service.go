package service

import (
	"context"
	"log"
	"sync"
	"time"

	"zakatku_backend/internals/features/donations/transactions/model"
	"zakatku_backend/internals/features/donations/transactions/repository"
	"zakatku_backend/internals/realtime"
)

// Aggregator adalah bagian repository yang dibutuhkan engine ringkasan.
type Aggregator interface {
	Aggregate(ctx context.Context, f repository.ListFilter) (model.Summary, error)
}

// SummaryService memelihara ringkasan ledger dengan kebijakan PUSH:
// setiap mutasi yang commit memicu recompute eksak (scan-and-sum di store)
// lalu hasilnya di-fan-out ke subscriber. Konsumen juga bisa pull lewat
// Recompute (mis. saat view mount, atau setelah ketinggalan notifikasi).
//
// Kalau recompute gagal di store, ringkasan last-known-good dipertahankan
// dan ditandai Stale — tidak pernah dikosongkan.
type SummaryService struct {
	Repo Aggregator
	Bus  *realtime.Bus

	mu       sync.RWMutex
	last     model.Summary
	hasLast  bool
	watchers map[int]chan model.Summary
	nextID   int

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewSummaryService(repo Aggregator, bus *realtime.Bus) *SummaryService {
	return &SummaryService{
		Repo:     repo,
		Bus:      bus,
		watchers: make(map[int]chan model.Summary),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start memasang listener perubahan tabel transactions dan recompute awal.
func (s *SummaryService) Start() {
	sub := s.Bus.Subscribe(repository.TableTransactions, realtime.EventAll)
	go func() {
		defer close(s.done)
		defer sub.Unsubscribe()

		// warm-up: hitung sekali saat boot
		if _, err := s.Recompute(context.Background()); err != nil {
			log.Printf("[ERROR] recompute awal gagal: %v", err)
		}

		for {
			select {
			case <-s.stop:
				return
			case _, ok := <-sub.C:
				if !ok {
					return
				}
				// kuras event yang menumpuk — satu recompute cukup
				for drained := false; !drained; {
					select {
					case <-sub.C:
					default:
						drained = true
					}
				}
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if _, err := s.Recompute(ctx); err != nil {
					log.Printf("[ERROR] recompute setelah mutasi gagal: %v", err)
				}
				cancel()
			}
		}
	}()
}

// Stop mematikan listener secara deterministik.
func (s *SummaryService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// Recompute scan-and-sum seluruh ledger dan memperbarui last-known-good.
// Setelah mutasi commit, ringkasan berikutnya memuat mutasi itu tepat sekali
// — penjumlahan dikerjakan store pada snapshot konsisten.
func (s *SummaryService) Recompute(ctx context.Context) (model.Summary, error) {
	sum, err := s.Repo.Aggregate(ctx, repository.ListFilter{})
	if err != nil {
		s.mu.Lock()
		s.last.Stale = true
		stale := s.last
		s.mu.Unlock()
		return stale, err
	}

	s.mu.Lock()
	s.last = sum
	s.hasLast = true
	// fan-out di dalam lock supaya tidak balapan dengan cancel (close channel);
	// send-nya non-blocking jadi tetap murah
	for _, ch := range s.watchers {
		select {
		case ch <- sum:
		default: // subscriber lambat; dia masih bisa pull lewat Current
		}
	}
	s.mu.Unlock()

	return sum, nil
}

// Current mengembalikan ringkasan terakhir (mungkin stale) tanpa menyentuh
// store; ok false kalau belum pernah ada recompute yang berhasil.
func (s *SummaryService) Current() (model.Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.hasLast
}

// Watch mendaftarkan subscriber ringkasan. cancel wajib dipanggil saat view
// pindah supaya tidak ada channel bocor.
func (s *SummaryService) Watch() (<-chan model.Summary, func()) {
	ch := make(chan model.Summary, 1)
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.watchers[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}
