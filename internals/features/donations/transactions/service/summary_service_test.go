package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zakatku_backend/internals/apperr"
	"zakatku_backend/internals/features/donations/transactions/model"
	"zakatku_backend/internals/features/donations/transactions/repository"
	"zakatku_backend/internals/realtime"
)

// fakeLedger: pengganti store in-memory untuk menguji engine tanpa DB.
type fakeLedger struct {
	mu   sync.Mutex
	rows []model.TransactionModel
	fail error
}

func (f *fakeLedger) Aggregate(ctx context.Context, _ repository.ListFilter) (model.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return model.Summary{}, f.fail
	}
	var s model.Summary
	for _, r := range f.rows {
		s.TransactionCount++
		s.ZakatFitrahAmount += r.ZakatFitrahAmount
		s.ZakatFitrahRice += r.ZakatFitrahRice
		s.ZakatMaalAmount += r.ZakatMaalAmount
		s.InfaqAmount += r.InfaqAmount
		s.ShodaqohAmount += r.ShodaqohAmount
		s.FidyahAmount += r.FidyahAmount
		s.FidyahRice += r.FidyahRice
		s.WakafAmount += r.WakafAmount
		s.HibahAmount += r.HibahAmount
		s.TotalAmount += r.TotalAmount
		s.TotalRice += r.TotalRice
	}
	s.ComputedAt = time.Now()
	return s, nil
}

func (f *fakeLedger) add(rows ...model.TransactionModel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range rows {
		rows[i].ComputeTotals()
		f.rows = append(f.rows, rows[i])
	}
}

func (f *fakeLedger) removeLast() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = f.rows[:len(f.rows)-1]
}

func (f *fakeLedger) setFail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = err
}

func TestRecomputeMatchesArithmeticSum(t *testing.T) {
	ledger := &fakeLedger{}
	ledger.add(
		model.TransactionModel{InfaqAmount: 50000, ZakatFitrahRice: model.KgFromFloat(2.5)},
		model.TransactionModel{ZakatMaalAmount: 1000000, FidyahRice: model.KgFromFloat(1.25)},
		model.TransactionModel{InfaqAmount: 25000, WakafAmount: 100000},
	)
	svc := NewSummaryService(ledger, realtime.NewBus())

	sum, err := svc.Recompute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), sum.TransactionCount)
	assert.Equal(t, int64(75000), sum.InfaqAmount)
	assert.Equal(t, int64(1000000), sum.ZakatMaalAmount)
	assert.Equal(t, int64(100000), sum.WakafAmount)
	assert.Equal(t, int64(1175000), sum.TotalAmount)
	assert.Equal(t, model.KgFromFloat(3.75), sum.TotalRice)
	assert.False(t, sum.Stale)
}

func TestInsertThenDeleteReturnsToBaseline(t *testing.T) {
	ledger := &fakeLedger{}
	ledger.add(model.TransactionModel{ZakatMaalAmount: 200000})
	svc := NewSummaryService(ledger, realtime.NewBus())

	baseline, err := svc.Recompute(context.Background())
	require.NoError(t, err)

	ledger.add(model.TransactionModel{InfaqAmount: 50000})
	after, err := svc.Recompute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, baseline.TotalAmount+50000, after.TotalAmount)

	ledger.removeLast()
	back, err := svc.Recompute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, baseline.TotalAmount, back.TotalAmount)
	assert.Equal(t, baseline.InfaqAmount, back.InfaqAmount)
	assert.Equal(t, baseline.TransactionCount, back.TransactionCount)
}

func TestStorageErrorKeepsLastKnownGood(t *testing.T) {
	ledger := &fakeLedger{}
	ledger.add(model.TransactionModel{InfaqAmount: 50000})
	svc := NewSummaryService(ledger, realtime.NewBus())

	good, err := svc.Recompute(context.Background())
	require.NoError(t, err)

	ledger.setFail(apperr.Storage("store down", errors.New("conn refused")))
	stale, err := svc.Recompute(context.Background())
	require.Error(t, err)

	// last-known-good dipertahankan + ditandai stale, tidak dikosongkan
	assert.Equal(t, good.TotalAmount, stale.TotalAmount)
	assert.True(t, stale.Stale)

	cur, ok := svc.Current()
	assert.True(t, ok)
	assert.Equal(t, good.TotalAmount, cur.TotalAmount)
	assert.True(t, cur.Stale)
}

func TestPushPolicyRecomputesOnMutationEvent(t *testing.T) {
	ledger := &fakeLedger{}
	bus := realtime.NewBus()
	svc := NewSummaryService(ledger, bus)
	svc.Start()
	defer svc.Stop()

	watch, cancel := svc.Watch()
	defer cancel()

	// mutasi commit ⇒ publish ⇒ engine recompute ⇒ subscriber terima ringkasan
	ledger.add(model.TransactionModel{InfaqAmount: 50000})
	bus.Publish(realtime.Event{
		Table:    repository.TableTransactions,
		Type:     realtime.EventInsert,
		RecordID: uuid.New(),
	})

	deadline := time.After(2 * time.Second)
	for {
		select {
		case sum := <-watch:
			if sum.TotalAmount == 50000 {
				return // push sampai, nilai eksak
			}
		case <-deadline:
			t.Fatal("tidak menerima ringkasan hasil push")
		}
	}
}

func TestWatchCancelClosesChannel(t *testing.T) {
	svc := NewSummaryService(&fakeLedger{}, realtime.NewBus())
	watch, cancel := svc.Watch()

	cancel()
	_, open := <-watch
	assert.False(t, open)
	require.NotPanics(t, cancel) // idempotent
}
