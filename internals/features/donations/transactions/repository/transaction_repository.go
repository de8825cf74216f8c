package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zakatku_backend/internals/apperr"
	"zakatku_backend/internals/features/donations/transactions/model"
	helper "zakatku_backend/internals/helpers"
	"zakatku_backend/internals/realtime"
)

// TableTransactions dipakai sebagai key notifikasi perubahan.
const TableTransactions = "transactions"

// ListFilter: himpunan filter browse. Semua opsional.
// DateTo adalah batas atas EKSKLUSIF (sudah digeser ke awal hari berikutnya
// oleh helper.ParseDateTo) supaya seluruh hari terakhir ikut.
type ListFilter struct {
	OperatorID *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
}

type TransactionRepository struct {
	DB  *gorm.DB
	Bus *realtime.Bus
}

func NewTransactionRepository(db *gorm.DB, bus *realtime.Bus) *TransactionRepository {
	return &TransactionRepository{DB: db, Bus: bus}
}

// publish kirim notifikasi perubahan SETELAH mutasi commit.
func (r *TransactionRepository) publish(t realtime.EventType, id uuid.UUID) {
	if r.Bus != nil {
		r.Bus.Publish(realtime.Event{Table: TableTransactions, Type: t, RecordID: id})
	}
}

// Create memvalidasi, menghitung totals, dan menyimpan atomik.
// operator_id dan created_at di-stamp di sini, immutable setelahnya.
func (r *TransactionRepository) Create(ctx context.Context, t *model.TransactionModel) error {
	if t.DonorName == "" {
		return apperr.Validation("Nama donatur wajib diisi")
	}
	t.ClampNegatives()
	t.ComputeTotals()

	if err := r.DB.WithContext(ctx).Create(t).Error; err != nil {
		return apperr.Storage("Gagal menyimpan transaksi", err)
	}
	r.publish(realtime.EventInsert, t.ID)
	return nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TransactionModel, error) {
	var t model.TransactionModel
	if err := r.DB.WithContext(ctx).
		Preload("Operator").
		First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Transaksi tidak ditemukan")
		}
		return nil, apperr.Storage("Gagal membaca transaksi", err)
	}
	return &t, nil
}

// Update: load → apply → hitung ulang totals → save, dalam satu transaksi DB.
// apply hanya bisa menyentuh field di allow-list DTO; id, operator_id,
// created_at tidak tersentuh (last-write-wins per field).
func (r *TransactionRepository) Update(ctx context.Context, id uuid.UUID, apply func(*model.TransactionModel)) (*model.TransactionModel, error) {
	var updated model.TransactionModel
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return err
		}
		apply(&updated)
		if updated.DonorName == "" {
			return apperr.Validation("Nama donatur wajib diisi")
		}
		updated.ClampNegatives()
		updated.ComputeTotals()
		return tx.Save(&updated).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Transaksi tidak ditemukan")
		}
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, ae
		}
		return nil, apperr.Storage("Gagal memperbarui transaksi", err)
	}
	r.publish(realtime.EventUpdate, id)
	return &updated, nil
}

// Delete menghapus permanen. ID yang tidak ada adalah ERROR (bukan no-op),
// supaya bug di UI ketahuan lebih awal.
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Storage("Gagal menghapus transaksi", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Transaksi tidak ditemukan")
	}
	r.publish(realtime.EventDelete, id)
	return nil
}

func applyFilter(q *gorm.DB, f ListFilter) *gorm.DB {
	if f.OperatorID != nil {
		q = q.Where("operator_id = ?", *f.OperatorID)
	}
	if f.DateFrom != nil {
		q = q.Where("created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("created_at < ?", *f.DateTo)
	}
	return q
}

// List: window hasil + total count. Urut created_at DESC dengan tiebreak id
// DESC supaya paging deterministik; page lewat halaman terakhir ⇒ hasil
// kosong dengan total yang benar.
func (r *TransactionRepository) List(ctx context.Context, f ListFilter, p helper.Params) ([]model.TransactionModel, int64, error) {
	base := applyFilter(r.DB.WithContext(ctx).Model(&model.TransactionModel{}), f)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, apperr.Storage("Gagal menghitung transaksi", err)
	}

	var records []model.TransactionModel
	if err := base.
		Preload("Operator").
		Order("created_at DESC, id DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&records).Error; err != nil {
		return nil, 0, apperr.Storage("Gagal membaca transaksi", err)
	}
	return records, total, nil
}

// Aggregate menjumlah per kategori + grand total dalam satu query.
// Penjumlahan uang BIGINT dan beras NUMERIC dikerjakan store — presisi penuh.
func (r *TransactionRepository) Aggregate(ctx context.Context, f ListFilter) (model.Summary, error) {
	var s model.Summary
	q := applyFilter(r.DB.WithContext(ctx).Model(&model.TransactionModel{}), f)
	err := q.Select(`
		COUNT(*) AS transaction_count,
		COALESCE(SUM(zakat_fitrah_amount), 0) AS zakat_fitrah_amount,
		COALESCE(SUM(zakat_fitrah_rice), 0) AS zakat_fitrah_rice,
		COALESCE(SUM(zakat_maal_amount), 0) AS zakat_maal_amount,
		COALESCE(SUM(infaq_amount), 0) AS infaq_amount,
		COALESCE(SUM(shodaqoh_amount), 0) AS shodaqoh_amount,
		COALESCE(SUM(fidyah_amount), 0) AS fidyah_amount,
		COALESCE(SUM(fidyah_rice), 0) AS fidyah_rice,
		COALESCE(SUM(wakaf_amount), 0) AS wakaf_amount,
		COALESCE(SUM(hibah_amount), 0) AS hibah_amount,
		COALESCE(SUM(total_amount), 0) AS total_amount,
		COALESCE(SUM(total_rice), 0) AS total_rice`).
		Scan(&s).Error
	if err != nil {
		return model.Summary{}, apperr.Storage("Gagal menghitung ringkasan", err)
	}
	s.ComputedAt = time.Now()
	return s, nil
}
