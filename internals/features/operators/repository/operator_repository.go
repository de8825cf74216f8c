package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zakatku_backend/internals/apperr"
	"zakatku_backend/internals/features/operators/model"
)

type OperatorRepository struct {
	DB *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{DB: db}
}

// FindByID mengambil satu baris directory berdasarkan identity ID.
// Tidak ketemu ⇒ apperr.NotFound, error DB ⇒ apperr.Storage.
func (r *OperatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OperatorModel, error) {
	var op model.OperatorModel
	if err := r.DB.WithContext(ctx).First(&op, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Operator tidak ditemukan")
		}
		return nil, apperr.Storage("Gagal membaca directory operator", err)
	}
	return &op, nil
}

func (r *OperatorRepository) Create(ctx context.Context, op *model.OperatorModel) error {
	if err := r.DB.WithContext(ctx).Create(op).Error; err != nil {
		return apperr.Storage("Gagal menyimpan baris operator", err)
	}
	return nil
}

// SetActive toggle flag aktif. Baris tidak ada ⇒ apperr.NotFound.
func (r *OperatorRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.OperatorModel, error) {
	res := r.DB.WithContext(ctx).Model(&model.OperatorModel{}).
		Where("id = ?", id).
		Update("active", active)
	if res.Error != nil {
		return nil, apperr.Storage("Gagal mengubah status operator", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Operator tidak ditemukan")
	}
	return r.FindByID(ctx, id)
}

// List mengembalikan seluruh directory, terbaru dulu.
func (r *OperatorRepository) List(ctx context.Context) ([]model.OperatorModel, error) {
	var ops []model.OperatorModel
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&ops).Error; err != nil {
		return nil, apperr.Storage("Gagal membaca daftar operator", err)
	}
	return ops, nil
}
