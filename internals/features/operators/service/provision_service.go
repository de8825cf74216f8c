package service

import (
	"context"

	"github.com/google/uuid"

	"zakatku_backend/internals/apperr"
	"zakatku_backend/internals/constants"
	"zakatku_backend/internals/features/operators/identity"
	"zakatku_backend/internals/features/operators/model"
)

// DirectoryStore adalah bagian repository yang dibutuhkan provisioning.
type DirectoryStore interface {
	Create(ctx context.Context, op *model.OperatorModel) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.OperatorModel, error)
	List(ctx context.Context) ([]model.OperatorModel, error)
}

// ProvisionService membuat akun operator: identitas dulu di auth provider,
// lalu baris directory dengan role operator + active.
type ProvisionService struct {
	Dir      DirectoryStore
	Identity identity.Provisioner
}

func NewProvisionService(dir DirectoryStore, prov identity.Provisioner) *ProvisionService {
	return &ProvisionService{Dir: dir, Identity: prov}
}

// Provision menjalankan dua langkah pembuatan akun. Kalau identitas sudah
// jadi tapi insert directory gagal, sistemnya setengah-konsisten — itu
// dilaporkan sebagai PartialProvision (bukan retry diam-diam) supaya bisa
// direkonsiliasi belakangan.
func (s *ProvisionService) Provision(ctx context.Context, email, username, password string) (*model.OperatorModel, error) {
	id, err := s.Identity.CreateUser(ctx, email, password)
	if err != nil {
		return nil, apperr.Storage("Gagal membuat identitas di auth provider", err)
	}

	op := &model.OperatorModel{
		ID:       id,
		Email:    email,
		Username: username,
		Role:     constants.RoleOperator,
		Active:   true,
	}
	if err := s.Dir.Create(ctx, op); err != nil {
		return nil, apperr.PartialProvision(
			"Identitas dibuat tapi baris operator gagal disimpan (id: "+id.String()+")", err)
	}
	return op, nil
}

func (s *ProvisionService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.OperatorModel, error) {
	return s.Dir.SetActive(ctx, id, active)
}

func (s *ProvisionService) List(ctx context.Context) ([]model.OperatorModel, error) {
	return s.Dir.List(ctx)
}
