package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zakatku_backend/internals/apperr"
	"zakatku_backend/internals/constants"
	"zakatku_backend/internals/features/operators/model"
)

type fakeProvisioner struct {
	id   uuid.UUID
	fail error
}

func (f *fakeProvisioner) CreateUser(ctx context.Context, email, password string) (uuid.UUID, error) {
	if f.fail != nil {
		return uuid.Nil, f.fail
	}
	return f.id, nil
}

type fakeDirectory struct {
	rows       map[uuid.UUID]*model.OperatorModel
	createFail error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{rows: make(map[uuid.UUID]*model.OperatorModel)}
}

func (f *fakeDirectory) Create(ctx context.Context, op *model.OperatorModel) error {
	if f.createFail != nil {
		return apperr.Storage("Gagal menyimpan baris operator", f.createFail)
	}
	op.CreatedAt = time.Now()
	f.rows[op.ID] = op
	return nil
}

func (f *fakeDirectory) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.OperatorModel, error) {
	op, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Operator tidak ditemukan")
	}
	op.Active = active
	return op, nil
}

func (f *fakeDirectory) List(ctx context.Context) ([]model.OperatorModel, error) {
	out := make([]model.OperatorModel, 0, len(f.rows))
	for _, op := range f.rows {
		out = append(out, *op)
	}
	return out, nil
}

func TestProvisionHappyPath(t *testing.T) {
	id := uuid.New()
	dir := newFakeDirectory()
	svc := NewProvisionService(dir, &fakeProvisioner{id: id})

	op, err := svc.Provision(context.Background(), "petugas@pos.id", "petugas1", "rahasia123")
	require.NoError(t, err)

	assert.Equal(t, id, op.ID) // ID directory = ID identitas
	assert.Equal(t, constants.RoleOperator, op.Role)
	assert.True(t, op.Active)
	assert.Contains(t, dir.rows, id)
}

func TestProvisionIdentityFailure(t *testing.T) {
	dir := newFakeDirectory()
	svc := NewProvisionService(dir, &fakeProvisioner{fail: errors.New("provider 500")})

	_, err := svc.Provision(context.Background(), "x@y.id", "x", "rahasia123")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindStorage))
	assert.Empty(t, dir.rows) // tidak ada baris setengah jadi di directory
}

func TestProvisionPartialFailureIsDistinct(t *testing.T) {
	id := uuid.New()
	dir := newFakeDirectory()
	dir.createFail = errors.New("unique violation")
	svc := NewProvisionService(dir, &fakeProvisioner{id: id})

	_, err := svc.Provision(context.Background(), "x@y.id", "x", "rahasia123")
	require.Error(t, err)

	// identitas sudah jadi, baris directory tidak — harus PartialProvision,
	// bukan storage biasa, dan menyebut ID-nya untuk rekonsiliasi
	assert.True(t, apperr.Is(err, apperr.KindPartialProvision))
	assert.Contains(t, err.Error(), id.String())
}

func TestSetActiveNotFound(t *testing.T) {
	svc := NewProvisionService(newFakeDirectory(), &fakeProvisioner{})
	_, err := svc.SetActive(context.Background(), uuid.New(), false)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestSetActiveToggles(t *testing.T) {
	id := uuid.New()
	dir := newFakeDirectory()
	dir.rows[id] = &model.OperatorModel{ID: id, Active: true, Role: constants.RoleOperator}
	svc := NewProvisionService(dir, &fakeProvisioner{})

	op, err := svc.SetActive(context.Background(), id, false)
	require.NoError(t, err)
	assert.False(t, op.Active)

	op, err = svc.SetActive(context.Background(), id, true)
	require.NoError(t, err)
	assert.True(t, op.Active)
}
