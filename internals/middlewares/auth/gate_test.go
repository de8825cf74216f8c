package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zakatku_backend/internals/constants"
	"zakatku_backend/internals/features/operators/model"
)

func op(role string, active bool) *model.OperatorModel {
	return &model.OperatorModel{Role: role, Active: active}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name          string
		authenticated bool
		op            *model.OperatorModel
		lookupFailed  bool
		want          State
	}{
		{"tanpa session", false, nil, false, StateUnauthenticated},
		{"session valid tanpa baris directory", true, nil, false, StateNoDirectoryEntry},
		{"lookup storage error ⇒ fail-closed", true, nil, true, StateNoDirectoryEntry},
		{"operator nonaktif", true, op(constants.RoleOperator, false), false, StateInactiveOperator},
		{"operator aktif", true, op(constants.RoleOperator, true), false, StateActiveOperator},
		{"superadmin aktif", true, op(constants.RoleSuperadmin, true), false, StateSuperAdmin},
		// perilaku sistem asal: superadmin lolos tanpa melihat flag aktif
		{"superadmin nonaktif tetap superadmin", true, op(constants.RoleSuperadmin, false), false, StateSuperAdmin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.authenticated, tc.op, tc.lookupFailed))
		})
	}
}

func TestAuthorizationMatrix(t *testing.T) {
	states := []State{
		StateUnauthenticated,
		StateNoDirectoryEntry,
		StateInactiveOperator,
		StateActiveOperator,
		StateSuperAdmin,
	}
	actions := []Action{
		ActionSubmitDonation,
		ActionBrowseLedger,
		ActionEditDeleteTransaction,
		ActionManageOperators,
	}

	// matriks: hanya kombinasi ini yang allow
	allow := map[State]map[Action]bool{
		StateActiveOperator: {ActionSubmitDonation: true},
		StateSuperAdmin: {
			ActionSubmitDonation:        true,
			ActionBrowseLedger:          true,
			ActionEditDeleteTransaction: true,
			ActionManageOperators:       true,
		},
	}

	for _, s := range states {
		for _, a := range actions {
			want := allow[s][a]
			assert.Equal(t, want, Allowed(s, a), "state=%s action=%d", s, a)
		}
	}
}

func TestIdentityWithoutDirectoryRowDeniedEverything(t *testing.T) {
	state := Resolve(true, nil, false)
	for _, a := range []Action{
		ActionSubmitDonation, ActionBrowseLedger,
		ActionEditDeleteTransaction, ActionManageOperators,
	} {
		assert.False(t, Allowed(state, a))
	}
}

func TestInactiveOperatorDeniedSubmitDespiteValidSession(t *testing.T) {
	state := Resolve(true, op(constants.RoleOperator, false), false)
	assert.False(t, Allowed(state, ActionSubmitDonation))
}

func TestSuperadminManagesOperatorsRegardlessOfActiveFlag(t *testing.T) {
	for _, active := range []bool{true, false} {
		state := Resolve(true, op(constants.RoleSuperadmin, active), false)
		assert.True(t, Allowed(state, ActionManageOperators), "active=%v", active)
	}
}
