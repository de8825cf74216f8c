package auth

import (
	"zakatku_backend/internals/features/operators/model"
)

// State hasil klasifikasi identitas. Dihitung ulang setiap request dari
// (session valid) × (baris directory) × (flag aktif) × (role) — tidak pernah
// disimpan.
type State int

const (
	StateUnauthenticated State = iota
	StateNoDirectoryEntry
	StateInactiveOperator
	StateActiveOperator
	StateSuperAdmin
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateNoDirectoryEntry:
		return "no_directory_entry"
	case StateInactiveOperator:
		return "inactive_operator"
	case StateActiveOperator:
		return "active_operator"
	case StateSuperAdmin:
		return "superadmin"
	}
	return "unknown"
}

// Resolve menurunkan state dari hasil lookup directory.
// lookupFailed true berarti storage-nya sendiri error — fail-closed, jangan
// pernah dianggap allow; kita turunkan ke NoDirectoryEntry (deny semua).
//
// Catatan produk (belum di-sign-off): superadmin lolos TANPA melihat flag
// aktif, mengikuti perilaku sistem asal.
func Resolve(authenticated bool, op *model.OperatorModel, lookupFailed bool) State {
	if !authenticated {
		return StateUnauthenticated
	}
	if lookupFailed || op == nil {
		return StateNoDirectoryEntry
	}
	if op.IsSuperadmin() {
		return StateSuperAdmin
	}
	if !op.Active {
		return StateInactiveOperator
	}
	return StateActiveOperator
}

// Action adalah operasi yang dijaga gate.
type Action int

const (
	ActionSubmitDonation Action = iota
	ActionBrowseLedger
	ActionEditDeleteTransaction
	ActionManageOperators
)

// Allowed mengimplementasikan matriks otorisasi. Semua yang tidak
// eksplisit allow berarti deny.
func Allowed(s State, a Action) bool {
	switch a {
	case ActionSubmitDonation:
		return s == StateActiveOperator || s == StateSuperAdmin
	case ActionBrowseLedger, ActionEditDeleteTransaction, ActionManageOperators:
		return s == StateSuperAdmin
	}
	return false
}
