package model

import (
	"time"

	"github.com/google/uuid"

	"zakatku_backend/internals/constants"
)

// OperatorModel merepresentasikan tabel operators (directory petugas).
// ID sama dengan ID identity di auth provider — satu baris per identitas.
type OperatorModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"column:email;size:255;unique;not null" json:"email"`
	Username  string    `gorm:"column:username;size:50;not null" json:"username"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:'operator'" json:"role"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OperatorModel) TableName() string {
	return "operators"
}

func (o *OperatorModel) IsSuperadmin() bool {
	return o.Role == constants.RoleSuperadmin
}
