package operators

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zakatku_backend/internals/configs"
	"zakatku_backend/internals/constants"
	"zakatku_backend/internals/features/operators/model"
)

// SeedSuperadmin memastikan baris superadmin pertama ada di directory.
// Identitasnya sendiri dibuat manual di auth provider; di sini hanya baris
// directory-nya (SEED_SUPERADMIN_ID = ID identitas tersebut). Idempotent.
func SeedSuperadmin(db *gorm.DB) {
	idRaw := configs.GetEnv("SEED_SUPERADMIN_ID")
	email := configs.GetEnv("SEED_SUPERADMIN_EMAIL")
	username := configs.GetEnv("SEED_SUPERADMIN_USERNAME", "superadmin")

	if idRaw == "" || email == "" {
		log.Println("ℹ️ SEED_SUPERADMIN_ID/EMAIL tidak diset, seed superadmin dilewati.")
		return
	}
	id, err := uuid.Parse(idRaw)
	if err != nil {
		log.Printf("❌ SEED_SUPERADMIN_ID bukan UUID valid: %v", err)
		return
	}

	var existing model.OperatorModel
	if err := db.Where("id = ?", id).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Superadmin '%s' sudah ada, dilewati.", email)
		return
	}

	op := model.OperatorModel{
		ID:       id,
		Email:    email,
		Username: username,
		Role:     constants.RoleSuperadmin,
		Active:   true,
	}
	if err := db.Create(&op).Error; err != nil {
		log.Printf("❌ Gagal seed superadmin '%s': %v", email, err)
		return
	}
	log.Printf("✅ Superadmin '%s' berhasil di-seed.", email)
}
