package seeds

import (
	"gorm.io/gorm"

	operators "zakatku_backend/internals/seeds/operators"
)

func RunAllSeeds(db *gorm.DB) {
	//* Directory
	operators.SeedSuperadmin(db)
}
