package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this package owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&bookingModel{},
		&testimonialModel{},
		&galleryItemModel{},
		&mediaItemModel{},
		&businessConfigModel{},
	)
}
