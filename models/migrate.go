package models

import "gorm.io/gorm"

// Migrate creates or updates every table, parents before dependents so the
// foreign key constraints resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Neighborhood{},
		&Address{},
		&Customer{},
		&CustomerAddress{},
		&Item{},
		&Motoboy{},
		&CustomerOrder{},
		&OrderDetails{},
	)
}
