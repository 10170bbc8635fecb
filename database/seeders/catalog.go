package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vitoraqdev/SalesOrderManagement/configs/logconfig"
	"github.com/vitoraqdev/SalesOrderManagement/models"
)

// SeedNeighborhoods loads a starter set of neighborhoods with their default
// delivery fees. Existing names are left alone so reruns are harmless.
func SeedNeighborhoods(db *gorm.DB) error {
	neighborhoods := []models.Neighborhood{
		{Name: "Centro", DeliveryFee: decimal.NewFromFloat(5.00)},
		{Name: "Jardim América", DeliveryFee: decimal.NewFromFloat(7.50)},
		{Name: "Vila Nova", DeliveryFee: decimal.NewFromFloat(6.00)},
	}

	logconfig.SLog.Info("Seeding neighborhoods...")

	for _, n := range neighborhoods {
		err := db.Where(models.Neighborhood{Name: n.Name}).
			FirstOrCreate(&n).Error
		if err != nil {
			logconfig.SLog.Error("Failed seeding neighborhood "+n.Name, err)
			return err
		}
	}

	logconfig.SLog.Info("Neighborhood seeding done.")
	return nil
}

// SeedItems loads a starter catalog.
func SeedItems(db *gorm.DB) error {
	items := []models.Item{
		{Name: "Marmita P", Price: decimal.NewFromFloat(15.00), Description: "Small lunch box", IsActive: true},
		{Name: "Marmita M", Price: decimal.NewFromFloat(18.00), Description: "Medium lunch box", IsActive: true},
		{Name: "Marmita G", Price: decimal.NewFromFloat(22.00), Description: "Large lunch box", IsActive: true},
		{Name: "Refrigerante lata", Price: decimal.NewFromFloat(6.00), Description: "Soda can 350ml", IsActive: true},
	}

	logconfig.SLog.Info("Seeding catalog items...")

	for _, item := range items {
		err := db.Where(models.Item{Name: item.Name}).
			FirstOrCreate(&item).Error
		if err != nil {
			logconfig.SLog.Error("Failed seeding item "+item.Name, err)
			return err
		}
	}

	logconfig.SLog.Info("Catalog seeding done.")
	return nil
}
