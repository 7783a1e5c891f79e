package initializers

import (
	"log"

	"github.com/bellacucina/bella-cucina-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatal("Database migration failed: ", err)
	}
	log.Println("Database synced successfully.")
}
