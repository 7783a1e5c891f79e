package initializers

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectToDB() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "bella_cucina.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Connected to SQLite database at", dbPath)
}
