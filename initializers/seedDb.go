package initializers

import (
	"encoding/json"
	"log"

	"github.com/bellacucina/bella-cucina-api/models"
	"gorm.io/datatypes"
)

// SeedMenu loads the Bella Cucina catalog when the menu table is empty,
// so a fresh database is immediately usable.
func SeedMenu() {
	var count int64
	if err := DB.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		log.Println("Menu seed check failed:", err)
		return
	}
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Name: "Pasta", Description: "Delicious pasta dishes", DisplayOrder: 1},
		{Name: "Pizza", Description: "Wood-fired Italian pizzas", DisplayOrder: 2},
		{Name: "Main Course", Description: "Hearty main meals", DisplayOrder: 3},
		{Name: "Dessert", Description: "Sweet Italian desserts", DisplayOrder: 4},
	}
	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			log.Println("Category seed failed:", err)
		}
	}

	items := []models.MenuItem{
		{
			ID: "carbonara", Name: "Spaghetti Carbonara", Category: "Pasta", Price: 22,
			Description: "Classic Roman pasta with eggs, pecorino cheese, guanciale, and black pepper",
			Ingredients: ingredients("Spaghetti pasta", "Guanciale", "Fresh eggs", "Pecorino Romano cheese", "Black pepper", "Sea salt"),
			Available:   true,
		},
		{
			ID: "lasagna", Name: "Lasagna Bolognese", Category: "Pasta", Price: 24,
			Description: "Layers of pasta, rich meat sauce, béchamel, and parmesan cheese",
			Ingredients: ingredients("Fresh pasta sheets", "Ground beef and pork", "San Marzano tomatoes", "Béchamel sauce", "Parmigiano-Reggiano", "Red wine"),
			Available:   true,
		},
		{
			ID: "margherita", Name: "Margherita Pizza", Category: "Pizza", Price: 18,
			Description: "Fresh mozzarella, San Marzano tomatoes, basil, and extra virgin olive oil",
			Ingredients: ingredients("Hand-stretched pizza dough", "San Marzano tomatoes", "Fresh mozzarella di bufala", "Fresh basil", "Extra virgin olive oil"),
			Available:   true,
		},
		{
			ID: "quattro", Name: "Quattro Formaggi Pizza", Category: "Pizza", Price: 20,
			Description: "Four-cheese pizza with mozzarella, gorgonzola, fontina, and Parmigiano-Reggiano",
			Ingredients: ingredients("Pizza dough", "Mozzarella", "Gorgonzola", "Fontina", "Parmigiano-Reggiano"),
			Available:   true,
		},
		{
			ID: "risotto", Name: "Mushroom Risotto", Category: "Main Course", Price: 24,
			Description: "Creamy risotto with porcini mushrooms, wine, and truffle oil",
			Ingredients: ingredients("Arborio rice", "Porcini mushrooms", "White wine", "Parmigiano-Reggiano", "White truffle oil"),
			Available:   true,
		},
		{
			ID: "ossobuco", Name: "Osso Buco", Category: "Main Course", Price: 32,
			Description: "Slow-cooked veal shanks with vegetables and gremolata",
			Ingredients: ingredients("Veal shanks", "White wine", "Tomatoes", "Beef stock", "Lemon zest", "Fresh parsley"),
			Available:   true,
		},
		{
			ID: "tiramisu", Name: "Tiramisu", Category: "Dessert", Price: 12,
			Description: "Classic Italian dessert with espresso-soaked ladyfingers and mascarpone",
			Ingredients: ingredients("Ladyfinger cookies", "Mascarpone cheese", "Espresso", "Eggs", "Cocoa powder"),
			Available:   true,
		},
		{
			ID: "pannacotta", Name: "Panna Cotta", Category: "Dessert", Price: 10,
			Description: "Silky-smooth vanilla cream dessert with berry compote",
			Ingredients: ingredients("Heavy cream", "Vanilla bean", "Gelatin", "Sugar", "Mixed berries"),
			Available:   true,
		},
	}
	for _, item := range items {
		if err := DB.Create(&item).Error; err != nil {
			log.Println("Menu item seed failed:", err)
		}
	}

	log.Println("Menu seeded with", len(items), "items.")
}

func ingredients(names ...string) datatypes.JSON {
	data, _ := json.Marshal(names)
	return datatypes.JSON(data)
}
