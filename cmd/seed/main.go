package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"recipehub/internal/database"
	"recipehub/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "recipehub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (join rows first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM shopping_cart_items")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM recipe_ingredients")
	db.Exec("DELETE FROM recipe_tags")
	db.Exec("DELETE FROM recipes")
	db.Exec("DELETE FROM ingredients")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@recipehub.dev",
		Username:     "admin",
		FirstName:    "Site",
		LastName:     "Admin",
		PasswordHash: string(adminHash),
		IsAdmin:      true,
	}
	db.Create(&admin)

	userHash, _ := bcrypt.GenerateFromPassword([]byte("user1234"), bcrypt.DefaultCost)
	alice := domain.User{
		Email:        "alice@example.com",
		Username:     "alice",
		FirstName:    "Alice",
		LastName:     "Baker",
		PasswordHash: string(userHash),
	}
	bob := domain.User{
		Email:        "bob@example.com",
		Username:     "bob",
		FirstName:    "Bob",
		LastName:     "Cook",
		PasswordHash: string(userHash),
	}
	db.Create(&alice)
	db.Create(&bob)

	log.Println("Creating tags...")
	tags := []domain.Tag{
		{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
		{Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
	}
	db.Create(&tags)

	log.Println("Creating ingredient catalog...")
	ingredients := []domain.Ingredient{
		{Name: "Flour", MeasurementUnit: "g"},
		{Name: "Milk", MeasurementUnit: "ml"},
		{Name: "Eggs", MeasurementUnit: "pcs"},
		{Name: "Sugar", MeasurementUnit: "g"},
		{Name: "Butter", MeasurementUnit: "g"},
		{Name: "Salt", MeasurementUnit: "g"},
	}
	db.Create(&ingredients)

	log.Println("Creating recipes...")
	pancakes := domain.Recipe{
		AuthorID:    alice.ID,
		Name:        "Pancakes",
		Text:        "Whisk everything together and fry on a hot pan.",
		CookingTime: 20,
		Tags:        []domain.Tag{tags[0]},
	}
	db.Create(&pancakes)
	db.Create(&[]domain.RecipeIngredient{
		{RecipeID: pancakes.ID, IngredientID: ingredients[0].ID, Amount: 200},
		{RecipeID: pancakes.ID, IngredientID: ingredients[1].ID, Amount: 300},
		{RecipeID: pancakes.ID, IngredientID: ingredients[2].ID, Amount: 2},
	})

	omelette := domain.Recipe{
		AuthorID:    bob.ID,
		Name:        "Omelette",
		Text:        "Beat the eggs with milk, season, cook slowly.",
		CookingTime: 10,
		Tags:        []domain.Tag{tags[0], tags[1]},
	}
	db.Create(&omelette)
	db.Create(&[]domain.RecipeIngredient{
		{RecipeID: omelette.ID, IngredientID: ingredients[2].ID, Amount: 3},
		{RecipeID: omelette.ID, IngredientID: ingredients[1].ID, Amount: 50},
		{RecipeID: omelette.ID, IngredientID: ingredients[5].ID, Amount: 2},
	})

	log.Println("Seed complete.")
	log.Println("admin@recipehub.dev / admin123, alice@example.com / user1234, bob@example.com / user1234")
}
