package domain

import "time"

type Tag struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:256;not null;uniqueIndex"`
	Color string `json:"color" gorm:"size:16"`
	Slug  string `json:"slug" gorm:"size:50;not null;uniqueIndex"`
}

func (Tag) TableName() string { return "tags" }

// Ingredient is a catalog entry. The measurement unit is a free-text label
// ("g", "ml"); units are never converted between ingredients.
type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:100;not null;uniqueIndex"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:50;not null"`
}

func (Ingredient) TableName() string { return "ingredients" }

type Recipe struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	AuthorID    int64     `json:"author_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Text        string    `json:"text" gorm:"type:text"`
	Image       string    `json:"image" gorm:"size:500"`
	CookingTime int       `json:"cooking_time" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	Author      *User              `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Tags        []Tag              `json:"tags,omitempty" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient binds one ingredient with its amount to a recipe.
// Rows are owned by the recipe and go away with it.
type RecipeIngredient struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	RecipeID     int64 `json:"recipe_id" gorm:"not null;index"`
	IngredientID int64 `json:"ingredient_id" gorm:"not null;index"`
	Amount       int   `json:"amount" gorm:"not null"`

	Ingredient *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }
