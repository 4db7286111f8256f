package main

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealsnap/backend/config"
	"github.com/mealsnap/backend/internal/database"
	"github.com/mealsnap/backend/internal/models"
)

// seedFoods is a starter catalog of common foods with nutrients per 100g.
var seedFoods = []models.FoodCatalogEntry{
	{Name: "Chicken Breast", CaloriesPer100: 165, ProteinPer100: 31, CarbsPer100: 0, FatPer100: 3.6, FiberPer100: 0, Category: "protein"},
	{Name: "Salmon", CaloriesPer100: 208, ProteinPer100: 20.4, CarbsPer100: 0, FatPer100: 13, FiberPer100: 0, Category: "protein"},
	{Name: "Ground Beef", CaloriesPer100: 250, ProteinPer100: 26, CarbsPer100: 0, FatPer100: 15, FiberPer100: 0, Category: "protein"},
	{Name: "Egg", CaloriesPer100: 155, ProteinPer100: 13, CarbsPer100: 1.1, FatPer100: 11, FiberPer100: 0, Category: "protein"},
	{Name: "Tofu", CaloriesPer100: 76, ProteinPer100: 8, CarbsPer100: 1.9, FatPer100: 4.8, FiberPer100: 0.3, Category: "protein"},
	{Name: "White Rice", CaloriesPer100: 130, ProteinPer100: 2.7, CarbsPer100: 28, FatPer100: 0.3, FiberPer100: 0.4, Category: "grain"},
	{Name: "Brown Rice", CaloriesPer100: 112, ProteinPer100: 2.6, CarbsPer100: 23.8, FatPer100: 0.9, FiberPer100: 1.8, Category: "grain"},
	{Name: "Pasta", CaloriesPer100: 158, ProteinPer100: 5.8, CarbsPer100: 31, FatPer100: 0.9, FiberPer100: 1.8, Category: "grain"},
	{Name: "Bread", CaloriesPer100: 265, ProteinPer100: 9, CarbsPer100: 49, FatPer100: 3.2, FiberPer100: 2.7, Category: "grain"},
	{Name: "Oatmeal", CaloriesPer100: 389, ProteinPer100: 16.9, CarbsPer100: 66.3, FatPer100: 6.9, FiberPer100: 10.6, Category: "grain"},
	{Name: "Quinoa", CaloriesPer100: 120, ProteinPer100: 4.4, CarbsPer100: 21.3, FatPer100: 1.9, FiberPer100: 2.8, Category: "grain"},
	{Name: "Potato", CaloriesPer100: 77, ProteinPer100: 2, CarbsPer100: 17, FatPer100: 0.1, FiberPer100: 2.2, Category: "vegetable"},
	{Name: "Sweet Potato", CaloriesPer100: 86, ProteinPer100: 1.6, CarbsPer100: 20.1, FatPer100: 0.1, FiberPer100: 3, Category: "vegetable"},
	{Name: "Broccoli", CaloriesPer100: 34, ProteinPer100: 2.8, CarbsPer100: 6.6, FatPer100: 0.4, FiberPer100: 2.6, Category: "vegetable"},
	{Name: "Spinach", CaloriesPer100: 23, ProteinPer100: 2.9, CarbsPer100: 3.6, FatPer100: 0.4, FiberPer100: 2.2, Category: "vegetable"},
	{Name: "Carrot", CaloriesPer100: 41, ProteinPer100: 0.9, CarbsPer100: 9.6, FatPer100: 0.2, FiberPer100: 2.8, Category: "vegetable"},
	{Name: "Tomato", CaloriesPer100: 18, ProteinPer100: 0.9, CarbsPer100: 3.9, FatPer100: 0.2, FiberPer100: 1.2, Category: "vegetable"},
	{Name: "Salad Greens", CaloriesPer100: 15, ProteinPer100: 1.4, CarbsPer100: 2.9, FatPer100: 0.2, FiberPer100: 1.3, Category: "vegetable"},
	{Name: "Banana", CaloriesPer100: 89, ProteinPer100: 1.1, CarbsPer100: 22.8, FatPer100: 0.3, FiberPer100: 2.6, Category: "fruit"},
	{Name: "Apple", CaloriesPer100: 52, ProteinPer100: 0.3, CarbsPer100: 13.8, FatPer100: 0.2, FiberPer100: 2.4, Category: "fruit"},
	{Name: "Orange", CaloriesPer100: 47, ProteinPer100: 0.9, CarbsPer100: 11.8, FatPer100: 0.1, FiberPer100: 2.4, Category: "fruit"},
	{Name: "Avocado", CaloriesPer100: 160, ProteinPer100: 2, CarbsPer100: 8.5, FatPer100: 14.7, FiberPer100: 6.7, Category: "fruit"},
	{Name: "Greek Yogurt", CaloriesPer100: 59, ProteinPer100: 10.2, CarbsPer100: 3.6, FatPer100: 0.4, FiberPer100: 0, Category: "dairy"},
	{Name: "Cheese", CaloriesPer100: 402, ProteinPer100: 25, CarbsPer100: 1.3, FatPer100: 33, FiberPer100: 0, Category: "dairy"},
	{Name: "Milk", CaloriesPer100: 61, ProteinPer100: 3.2, CarbsPer100: 4.8, FatPer100: 3.3, FiberPer100: 0, Category: "dairy"},
	{Name: "Almonds", CaloriesPer100: 579, ProteinPer100: 21.2, CarbsPer100: 21.6, FatPer100: 49.9, FiberPer100: 12.5, Category: "nuts"},
	{Name: "Peanut Butter", CaloriesPer100: 588, ProteinPer100: 25.1, CarbsPer100: 20, FatPer100: 50.4, FiberPer100: 6, Category: "nuts"},
	{Name: "Pizza", CaloriesPer100: 266, ProteinPer100: 11, CarbsPer100: 33, FatPer100: 10, FiberPer100: 2.3, Category: "prepared"},
	{Name: "Hamburger", CaloriesPer100: 295, ProteinPer100: 17, CarbsPer100: 24, FatPer100: 14, FiberPer100: 1.1, Category: "prepared"},
	{Name: "French Fries", CaloriesPer100: 312, ProteinPer100: 3.4, CarbsPer100: 41, FatPer100: 15, FiberPer100: 3.8, Category: "prepared"},
	{Name: "Sushi Roll", CaloriesPer100: 150, ProteinPer100: 5.8, CarbsPer100: 28, FatPer100: 1.2, FiberPer100: 1, Category: "prepared"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeded, skipped := 0, 0
	for _, food := range seedFoods {
		var existing models.FoodCatalogEntry
		err := db.Where("name = ?", food.Name).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check catalog for %q: %v", food.Name, err)
		}

		food.ID = uuid.New()
		if err := db.Create(&food).Error; err != nil {
			log.Fatalf("Failed to seed %q: %v", food.Name, err)
		}
		seeded++
	}

	log.Printf("Catalog seeding complete: %d created, %d already present", seeded, skipped)
}
