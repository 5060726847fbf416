package main

import (
	"gin-marketplace/infra"
	"gin-marketplace/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		panic("Failed to migrate database")
	}
}
