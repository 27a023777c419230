package main

import (
	"log"

	"nutriassist/config"
	"nutriassist/routes"
	"nutriassist/services"
)

func main() {
	config.LoadEnv()
	config.InitDB()

	if err := services.SeedDefaultPlans(config.DB); err != nil {
		log.Printf("Error seeding default plans: %v", err)
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
