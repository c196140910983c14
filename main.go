package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/joveey/sistem-bk-online/configs"
	"github.com/joveey/sistem-bk-online/middlewares"
	"github.com/joveey/sistem-bk-online/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedCounselor(); err != nil {
		log.Fatalf("seed counselor failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, cfg)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
