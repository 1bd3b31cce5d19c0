package main

import (
	"github.com/gin-gonic/gin"

	"github.com/GDG-Vishnu/community-platform/config"
	"github.com/GDG-Vishnu/community-platform/db"
	"github.com/GDG-Vishnu/community-platform/logx"
	"github.com/GDG-Vishnu/community-platform/middleware"
	"github.com/GDG-Vishnu/community-platform/routes"
	"github.com/GDG-Vishnu/community-platform/storage"
)

// @title Community Platform API
// @version 1.0
// @description Backend for the community website and admin form builder.
// @BasePath /
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	store, err := storage.NewMinioStore()
	if err != nil {
		logx.Fatal("Failed to connect to object storage:", err)
	}

	router := gin.Default()
	routes.RegisterRoutes(router, store)

	logx.Infof("listening on :%s", config.ServerPort)
	if err := router.Run(":" + config.ServerPort); err != nil {
		logx.Fatal("Server stopped:", err)
	}
}
