package main

import (
	"os"

	"github.com/ects-tech/shop-backend/internal/app"
	config "github.com/ects-tech/shop-backend/internal/cfg"
	"github.com/ects-tech/shop-backend/pkg/logger"
	"github.com/joho/godotenv"
)

//	@title			Shop Backend API
//	@version		1.0
//	@description	Бэкенд интернет-магазина: каталог, заказы, учётные записи

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
