package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"speaky-backend/cache"
	"speaky-backend/config/common"
	"speaky-backend/handler"
	"speaky-backend/repository"
	"speaky-backend/routes"
	"speaky-backend/storage"
	"speaky-backend/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*common.Config
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := NewLogger()
	appLog := NewAppLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := validator.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	App(&AppConfig{
		App:      app,
		Validate: newValidator,
		Logger:   log,
		DBConfig: newDB,
		Config:   newConfig,
	})

	_, listenAddr := newConfig.GetAppConfig()
	if err := app.Listen(listenAddr); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()
	newSocialRepository := repository.NewSocialRepository()
	newChatRepository := repository.NewChatRepository()

	userCache := cache.NewUserCache(aC.Config, aC.Logger)

	uploader, err := storage.NewS3Uploader(aC.Config, aC.Logger)
	if err != nil {
		aC.Logger.WithError(err).Fatal("failed to configure object storage")
	}

	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.Logger, userCache)
	newSocialUsecase := usecase.NewSocialUsecase(newSocialRepository, newUserRepository, newChatRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newChatUsecase := usecase.NewChatUsecase(newChatRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newUploadUsecase := usecase.NewUploadUsecase(uploader, aC.Validate, aC.Logger)

	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newSocialHandler := handler.NewSocialHandler(newSocialUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newChatUsecase, aC.Logger)
	newUploadHandler := handler.NewUploadHandler(newUploadUsecase, aC.Logger)

	route := routes.ConfigRoute{
		App:           aC.App,
		UserHandler:   newUserHandler,
		SocialHandler: newSocialHandler,
		ChatHandler:   newChatHandler,
		UploadHandler: newUploadHandler,
	}
	route.GetRoute()
}
