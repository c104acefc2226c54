package config

import (
	"github.com/gofiber/fiber/v2"

	"speaky-backend/config/common"
)

func NewFiber(cfg *common.Config) *fiber.App {
	appName, _ := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
	})
}
