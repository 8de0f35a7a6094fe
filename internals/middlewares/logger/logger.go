package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware untuk mencatat semua request (access log)
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kuala_Lumpur",
		Format:     "[${time}] ${ip} ${locals:reqid} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
