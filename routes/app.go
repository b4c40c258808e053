package routes

import (
	"log"
	"path/filepath"
	"time"

	config "github.com/anjiri1684/faq_board/configs"
	"github.com/anjiri1684/faq_board/handlers"
	"github.com/anjiri1684/faq_board/middleware"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Deps struct {
	Questions *handlers.QuestionHandler
	Admin     *handlers.AdminHandler
	Board     *handlers.BoardHandler
	Gate      *middleware.AdminGate
}

func NewApp(cfg config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "FAQ Board",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.AdminPasswordHeader,
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		MaxAge:       86400,
	}))
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:reqid}\n",
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	PublicRoutes(app, deps.Questions)
	AdminRoutes(app, deps.Admin, deps.Gate)
	if deps.Board != nil {
		BoardRoutes(app, deps.Board)
	}

	if cfg.StaticDir != "" {
		app.Get("/admin", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(cfg.StaticDir, "admin.html"))
		})
		app.Static("/", cfg.StaticDir)
	}

	return app
}
