package http

import (
	pkg "github.com/canarylab/chirper/pkg/internal"
	"github.com/canarylab/chirper/pkg/internal/http/pages"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	jsoniter "github.com/json-iterator/go"
)

func NewServer(p *pages.Pages, viewsDir, staticDir string) *fiber.App {
	views := html.New(viewsDir, ".html")

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Chirper",
		AppName:               "Chirper v" + pkg.AppVersion,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		Views:                 views,
	})

	app.Use(logger.New(logger.Config{
		Format: "${status} | ${latency} | ${method} ${path}\n",
	}))

	app.Static("/static", staticDir)

	p.Map(app)

	return app
}
