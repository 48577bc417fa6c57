package handler

import (
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// RegisterStatic serves fsys's static/ directory under /static.
func RegisterStatic(app *fiber.App, fsys fs.FS) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(fsys),
		PathPrefix: "static",
		MaxAge:     3600,
	}))
}
