package docs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"pos-backend/internal/config"
)

const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <title>POS Backend API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({ url: "/docs/openapi.yaml", dom_id: "#swagger-ui" });
    };
  </script>
</body>
</html>`

// Register mounts the swagger UI and the raw spec under /docs, gated by
// basic auth. An empty DOCS_PASSWORD means nobody gets in.
func Register(app *fiber.App, cfg *config.Config) {
	grp := app.Group("/docs", basicauth.New(basicauth.Config{
		Authorizer: func(user, pass string) bool {
			return cfg.DocsPassword != "" && user == cfg.DocsUser && pass == cfg.DocsPassword
		},
	}))

	grp.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(swaggerPage)
	})
	grp.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		return c.SendFile(cfg.OpenAPIPath)
	})
}
