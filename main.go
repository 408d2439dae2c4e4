// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"

	"skbudget_backend/internals/configs"
	database "skbudget_backend/internals/databases"
	helper "skbudget_backend/internals/helpers"
	"skbudget_backend/internals/middlewares"
	routes "skbudget_backend/internals/route"
	"skbudget_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	// amounts render as plain numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	database.Migrate()

	if configs.GetEnv("SEED", "false") == "true" {
		seeds.Run(database.DB)
	}

	app := fiber.New(fiber.Config{
		AppName:     "SK Budget Backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})

	app.Use(requestid.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	routes.BaseRoutes(app, database.DB)
	routes.SetupRoutes(app, database.DB)

	// graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("🚀 listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ server stopped: %v", err)
	}
}
