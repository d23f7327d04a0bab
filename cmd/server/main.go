package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"registrar/internal/auth"
	"registrar/internal/config"
	"registrar/internal/database"
	"registrar/internal/handlers"
	"registrar/internal/mail"
	"registrar/internal/platform/registration"
	"registrar/internal/platform/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	verifier := auth.NewVerifier(cfg.TokenSecret)

	registrationService := registration.NewService(user.NewService(db))
	if cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" && cfg.WelcomeMailFrom != "" {
		mailer := mail.NewMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase)
		registrationService = registrationService.WithWelcomeMail(mailer, cfg.WelcomeMailFrom)
	}

	app := fiber.New()

	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(healthcheck.New())

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		c.Locals("verifier", verifier)
		c.Locals("registration", registrationService)
		return c.Next()
	})

	for _, path := range []string{"/register_user", "/api/register_user"} {
		app.Get(path, handlers.RegisterUser)
		app.Post(path, handlers.RegisterUser)
	}

	for _, path := range []string{"/on_request_example", "/api/on_request_example"} {
		app.Get(path, handlers.OnRequestExample)
		app.Post(path, handlers.OnRequestExample)
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).
			SendString(fmt.Sprintf("No route found for %s with method %s", c.Path(), c.Method()))
	})

	log.Fatal(app.Listen(fmt.Sprintf(":%d", cfg.ServerPort)))
}
