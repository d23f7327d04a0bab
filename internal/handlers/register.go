package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"registrar/internal/auth"
	"registrar/internal/config"
	"registrar/internal/platform/registration"
)

// RegisterUser registers or retrieves a user after platform
// authentication. Verifies the identity token with a freshness window,
// short-circuits for existing users, otherwise reconciles contact
// channels and creates the record exactly once.
func RegisterUser(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	verifier := c.Locals("verifier").(*auth.Verifier)
	svc := c.Locals("registration").(*registration.Service)

	maxAge := time.Duration(cfg.TokenMaxAgeMinutes) * time.Minute
	token, err := verifier.VerifyRequest(c.Get(fiber.HeaderAuthorization), maxAge)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":  err.Error(),
			"action": "signout_and_redirect",
		})
	}

	// The body is optional; it only supplies the channel the token
	// omits. An unreadable body is treated as an empty one.
	var input registration.ContactInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			input = registration.ContactInput{}
		} else if err := config.Validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}

	outcome, err := svc.Register(c.UserContext(), token, input)
	if err != nil {
		var needs *registration.NeedsMoreInfoError
		switch {
		case errors.As(err, &needs):
			return c.JSON(fiber.Map{
				"requires_additional_verification": true,
				"missing":                          []string{needs.Missing},
				"message":                          missingChannelMessage(needs.Missing),
			})
		case errors.Is(err, registration.ErrUnresolvable):
			return c.Status(fiber.StatusBadRequest).SendString("Unable to determine login method.")
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":                            "Failed to create user account, try again",
				"requires_additional_verification": true,
			})
		}
	}

	return c.JSON(outcome.User)
}

func missingChannelMessage(missing string) string {
	if missing == "phone" {
		return "Valid 10-digit phone number required."
	}
	return "Valid email address required."
}
