package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rjsdud322727/smart-store/simulation"
)

// RecentPurchases returns the simulator's recent purchase feed
func RecentPurchases(recent *simulation.RecentBuffer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(recent.List())
	}
}

// TriggerPurchase runs one purchase simulation pass on demand
func TriggerPurchase(sim *simulation.Simulator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		purchased, err := sim.Run()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "purchase simulation failed",
			})
		}

		return c.JSON(fiber.Map{
			"message":   "purchase simulation finished",
			"purchased": purchased,
		})
	}
}
