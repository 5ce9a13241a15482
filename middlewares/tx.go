package middlewares

import (
	"log"

	"github.com/Adityaraj1711/billyatra/database"

	"github.com/gofiber/fiber/v2"
)

// RequestTx opens a per-request DB transaction. Run AFTER IsAuthenticatedHeader()
// and AFTER Idempotency() (so idempotency records aren't tied to the handler TX).
// Everything a handler writes through database.FromCtx(c) commits as one unit or
// not at all; the billing workflow's multi-row writes rely on this.
func RequestTx() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to begin transaction")
		}

		// Ensure we always cleanup.
		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r) // re-panic after rollback so Fiber's handler can catch
			}
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				log.Printf("tx commit failed: %v", e)
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		// Make the TX available to handlers via database.FromCtx(c).
		c.Locals("tx", tx)

		// Run the handler chain inside this TX.
		err = c.Next()
		return err
	}
}
