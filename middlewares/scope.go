package middlewares

import (
	"errors"

	"github.com/Adityaraj1711/billyatra/database"
	"github.com/Adityaraj1711/billyatra/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResolveScope derives the caller's business for this request and stores it in
// c.Locals("businessID"). Owned business wins; otherwise the business of the
// caller's staff membership; otherwise no scope. Re-derived on every request,
// never cached, and read inside the request transaction so scoped queries and
// the resolution see the same snapshot.
func ResolveScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userID").(string)
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "auth context missing")
		}

		db := database.FromCtx(c)

		var business models.Business
		err := db.Where("owner_id = ?", userID).First(&business).Error
		if err == nil {
			c.Locals("businessID", business.ID)
			return c.Next()
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "scope resolution failed")
		}

		var staff models.Staff
		err = db.Where("user_id = ?", userID).First(&staff).Error
		if err == nil {
			c.Locals("businessID", staff.BusinessID)
			return c.Next()
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "scope resolution failed")
		}

		// No owned business, no staff membership: reads see nothing, writes are
		// rejected by RequireScope.
		return c.Next()
	}
}

// BusinessScope reads the resolved scope. ok is false when the caller has no
// associated business.
func BusinessScope(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("businessID").(uint)
	return id, ok
}

// RequireScope returns the caller's business id or a 403 for scopeless callers.
func RequireScope(c *fiber.Ctx) (uint, error) {
	id, ok := BusinessScope(c)
	if !ok {
		return 0, fiber.NewError(fiber.StatusForbidden, "no business associated with this account")
	}
	return id, nil
}
