package controllers

import (
	"strconv"

	"github.com/Adityaraj1711/billyatra/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// parseID reads the :id path param. Malformed ids read as 404 so callers can't
// distinguish them from rows outside their scope.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return uint(id), nil
}

// scopedCustomers builds a subquery selecting the ids of the business's
// customers. Bills and transactions are scoped through it.
func scopedCustomers(db *gorm.DB, businessID uint) *gorm.DB {
	return db.Model(&models.Customer{}).Select("id").Where("business_id = ?", businessID)
}

// cascadeDeleteCustomers removes the given customers together with their
// dependents, children first: bill items, bills, transactions, then the
// customer rows. Runs inside the caller's transaction.
func cascadeDeleteCustomers(db *gorm.DB, customerIDs []uint) error {
	if len(customerIDs) == 0 {
		return nil
	}
	billIDs := db.Model(&models.Bill{}).Select("id").Where("customer_id IN ?", customerIDs)
	if err := db.Where("bill_id IN (?)", billIDs).Delete(&models.BillItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("customer_id IN ?", customerIDs).Delete(&models.Bill{}).Error; err != nil {
		return err
	}
	if err := db.Where("customer_id IN ?", customerIDs).Delete(&models.Transaction{}).Error; err != nil {
		return err
	}
	return db.Where("id IN ?", customerIDs).Delete(&models.Customer{}).Error
}
