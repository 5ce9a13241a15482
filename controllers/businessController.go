package controllers

import (
	"errors"

	"github.com/Adityaraj1711/billyatra/database"
	"github.com/Adityaraj1711/billyatra/middlewares"
	"github.com/Adityaraj1711/billyatra/models"
	"github.com/Adityaraj1711/billyatra/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateBusinessInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"required"`
}

func CreateBusiness(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	var input CreateBusinessInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	db := database.FromCtx(c)

	var existing models.Business
	err := db.Where("owner_id = ?", userID).First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "a user can only own one business")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "could not check business ownership")
	}

	business := models.Business{
		Name:    input.Name,
		Address: input.Address,
		OwnerID: userID,
	}
	if err := db.Create(&business).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create business")
	}

	return c.Status(fiber.StatusCreated).JSON(business)
}

func GetBusinesses(c *fiber.Ctx) error {
	businesses := []models.Business{}
	if businessID, ok := middlewares.BusinessScope(c); ok {
		database.FromCtx(c).Where("id = ?", businessID).Find(&businesses)
	}
	return c.JSON(fiber.Map{
		"businesses": businesses,
		"message":    "success",
	})
}

func GetBusiness(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok || businessID != id {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var business models.Business
	if err := database.FromCtx(c).Where("id = ?", id).First(&business).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return c.JSON(business)
}

type UpdateBusinessInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func UpdateBusiness(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok || businessID != id {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var input UpdateBusinessInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&input)

	db := database.FromCtx(c)

	var business models.Business
	if err := db.Where("id = ?", id).First(&business).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	updates := utils.UpdatesFromPtrDTO(&input, nil)
	if len(updates) > 0 {
		if err := db.Model(&business).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update business")
		}
	}
	return c.JSON(business)
}

// DeleteBusiness removes the business and everything under it, children first:
// staff, then the customers' bills/items and transactions, then customers and
// inventory, then the business row itself. All inside the request transaction.
func DeleteBusiness(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok || businessID != id {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	db := database.FromCtx(c)

	var business models.Business
	if err := db.Where("id = ?", id).First(&business).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	if err := db.Where("business_id = ?", id).Delete(&models.Staff{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete staff")
	}

	var customerIDs []uint
	if err := db.Model(&models.Customer{}).Where("business_id = ?", id).Pluck("id", &customerIDs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not enumerate customers")
	}
	if err := cascadeDeleteCustomers(db, customerIDs); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete customers")
	}

	if err := db.Where("business_id = ?", id).Delete(&models.Inventory{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete inventory")
	}
	if err := db.Delete(&business).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete business")
	}

	return c.JSON(fiber.Map{"message": "success"})
}
