package controllers

import (
	"github.com/Adityaraj1711/billyatra/database"
	"github.com/Adityaraj1711/billyatra/middlewares"
	"github.com/Adityaraj1711/billyatra/models"
	"github.com/Adityaraj1711/billyatra/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateInventoryInput struct {
	Name         string       `json:"name" validate:"required,max=255"`
	Description  string       `json:"description"`
	Price        models.Money `json:"price"`
	CurrentStock int          `json:"current_stock" validate:"gte=0"`
	ImageURL     string       `json:"image_url" validate:"omitempty,url"`
}

func CreateInventory(c *fiber.Ctx) error {
	businessID, err := middlewares.RequireScope(c)
	if err != nil {
		return err
	}

	var input CreateInventoryInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	item := models.Inventory{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		CurrentStock: input.CurrentStock,
		ImageURL:     input.ImageURL,
		BusinessID:   businessID,
	}
	if err := database.FromCtx(c).Create(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create inventory item")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func GetInventories(c *fiber.Ctx) error {
	items := []models.Inventory{}
	if businessID, ok := middlewares.BusinessScope(c); ok {
		database.FromCtx(c).Where("business_id = ?", businessID).Find(&items)
	}
	return c.JSON(fiber.Map{
		"inventories": items,
		"message":     "success",
	})
}

func GetInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var item models.Inventory
	if err := database.FromCtx(c).Where("id = ? AND business_id = ?", id, businessID).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return c.JSON(item)
}

type UpdateInventoryInput struct {
	Name         *string       `json:"name"`
	Description  *string       `json:"description"`
	Price        *models.Money `json:"price"`
	CurrentStock *int          `json:"current_stock" validate:"omitempty,gte=0"`
	ImageURL     *string       `json:"image_url" validate:"omitempty,url"`
}

func UpdateInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var input UpdateInventoryInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&input)

	db := database.FromCtx(c)

	var item models.Inventory
	if err := db.Where("id = ? AND business_id = ?", id, businessID).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	updates := utils.UpdatesFromPtrDTO(&input, nil)
	if len(updates) > 0 {
		if err := db.Model(&item).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update inventory item")
		}
	}
	return c.JSON(item)
}

// DeleteInventory also drops bill items referencing the item, so historical
// bills lose those lines.
func DeleteInventory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	db := database.FromCtx(c)

	var item models.Inventory
	if err := db.Where("id = ? AND business_id = ?", id, businessID).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	if err := db.Where("inventory_item_id = ?", item.ID).Delete(&models.BillItem{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete bill items")
	}
	if err := db.Delete(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete inventory item")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
