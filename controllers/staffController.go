package controllers

import (
	"github.com/Adityaraj1711/billyatra/database"
	"github.com/Adityaraj1711/billyatra/middlewares"
	"github.com/Adityaraj1711/billyatra/models"

	"github.com/gofiber/fiber/v2"
)

type CreateStaffInput struct {
	User string `json:"user" validate:"required,uuid4"`
	Role *uint  `json:"role"`
}

func CreateStaff(c *fiber.Ctx) error {
	businessID, err := middlewares.RequireScope(c)
	if err != nil {
		return err
	}

	var input CreateStaffInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	db := database.FromCtx(c)

	var user models.User
	if err := db.Where("id = ?", input.User).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user not found")
	}

	var existing models.Staff
	if err := db.Where("user_id = ?", user.Id).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "user is already staff of a business")
	}

	if input.Role != nil {
		var role models.Role
		if err := db.Where("id = ?", *input.Role).First(&role).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "role not found")
		}
	}

	staff := models.Staff{
		UserID:     user.Id,
		BusinessID: businessID,
		RoleID:     input.Role,
	}
	if err := db.Create(&staff).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create staff")
	}
	return c.Status(fiber.StatusCreated).JSON(staff)
}

func GetStaffMembers(c *fiber.Ctx) error {
	staff := []models.Staff{}
	if businessID, ok := middlewares.BusinessScope(c); ok {
		database.FromCtx(c).Where("business_id = ?", businessID).Find(&staff)
	}
	return c.JSON(fiber.Map{
		"staff":   staff,
		"message": "success",
	})
}

func GetStaffMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var staff models.Staff
	if err := database.FromCtx(c).Where("id = ? AND business_id = ?", id, businessID).First(&staff).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return c.JSON(staff)
}

type UpdateStaffInput struct {
	Role *uint `json:"role"`
}

func UpdateStaffMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var input UpdateStaffInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	db := database.FromCtx(c)

	var staff models.Staff
	if err := db.Where("id = ? AND business_id = ?", id, businessID).First(&staff).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	if input.Role != nil {
		var role models.Role
		if err := db.Where("id = ?", *input.Role).First(&role).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "role not found")
		}
		if err := db.Model(&staff).Update("role_id", *input.Role).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update staff")
		}
	}
	return c.JSON(staff)
}

func DeleteStaffMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	db := database.FromCtx(c)

	var staff models.Staff
	if err := db.Where("id = ? AND business_id = ?", id, businessID).First(&staff).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	if err := db.Delete(&staff).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete staff")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
