package controllers

import (
	"github.com/Adityaraj1711/billyatra/database"
	"github.com/Adityaraj1711/billyatra/middlewares"
	"github.com/Adityaraj1711/billyatra/models"
	"github.com/Adityaraj1711/billyatra/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// Roles are not business-scoped in the schema; any caller with a non-empty
// scope can see and manage all of them. Permission strings are opaque data,
// nothing in the backend enforces them.

type CreateRoleInput struct {
	Name        string         `json:"name" validate:"required,max=50"`
	Permissions datatypes.JSON `json:"permissions"`
}

func CreateRole(c *fiber.Ctx) error {
	if _, err := middlewares.RequireScope(c); err != nil {
		return err
	}

	var input CreateRoleInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	role := models.Role{
		Name:        input.Name,
		Permissions: input.Permissions,
	}
	if role.Permissions == nil {
		role.Permissions = datatypes.JSON([]byte("[]"))
	}
	if err := database.FromCtx(c).Create(&role).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create role")
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

func GetRoles(c *fiber.Ctx) error {
	roles := []models.Role{}
	if _, ok := middlewares.BusinessScope(c); ok {
		database.FromCtx(c).Find(&roles)
	}
	return c.JSON(fiber.Map{
		"roles":   roles,
		"message": "success",
	})
}

func GetRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, ok := middlewares.BusinessScope(c); !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var role models.Role
	if err := database.FromCtx(c).Where("id = ?", id).First(&role).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return c.JSON(role)
}

type UpdateRoleInput struct {
	Name        *string         `json:"name"`
	Permissions *datatypes.JSON `json:"permissions"`
}

func UpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, ok := middlewares.BusinessScope(c); !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var input UpdateRoleInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&input)

	db := database.FromCtx(c)

	var role models.Role
	if err := db.Where("id = ?", id).First(&role).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	updates := utils.UpdatesFromPtrDTO(&input, nil)
	if len(updates) > 0 {
		if err := db.Model(&role).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update role")
		}
	}
	return c.JSON(role)
}

// DeleteRole reverts the role on its staff to null instead of deleting the
// staff rows.
func DeleteRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, ok := middlewares.BusinessScope(c); !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	db := database.FromCtx(c)

	var role models.Role
	if err := db.Where("id = ?", id).First(&role).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	if err := db.Model(&models.Staff{}).Where("role_id = ?", role.ID).Update("role_id", nil).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not detach role from staff")
	}
	if err := db.Delete(&role).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete role")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
