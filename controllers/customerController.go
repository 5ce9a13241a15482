package controllers

import (
	"github.com/Adityaraj1711/billyatra/database"
	"github.com/Adityaraj1711/billyatra/middlewares"
	"github.com/Adityaraj1711/billyatra/models"
	"github.com/Adityaraj1711/billyatra/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateCustomerInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Phone string `json:"phone" validate:"required,max=15"`
	Email string `json:"email" validate:"omitempty,email"`
}

func CreateCustomer(c *fiber.Ctx) error {
	businessID, err := middlewares.RequireScope(c)
	if err != nil {
		return err
	}

	var input CreateCustomerInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	customer := models.Customer{
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		BusinessID: businessID,
	}
	if err := database.FromCtx(c).Create(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create customer")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

func GetCustomers(c *fiber.Ctx) error {
	customers := []models.Customer{}
	if businessID, ok := middlewares.BusinessScope(c); ok {
		database.FromCtx(c).Where("business_id = ?", businessID).Find(&customers)
	}
	return c.JSON(fiber.Map{
		"customers": customers,
		"message":   "success",
	})
}

func GetCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var customer models.Customer
	if err := database.FromCtx(c).Where("id = ? AND business_id = ?", id, businessID).First(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return c.JSON(customer)
}

type UpdateCustomerInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var input UpdateCustomerInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&input)

	db := database.FromCtx(c)

	var customer models.Customer
	if err := db.Where("id = ? AND business_id = ?", id, businessID).First(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	updates := utils.UpdatesFromPtrDTO(&input, nil)
	if len(updates) > 0 {
		if err := db.Model(&customer).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update customer")
		}
	}
	return c.JSON(customer)
}

func DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	db := database.FromCtx(c)

	var customer models.Customer
	if err := db.Where("id = ? AND business_id = ?", id, businessID).First(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	if err := cascadeDeleteCustomers(db, []uint{customer.ID}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete customer")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
