package controllers

import (
	"errors"
	"net/mail"
	"time"

	"github.com/Adityaraj1711/billyatra/database"
	"github.com/Adityaraj1711/billyatra/middlewares"
	"github.com/Adityaraj1711/billyatra/models"
	"github.com/Adityaraj1711/billyatra/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	var existing models.User
	err := database.DB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "username or email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "could not check existing users")
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
	}
	user.SetPassword(input.Password)

	tx := database.DB.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusBadRequest, "could not create user")
	}
	tx.Commit()

	return c.Status(fiber.StatusCreated).JSON(user)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}

	var user models.User
	database.DB.Where("email = ?", input.Email).First(&user)
	if _, err := uuid.Parse(user.Id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}

	if err := user.ComparePassword(input.Password); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}

	token, err := middlewares.GenerateJWT(user.Id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not issue token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.Id,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	cookie := fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	}
	c.Cookie(&cookie)
	return c.JSON(fiber.Map{
		"message": "success",
	})
}

// CurrentUser reports the caller plus its associated business: the owned one
// first, else the business of the staff membership, else null.
func CurrentUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	db := database.FromCtx(c)

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unknown user")
	}

	var business *models.Business
	if businessID, ok := middlewares.BusinessScope(c); ok {
		var b models.Business
		if err := db.Where("id = ?", businessID).First(&b).Error; err == nil {
			business = &b
		}
	}

	return c.JSON(fiber.Map{
		"id":       user.Id,
		"username": user.Username,
		"email":    user.Email,
		"business": business,
	})
}
