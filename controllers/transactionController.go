package controllers

import (
	"os"
	"path/filepath"

	"github.com/Adityaraj1711/billyatra/database"
	"github.com/Adityaraj1711/billyatra/middlewares"
	"github.com/Adityaraj1711/billyatra/models"
	"github.com/Adityaraj1711/billyatra/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateTransactionInput struct {
	Customer    uint         `json:"customer" form:"customer" validate:"required"`
	Amount      models.Money `json:"amount" form:"amount"`
	Type        string       `json:"transaction_type" form:"transaction_type" validate:"required,oneof=CREDIT DEBIT"`
	Description string       `json:"description" form:"description"`
}

// CreateTransaction records a ledger entry against a customer. Accepts JSON or
// multipart bodies; an optional "bill_attachment" file part is stored under
// the upload dir with a bills/ prefix.
func CreateTransaction(c *fiber.Ctx) error {
	businessID, err := middlewares.RequireScope(c)
	if err != nil {
		return err
	}

	var input CreateTransactionInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)
	if !input.Amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be positive")
	}

	db := database.FromCtx(c)

	var customer models.Customer
	if err := db.Where("id = ? AND business_id = ?", input.Customer, businessID).First(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "customer not found")
	}

	txn := models.Transaction{
		CustomerID:  customer.ID,
		Amount:      input.Amount,
		Type:        input.Type,
		Description: input.Description,
	}

	if file, err := c.FormFile("bill_attachment"); err == nil && file != nil {
		rel, err := saveAttachment(c, file.Filename, func(dst string) error { return c.SaveFile(file, dst) })
		if err != nil {
			return err
		}
		txn.BillAttachment = rel
	}

	if err := db.Create(&txn).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create transaction")
	}
	return c.Status(fiber.StatusCreated).JSON(txn)
}

// saveAttachment writes an uploaded file under <UPLOAD_DIR>/bills/ with a
// uuid-based name and returns the stored relative path.
func saveAttachment(c *fiber.Ctx, original string, save func(dst string) error) (string, error) {
	root := os.Getenv("UPLOAD_DIR")
	if root == "" {
		root = "./uploads"
	}
	dir := filepath.Join(root, "bills")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "could not store attachment")
	}
	name := uuid.NewString() + filepath.Ext(original)
	if err := save(filepath.Join(dir, name)); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "could not store attachment")
	}
	return "bills/" + name, nil
}

func GetTransactions(c *fiber.Ctx) error {
	transactions := []models.Transaction{}
	if businessID, ok := middlewares.BusinessScope(c); ok {
		db := database.FromCtx(c)
		db.Where("customer_id IN (?)", scopedCustomers(db, businessID)).Find(&transactions)
	}
	return c.JSON(fiber.Map{
		"transactions": transactions,
		"message":      "success",
	})
}

func GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	db := database.FromCtx(c)

	var txn models.Transaction
	if err := db.Where("id = ? AND customer_id IN (?)", id, scopedCustomers(db, businessID)).First(&txn).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return c.JSON(txn)
}

type UpdateTransactionInput struct {
	Amount      *models.Money `json:"amount"`
	Type        *string       `json:"transaction_type" validate:"omitempty,oneof=CREDIT DEBIT"`
	Description *string       `json:"description"`
}

func UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var input UpdateTransactionInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&input)
	if input.Amount != nil && !input.Amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be positive")
	}

	db := database.FromCtx(c)

	var txn models.Transaction
	if err := db.Where("id = ? AND customer_id IN (?)", id, scopedCustomers(db, businessID)).First(&txn).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	updates := utils.UpdatesFromPtrDTO(&input, map[string]string{"transaction_type": "type"})
	if len(updates) > 0 {
		if err := db.Model(&txn).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update transaction")
		}
	}
	return c.JSON(txn)
}

func DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	db := database.FromCtx(c)

	var txn models.Transaction
	if err := db.Where("id = ? AND customer_id IN (?)", id, scopedCustomers(db, businessID)).First(&txn).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	if err := db.Delete(&txn).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete transaction")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
