package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/Adityaraj1711/billyatra/database"
	"github.com/Adityaraj1711/billyatra/middlewares"
	"github.com/Adityaraj1711/billyatra/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BillItemInput struct {
	InventoryItem uint         `json:"inventory_item" validate:"required"`
	Quantity      int          `json:"quantity" validate:"required,gt=0"`
	Price         models.Money `json:"price"`
}

type CreateBillInput struct {
	Customer    uint            `json:"customer" validate:"required"`
	TotalAmount models.Money    `json:"total_amount"`
	PaymentMode string          `json:"payment_mode" validate:"required,oneof=CASH CARD UPI OTHER"`
	Items       []BillItemInput `json:"items"`
}

// CreateBill materializes a bill with its line items and decrements inventory
// stock, all inside the request transaction: either the bill, every item and
// every stock decrement commit together, or nothing does.
//
// Stock has no floor check; a sale larger than current_stock drives it
// negative.
func CreateBill(c *fiber.Ctx) error {
	businessID, err := middlewares.RequireScope(c)
	if err != nil {
		return err
	}

	var input CreateBillInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	for _, item := range input.Items {
		if err := middlewares.ValidateStruct(item); err != nil {
			return err
		}
	}

	db := database.FromCtx(c)

	var customer models.Customer
	if err := db.Where("id = ? AND business_id = ?", input.Customer, businessID).First(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "customer not found")
	}

	bill := models.Bill{
		CustomerID:  customer.ID,
		TotalAmount: input.TotalAmount,
		PaymentMode: input.PaymentMode,
	}
	if err := db.Create(&bill).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create bill")
	}

	items, err := createBillItems(db, bill.ID, businessID, input.Items, true)
	if err != nil {
		return err
	}
	bill.Items = items

	return c.Status(fiber.StatusCreated).JSON(bill)
}

// createBillItems persists the line items in input order. When decrementStock
// is set (create path) each referenced inventory row loses the sold quantity
// first; the update path never touches stock.
func createBillItems(db *gorm.DB, billID uint, businessID uint, inputs []BillItemInput, decrementStock bool) ([]models.BillItem, error) {
	items := make([]models.BillItem, 0, len(inputs))
	for _, in := range inputs {
		var inv models.Inventory
		if err := db.Where("id = ? AND business_id = ?", in.InventoryItem, businessID).First(&inv).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "inventory item not found")
		}

		if decrementStock {
			inv.CurrentStock -= in.Quantity
			if err := db.Save(&inv).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "could not update stock")
			}
		}

		item := models.BillItem{
			BillID:          billID,
			InventoryItemID: inv.ID,
			Quantity:        in.Quantity,
			Price:           in.Price,
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "could not create bill item")
		}
		items = append(items, item)
	}
	return items, nil
}

func scopedBills(db *gorm.DB, businessID uint) *gorm.DB {
	return db.Model(&models.Bill{}).Where("customer_id IN (?)", scopedCustomers(db, businessID))
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("bill_items.id")
}

// GetBills lists the scoped set, narrowed by the optional query filters
// composed with AND:
//   - start_date/end_date: inclusive range on created_at. Both must be
//     present and parse as YYYY-MM-DD, otherwise the date filter is skipped
//     entirely (including when only one of the two is valid).
//   - customer: exact customer id.
//   - item_name: case-insensitive substring match against any line item's
//     inventory name; each matching bill appears once.
func GetBills(c *fiber.Ctx) error {
	bills := []models.Bill{}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return c.JSON(fiber.Map{"bills": bills, "message": "success"})
	}

	db := database.FromCtx(c)
	q := scopedBills(db, businessID)

	if start, end, ok := parseDateRange(c.Query("start_date"), c.Query("end_date")); ok {
		q = q.Where("bills.created_at >= ? AND bills.created_at < ?", start, end)
	}

	if raw := strings.TrimSpace(c.Query("customer")); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			q = q.Where("bills.customer_id = ?", id)
		}
	}

	if name := strings.TrimSpace(c.Query("item_name")); name != "" {
		match := db.Model(&models.BillItem{}).
			Select("bill_items.bill_id").
			Joins("JOIN inventories ON inventories.id = bill_items.inventory_item_id").
			Where("LOWER(inventories.name) LIKE ?", "%"+strings.ToLower(name)+"%")
		q = q.Where("bills.id IN (?)", match)
	}

	if err := q.Preload("Items", preloadItems).Order("bills.id").Find(&bills).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list bills")
	}
	return c.JSON(fiber.Map{
		"bills":   bills,
		"message": "success",
	})
}

// parseDateRange applies the permissive date-filter contract: both bounds must
// be present and valid ISO dates or the filter is dropped without an error.
// The returned end is exclusive (start of the day after end_date) so the
// requested range is inclusive of end_date itself.
func parseDateRange(startRaw, endRaw string) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", strings.TrimSpace(startRaw))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(endRaw))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end.AddDate(0, 0, 1), true
}

func GetBill(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	db := database.FromCtx(c)

	var bill models.Bill
	if err := scopedBills(db, businessID).Preload("Items", preloadItems).Where("bills.id = ?", id).First(&bill).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	return c.JSON(bill)
}

type UpdateBillInput struct {
	Customer    *uint            `json:"customer"`
	TotalAmount *models.Money    `json:"total_amount"`
	PaymentMode *string          `json:"payment_mode" validate:"omitempty,oneof=CASH CARD UPI OTHER"`
	Items       *[]BillItemInput `json:"items"`
}

// UpdateBill patches the scalar fields in place and replaces the whole item
// list. Stock is not adjusted here, neither released for the old items nor
// taken for the new ones. Only bill creation moves stock.
func UpdateBill(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	var input UpdateBillInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	if input.Items == nil {
		return fiber.NewError(fiber.StatusBadRequest, "items is required")
	}
	for _, item := range *input.Items {
		if err := middlewares.ValidateStruct(item); err != nil {
			return err
		}
	}

	db := database.FromCtx(c)

	var bill models.Bill
	if err := scopedBills(db, businessID).Where("bills.id = ?", id).First(&bill).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	updates := map[string]any{}
	if input.Customer != nil {
		var customer models.Customer
		if err := db.Where("id = ? AND business_id = ?", *input.Customer, businessID).First(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "customer not found")
		}
		updates["customer_id"] = customer.ID
	}
	if input.TotalAmount != nil {
		updates["total_amount"] = *input.TotalAmount
	}
	if input.PaymentMode != nil {
		updates["payment_mode"] = *input.PaymentMode
	}
	if len(updates) > 0 {
		if err := db.Model(&bill).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update bill")
		}
	}

	// Items are owned by the bill: replace, never merge.
	if err := db.Where("bill_id = ?", bill.ID).Delete(&models.BillItem{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not replace bill items")
	}
	items, err := createBillItems(db, bill.ID, businessID, *input.Items, false)
	if err != nil {
		return err
	}
	bill.Items = items

	return c.JSON(bill)
}

func DeleteBill(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	businessID, ok := middlewares.BusinessScope(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	db := database.FromCtx(c)

	var bill models.Bill
	if err := scopedBills(db, businessID).Where("bills.id = ?", id).First(&bill).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	if err := db.Where("bill_id = ?", bill.ID).Delete(&models.BillItem{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete bill items")
	}
	if err := db.Delete(&bill).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete bill")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
