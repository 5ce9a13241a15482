package database

import (
	"fmt"

	"github.com/Adityaraj1711/billyatra/models"

	"gorm.io/gorm"
)

// MigrateModels applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - On Postgres additionally: money column types (NUMERIC(10,2)), extra
//   indexes and basic CHECK constraints.
func MigrateModels(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Customer{},
		&models.Transaction{},
		&models.Inventory{},
		&models.Bill{},
		&models.BillItem{},
		&models.Role{},
		&models.Staff{},
		&models.IdempotencyKey{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	// --- Enforce money columns as NUMERIC(10,2) (idempotent ALTERs) ---
	alters := []string{
		`ALTER TABLE transactions ALTER COLUMN amount       TYPE numeric(10,2)`,
		`ALTER TABLE inventories  ALTER COLUMN price        TYPE numeric(10,2)`,
		`ALTER TABLE bills        ALTER COLUMN total_amount TYPE numeric(10,2)`,
		`ALTER TABLE bill_items   ALTER COLUMN price        TYPE numeric(10,2)`,
	}
	for _, stmt := range alters {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
		}
	}

	// --- Helpful indexes (idempotent) ---
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_bill_items_bill ON bill_items (bill_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bill_items_inventory ON bill_items (inventory_item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bills_created_at ON bills (created_at)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
		}
	}

	// --- Basic CHECK constraints (idempotent) ---
	checks := []string{
		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint
				WHERE conrelid = 'bill_items'::regclass
				  AND conname  = 'chk_bill_items_quantity_pos'
			) THEN
				ALTER TABLE bill_items
				ADD CONSTRAINT chk_bill_items_quantity_pos
				CHECK (quantity > 0);
			END IF;
		END $$;`,
		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint
				WHERE conrelid = 'transactions'::regclass
				  AND conname  = 'chk_transactions_amount_pos'
			) THEN
				ALTER TABLE transactions
				ADD CONSTRAINT chk_transactions_amount_pos
				CHECK (amount > 0);
			END IF;
		END $$;`,
	}
	for _, stmt := range checks {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("check constraint migration failed: %w", err)
		}
	}

	return nil
}

func AutoMigrate() {
	if err := MigrateModels(DB); err != nil {
		panic(err)
	}
}
