package migrate

import (
	"context"
	"fmt"

	"inventory-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateFKs     bool // внешние ключи через Exec после AutoMigrate
	CreateIndexes bool // составной индекс под агрегаты по группам
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateFKs:     true,
		CreateIndexes: true,
	}
}

// Migrate приводит схему MySQL к актуальному состоянию.
// Уникальные ключи (username, serial_number, orders.incoming_group)
// создаёт AutoMigrate по gorm-тегам моделей.
func Migrate(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы склада")

	log.Info("Создание таблиц: users, orders, products, product_prices, order_products")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.Product{},
		&models.ProductPrice{},
		&models.OrderProduct{},
	); err != nil {
		log.Error("AutoMigrate error", zap.Error(err))
		return err
	}
	log.Info("Таблицы созданы")

	if opt.CreateIndexes {
		log.Info("Создание составных индексов")
		if err := ensureIndex(ctx, db, "products", "ix_products_group_date",
			`CREATE INDEX ix_products_group_date ON products (incoming_group, date)`); err != nil {
			log.Error("ix products group_date", zap.Error(err))
			return err
		}
		log.Info("Индексы созданы")
	}

	if opt.CreateFKs {
		log.Info("Создание внешних ключей")

		fks := []struct {
			table, name, ddl string
		}{
			{"products", "fk_products_user",
				`ALTER TABLE products ADD CONSTRAINT fk_products_user
				 FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE RESTRICT`},
			{"products", "fk_products_order",
				`ALTER TABLE products ADD CONSTRAINT fk_products_order
				 FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE RESTRICT`},
			{"product_prices", "fk_product_prices_product",
				`ALTER TABLE product_prices ADD CONSTRAINT fk_product_prices_product
				 FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT`},
			{"order_products", "fk_order_products_order",
				`ALTER TABLE order_products ADD CONSTRAINT fk_order_products_order
				 FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE RESTRICT`},
			{"order_products", "fk_order_products_product",
				`ALTER TABLE order_products ADD CONSTRAINT fk_order_products_product
				 FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT`},
		}

		for _, fk := range fks {
			if err := ensureForeignKey(ctx, db, fk.table, fk.name, fk.ddl); err != nil {
				log.Error("fk "+fk.name, zap.Error(err))
				return err
			}
		}
		log.Info("Внешние ключи созданы")
	}

	log.Info("Миграция базы склада успешно завершена")
	return nil
}

// MySQL не умеет ADD CONSTRAINT IF NOT EXISTS — проверяем information_schema.
func ensureForeignKey(ctx context.Context, db *gorm.DB, table, name, ddl string) error {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM information_schema.TABLE_CONSTRAINTS
		 WHERE CONSTRAINT_SCHEMA = DATABASE()
		   AND TABLE_NAME = ? AND CONSTRAINT_NAME = ? AND CONSTRAINT_TYPE = 'FOREIGN KEY'`,
		table, name,
	).Scan(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := db.WithContext(ctx).Exec(ddl).Error; err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	return nil
}

func ensureIndex(ctx context.Context, db *gorm.DB, table, name, ddl string) error {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM information_schema.STATISTICS
		 WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? AND INDEX_NAME = ?`,
		table, name,
	).Scan(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := db.WithContext(ctx).Exec(ddl).Error; err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	return nil
}
