package orderrepo

import (
	"context"
	"fmt"
	"log/slog"

	"orderhub/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderArchive implements ports.OrderArchive.
type GormOrderArchive struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormOrderArchive(db *gorm.DB, logger *slog.Logger) *GormOrderArchive {
	return &GormOrderArchive{db: db, logger: logger.With("component", "order_archive")}
}

// Migrate creates or updates the orders and order_items tables.
func (r *GormOrderArchive) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&OrderDTO{}, &ItemDTO{})
}

// SaveOrders upserts a full snapshot in one transaction. Items of every saved
// order are replaced.
func (r *GormOrderArchive) SaveOrders(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(o))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range dtos {
			dto := dtos[i]
			items := dto.Items
			dto.Items = nil

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&dto).Error; err != nil {
				return fmt.Errorf("upsert order %s: %w", dto.ID, err)
			}

			if err := tx.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
				return fmt.Errorf("clear items of %s: %w", dto.ID, err)
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return fmt.Errorf("insert items of %s: %w", dto.ID, err)
				}
			}
		}
		return nil
	})
}

// LoadOrders returns every archived order, oldest first. Rows that no longer
// form a valid order are logged and skipped.
func (r *GormOrderArchive) LoadOrders(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping unreadable archived order", "order_id", dto.ID.String(), "error", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Reset deletes every archived order.
func (r *GormOrderArchive) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("TRUNCATE TABLE order_items, orders").Error
}
