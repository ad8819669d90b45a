// Package repository implements the transaction persistence boundary on gorm.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/dimaswi/pos-emas/internal/transaction/domain"
	"github.com/dimaswi/pos-emas/pkg/db"
)

type Repository struct {
	db *gorm.DB
}

func New(gdb *gorm.DB) domain.Repository {
	return &Repository{db: gdb}
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id snowflake.ID) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("position ASC") }).
		Preload("Member").
		First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("position ASC") }).
		Preload("Member").
		First(&tx, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Transaction, error) {
	q := r.db.WithContext(ctx).Model(&domain.Transaction{}).Order("created_at DESC")
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	var txs []domain.Transaction
	if err := q.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *Repository) UpdateItem(ctx context.Context, item *domain.TransactionItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *Repository) UpdateTotals(ctx context.Context, tx *domain.Transaction) error {
	return r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("id = ?", tx.ID).
		Updates(map[string]any{
			"subtotal":      tx.Subtotal,
			"grand_total":   tx.GrandTotal,
			"change_amount": tx.ChangeAmount,
			"updated_at":    time.Now().UTC(),
		}).Error
}

func (r *Repository) CountByDate(ctx context.Context, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *Repository) FindCategory(ctx context.Context, id snowflake.ID) (*domain.Category, error) {
	var cat domain.Category
	err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *Repository) FindItem(ctx context.Context, txID, itemID snowflake.ID) (*domain.TransactionItem, error) {
	var item domain.TransactionItem
	err := r.db.WithContext(ctx).
		First(&item, "id = ? AND transaction_id = ?", itemID, txID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
