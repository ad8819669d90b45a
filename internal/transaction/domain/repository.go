package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// ListFilter narrows transaction listings.
type ListFilter struct {
	Kind   Kind
	Limit  int
	Offset int
}

// Repository is the persistence boundary for transactions and the price list.
type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	FindByID(ctx context.Context, id snowflake.ID) (*Transaction, error)
	FindByCode(ctx context.Context, code string) (*Transaction, error)
	List(ctx context.Context, filter ListFilter) ([]Transaction, error)
	UpdateItem(ctx context.Context, item *TransactionItem) error
	UpdateTotals(ctx context.Context, tx *Transaction) error
	CountByDate(ctx context.Context, day time.Time) (int64, error)

	FindCategory(ctx context.Context, id snowflake.ID) (*Category, error)
	FindItem(ctx context.Context, txID, itemID snowflake.ID) (*TransactionItem, error)
}
