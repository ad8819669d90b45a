package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// DepositItemInput is one row of the Setor Emas entry form.
type DepositItemInput struct {
	CategoryID      *snowflake.ID `json:"category_id,string"`
	ItemType        ItemType      `json:"item_type"`
	Name            string        `json:"name" binding:"required"`
	Quantity        int           `json:"quantity"`
	GrossWeight     float64       `json:"gross_weight"`
	ShrinkagePct    float64       `json:"shrinkage_pct"`
	Purity          float64       `json:"purity"`
	BuyPricePerGram float64       `json:"buy_price_per_gram"`
	Condition       Condition     `json:"condition"`
	Notes           string        `json:"notes"`
}

// CreateDepositInput is the committed deposit form.
type CreateDepositInput struct {
	MemberID      *snowflake.ID      `json:"member_id,string"`
	LocationCode  string             `json:"location_code"`
	Items         []DepositItemInput `json:"items" binding:"required"`
	Discount      float64            `json:"discount"`
	PaidAmount    float64            `json:"paid_amount"`
	PaymentMethod string             `json:"payment_method"`
}

// UpdateDepositItemInput patches one stored item; nil fields keep the stored
// value.
type UpdateDepositItemInput struct {
	GrossWeight     *float64   `json:"gross_weight"`
	ShrinkagePct    *float64   `json:"shrinkage_pct"`
	BuyPricePerGram *float64   `json:"buy_price_per_gram"`
	Condition       *Condition `json:"condition"`
	Notes           *string    `json:"notes"`
}

// Service is the transaction application boundary.
type Service interface {
	CreateDeposit(ctx context.Context, input CreateDepositInput) (*Transaction, error)
	UpdateDepositItem(ctx context.Context, txID, itemID snowflake.ID, input UpdateDepositItemInput) (*TransactionItem, error)
	Get(ctx context.Context, id snowflake.ID) (*Transaction, error)
	List(ctx context.Context, filter ListFilter) ([]Transaction, error)
}
