// Package service implements the transaction application boundary.
package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dimaswi/pos-emas/internal/pricing"
	"github.com/dimaswi/pos-emas/internal/transaction/domain"
	"github.com/dimaswi/pos-emas/internal/transaction/format"
)

type Params struct {
	fx.In

	Repo  domain.Repository
	GenID *snowflake.Node
	Log   *zap.Logger
}

type Service struct {
	repo  domain.Repository
	genID *snowflake.Node
	log   *zap.Logger
	now   func() time.Time
}

func NewService(p Params) domain.Service {
	return &Service{
		repo:  p.Repo,
		genID: p.GenID,
		log:   p.Log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateDeposit commits a Setor Emas transaction. Net weight and line price
// of every item are derived through the pricing engine from the submitted
// gross weight; a category selection only suggests the buy price, the
// operator's figure wins and the category row is never written back.
func (s *Service) CreateDeposit(ctx context.Context, input domain.CreateDepositInput) (*domain.Transaction, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyTransaction
	}

	now := s.now()
	txID := s.genID.Generate()

	var subtotal float64
	items := make([]domain.TransactionItem, 0, len(input.Items))
	for i, in := range input.Items {
		item, err := s.buildItem(ctx, txID, i, in)
		if err != nil {
			return nil, err
		}
		subtotal += item.LinePrice
		items = append(items, *item)
	}

	seq, err := s.repo.CountByDate(ctx, now)
	if err != nil {
		return nil, err
	}
	code, err := format.TransactionCode(format.DepositPrefix, now, seq+1)
	if err != nil {
		return nil, err
	}

	grand := subtotal - input.Discount
	change := 0.0
	if input.PaidAmount > 0 {
		change = input.PaidAmount - grand
	}

	tx := &domain.Transaction{
		ID:            txID,
		Code:          code,
		Kind:          domain.KindDeposit,
		MemberID:      input.MemberID,
		LocationCode:  input.LocationCode,
		Subtotal:      subtotal,
		Discount:      input.Discount,
		GrandTotal:    grand,
		PaidAmount:    input.PaidAmount,
		ChangeAmount:  change,
		PaymentMethod: input.PaymentMethod,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info("deposit transaction committed",
		zap.String("code", tx.Code),
		zap.Int("items", len(tx.Items)),
		zap.Float64("grand_total", tx.GrandTotal),
	)
	return tx, nil
}

func (s *Service) buildItem(ctx context.Context, txID snowflake.ID, position int, in domain.DepositItemInput) (*domain.TransactionItem, error) {
	if in.GrossWeight <= 0 {
		return nil, domain.ErrInvalidGrossWeight
	}

	itemType := in.ItemType
	if itemType == "" {
		itemType = domain.ItemTypeStandard
	}
	condition := in.Condition
	if condition == "" {
		condition = domain.ConditionNew
	}
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	purity := in.Purity
	price := in.BuyPricePerGram
	categoryCode := ""
	categoryName := ""
	if itemType == domain.ItemTypeStandard {
		if in.CategoryID == nil {
			return nil, domain.ErrCategoryNotFound
		}
		cat, err := s.repo.FindCategory(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryCode = cat.Code
		categoryName = cat.Name
		purity = cat.Purity
		if price <= 0 {
			// Suggested price is a copy of the current list price.
			price = cat.BuyPricePerGram
		}
	}

	net, line := pricing.Derive(in.GrossWeight, in.ShrinkagePct, price)
	return &domain.TransactionItem{
		ID:            s.genID.Generate(),
		TransactionID: txID,
		Position:      position,
		Quantity:      quantity,
		Name:          in.Name,
		CategoryCode:  categoryCode,
		CategoryName:  categoryName,
		Purity:        purity,
		GrossWeight:   in.GrossWeight,
		ShrinkagePct:  in.ShrinkagePct,
		NetWeight:     net,
		PricePerGram:  price,
		LinePrice:     line,
		Condition:     condition,
		ItemType:      itemType,
		Notes:         in.Notes,
	}, nil
}

// UpdateDepositItem re-derives the item's figures from its gross weight. The
// stored net weight is never an input here, so repeated edits cannot
// accumulate rounding drift.
func (s *Service) UpdateDepositItem(ctx context.Context, txID, itemID snowflake.ID, input domain.UpdateDepositItemInput) (*domain.TransactionItem, error) {
	item, err := s.repo.FindItem(ctx, txID, itemID)
	if err != nil {
		return nil, err
	}

	if input.GrossWeight != nil {
		if *input.GrossWeight <= 0 {
			return nil, domain.ErrInvalidGrossWeight
		}
		item.GrossWeight = *input.GrossWeight
	}
	if input.ShrinkagePct != nil {
		item.ShrinkagePct = *input.ShrinkagePct
	}
	if input.BuyPricePerGram != nil {
		item.PricePerGram = *input.BuyPricePerGram
	}
	if input.Condition != nil {
		item.Condition = *input.Condition
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}

	item.NetWeight, item.LinePrice = pricing.Derive(item.GrossWeight, item.ShrinkagePct, item.PricePerGram)
	item.UpdatedAt = s.now()
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	if err := s.refreshTotals(ctx, txID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) refreshTotals(ctx context.Context, txID snowflake.ID) error {
	tx, err := s.repo.FindByID(ctx, txID)
	if err != nil {
		return err
	}
	var subtotal float64
	for _, item := range tx.Items {
		subtotal += item.LinePrice
	}
	tx.Subtotal = subtotal
	tx.GrandTotal = subtotal - tx.Discount
	if tx.PaidAmount > 0 {
		tx.ChangeAmount = tx.PaidAmount - tx.GrandTotal
	}
	return s.repo.UpdateTotals(ctx, tx)
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*domain.Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.Transaction, error) {
	return s.repo.List(ctx, filter)
}
