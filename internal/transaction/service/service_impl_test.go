package service

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dimaswi/pos-emas/internal/transaction/domain"
	"github.com/dimaswi/pos-emas/internal/transaction/repository"
)

type testEnv struct {
	svc      domain.Service
	db       *gorm.DB
	category domain.Category
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&domain.Member{},
		&domain.Category{},
		&domain.Transaction{},
		&domain.TransactionItem{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cat := domain.Category{
		ID:              node.Generate(),
		Name:            "Emas 22K",
		Code:            "22K",
		Purity:          0.916,
		BuyPricePerGram: 1000000,
	}
	require.NoError(t, gdb.Create(&cat).Error)

	svc := NewService(Params{
		Repo:  repository.New(gdb),
		GenID: node,
		Log:   zap.NewNop(),
	})
	return &testEnv{svc: svc, db: gdb, category: cat}
}

func TestCreateDeposit_DerivesPricing(t *testing.T) {
	env := newTestEnv(t)

	tx, err := env.svc.CreateDeposit(context.Background(), domain.CreateDepositInput{
		Items: []domain.DepositItemInput{{
			CategoryID:   &env.category.ID,
			Name:         "Gelang",
			GrossWeight:  10.5,
			ShrinkagePct: 2,
		}},
	})
	require.NoError(t, err)
	require.Len(t, tx.Items, 1)

	item := tx.Items[0]
	assert.Equal(t, 10.29, item.NetWeight)
	assert.Equal(t, 1000000.0, item.PricePerGram)
	assert.Equal(t, 10290000.0, item.LinePrice)
	assert.Equal(t, 0.916, item.Purity)
	assert.Equal(t, "22K", item.CategoryCode)
	assert.Equal(t, domain.ConditionNew, item.Condition)
	assert.Equal(t, 1, item.Quantity)

	assert.Equal(t, 10290000.0, tx.Subtotal)
	assert.Equal(t, 10290000.0, tx.GrandTotal)
	assert.True(t, strings.HasPrefix(tx.Code, "SE-"), "code %s", tx.Code)
}

func TestCreateDeposit_PriceOverrideWins(t *testing.T) {
	env := newTestEnv(t)

	tx, err := env.svc.CreateDeposit(context.Background(), domain.CreateDepositInput{
		Items: []domain.DepositItemInput{{
			CategoryID:      &env.category.ID,
			Name:            "Kalung",
			GrossWeight:     10,
			BuyPricePerGram: 1100000,
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1100000.0, tx.Items[0].PricePerGram)
	assert.Equal(t, 11000000.0, tx.Items[0].LinePrice)

	// The override never leaks back into the price list.
	var cat domain.Category
	require.NoError(t, env.db.First(&cat, "id = ?", env.category.ID).Error)
	assert.Equal(t, 1000000.0, cat.BuyPricePerGram)
}

func TestCreateDeposit_CopiedPriceSurvivesListChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tx, err := env.svc.CreateDeposit(ctx, domain.CreateDepositInput{
		Items: []domain.DepositItemInput{{
			CategoryID:  &env.category.ID,
			Name:        "Cincin",
			GrossWeight: 5,
		}},
	})
	require.NoError(t, err)

	// Raise the list price after commit; the stored line must not move.
	require.NoError(t, env.db.Model(&domain.Category{}).
		Where("id = ?", env.category.ID).
		Update("buy_price_per_gram", 2000000).Error)

	got, err := env.svc.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000000.0, got.Items[0].PricePerGram)
	assert.Equal(t, 5000000.0, got.Items[0].LinePrice)
}

func TestCreateDeposit_Rejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateDeposit(ctx, domain.CreateDepositInput{})
	assert.ErrorIs(t, err, domain.ErrEmptyTransaction)

	_, err = env.svc.CreateDeposit(ctx, domain.CreateDepositInput{
		Items: []domain.DepositItemInput{{
			CategoryID:  &env.category.ID,
			Name:        "Anting",
			GrossWeight: 0,
		}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidGrossWeight)

	_, err = env.svc.CreateDeposit(ctx, domain.CreateDepositInput{
		Items: []domain.DepositItemInput{{
			Name:        "Anting",
			GrossWeight: 1,
		}},
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateDeposit_CustomItem(t *testing.T) {
	env := newTestEnv(t)

	tx, err := env.svc.CreateDeposit(context.Background(), domain.CreateDepositInput{
		Items: []domain.DepositItemInput{{
			ItemType:        domain.ItemTypeCustom,
			Name:            "Liontin Antik",
			GrossWeight:     3,
			Purity:          0.75,
			BuyPricePerGram: 800000,
			Condition:       domain.ConditionScratched,
		}},
	})
	require.NoError(t, err)

	item := tx.Items[0]
	assert.Equal(t, domain.ItemTypeCustom, item.ItemType)
	assert.Equal(t, 0.75, item.Purity)
	assert.Equal(t, 2400000.0, item.LinePrice)
	assert.Empty(t, item.CategoryCode)
}

func TestCreateDeposit_ChangeAmount(t *testing.T) {
	env := newTestEnv(t)

	tx, err := env.svc.CreateDeposit(context.Background(), domain.CreateDepositInput{
		Items: []domain.DepositItemInput{{
			CategoryID:  &env.category.ID,
			Name:        "Cincin",
			GrossWeight: 1,
		}},
		Discount:   100000,
		PaidAmount: 1000000,
	})
	require.NoError(t, err)

	assert.Equal(t, 900000.0, tx.GrandTotal)
	assert.Equal(t, 100000.0, tx.ChangeAmount)
}

func TestUpdateDepositItem_RederivesFromGross(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tx, err := env.svc.CreateDeposit(ctx, domain.CreateDepositInput{
		Items: []domain.DepositItemInput{{
			CategoryID:   &env.category.ID,
			Name:         "Gelang",
			GrossWeight:  10.5,
			ShrinkagePct: 2,
		}},
	})
	require.NoError(t, err)
	itemID := tx.Items[0].ID

	// Re-applying the same shrinkage must not drift the stored net weight.
	shrink := 2.0
	for i := 0; i < 5; i++ {
		item, err := env.svc.UpdateDepositItem(ctx, tx.ID, itemID, domain.UpdateDepositItemInput{
			ShrinkagePct: &shrink,
		})
		require.NoError(t, err)
		assert.Equal(t, 10.29, item.NetWeight)
	}

	// Dropping shrinkage to zero restores the full gross weight, proving the
	// derivation starts from gross and not from the stored net.
	zero := 0.0
	item, err := env.svc.UpdateDepositItem(ctx, tx.ID, itemID, domain.UpdateDepositItemInput{
		ShrinkagePct: &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, 10.5, item.NetWeight)
	assert.Equal(t, 10500000.0, item.LinePrice)

	got, err := env.svc.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, 10500000.0, got.Subtotal)
	assert.Equal(t, 10500000.0, got.GrandTotal)
}

func TestUpdateDepositItem_RejectsNonPositiveGross(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tx, err := env.svc.CreateDeposit(ctx, domain.CreateDepositInput{
		Items: []domain.DepositItemInput{{
			CategoryID:  &env.category.ID,
			Name:        "Cincin",
			GrossWeight: 2,
		}},
	})
	require.NoError(t, err)

	bad := -1.0
	_, err = env.svc.UpdateDepositItem(ctx, tx.ID, tx.Items[0].ID, domain.UpdateDepositItemInput{
		GrossWeight: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidGrossWeight)
}

func TestUpdateDepositItem_UnknownItem(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.UpdateDepositItem(context.Background(), 1, 2, domain.UpdateDepositItemInput{})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
