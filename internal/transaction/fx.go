package transaction

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/dimaswi/pos-emas/internal/transaction/domain"
	"github.com/dimaswi/pos-emas/internal/transaction/repository"
	"github.com/dimaswi/pos-emas/internal/transaction/service"
)

var Module = fx.Module("transaction",
	fx.Provide(repository.New),
	fx.Provide(service.NewService),
	fx.Invoke(migrate),
)

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Member{},
		&domain.Category{},
		&domain.Transaction{},
		&domain.TransactionItem{},
	)
}
