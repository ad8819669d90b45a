package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/dimaswi/pos-emas/internal/config"
	"github.com/dimaswi/pos-emas/internal/nota"
	"github.com/dimaswi/pos-emas/internal/observability"
	"github.com/dimaswi/pos-emas/internal/server"
	"github.com/dimaswi/pos-emas/internal/transaction"
	"github.com/dimaswi/pos-emas/pkg/db"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,

		// Functional domains
		transaction.Module,
		nota.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
