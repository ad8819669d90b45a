package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// ModeOptions is the print-mode gate result. When ChoiceRequired is false the
// caller prints directly in the single available mode without prompting.
type ModeOptions struct {
	Modes          []PrintMode `json:"modes"`
	ChoiceRequired bool        `json:"choice_required"`
}

// Service is the nota printing boundary.
type Service interface {
	Modes(ctx context.Context, txID snowflake.ID) (ModeOptions, error)
	Print(ctx context.Context, txID snowflake.ID, mode PrintMode) error
	Preview(ctx context.Context, txID snowflake.ID, mode PrintMode) (string, error)
	ArchivePDF(ctx context.Context, txID snowflake.ID) ([]byte, error)
}
