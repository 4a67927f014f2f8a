package repository

import (
	"context"

	"github.com/vytor/uci2pgn/internal/models"
)

// ConversionRepository handles archived conversion data access
type ConversionRepository interface {
	Insert(ctx context.Context, c models.Conversion) (int64, error)
	Get(ctx context.Context, id int64) (*models.Conversion, error)
	List(ctx context.Context, filter models.ConversionFilter) ([]models.Conversion, error)
	Count(ctx context.Context, filter models.ConversionFilter) (int, error)
}
