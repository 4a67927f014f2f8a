package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/vytor/uci2pgn/internal/convert"
	"github.com/vytor/uci2pgn/internal/errors"
	"github.com/vytor/uci2pgn/internal/logger"
	"github.com/vytor/uci2pgn/internal/models"
	"github.com/vytor/uci2pgn/internal/repository"
)

// ConvertOptions controls optional output enrichment.
type ConvertOptions struct {
	Opening bool // add ECO and Opening tags
}

// ConversionService handles UCI-to-PGN conversion and the optional archive
type ConversionService interface {
	Convert(ctx context.Context, tokens []string, opts ConvertOptions) (*models.Conversion, error)
	Get(ctx context.Context, id int64) (*models.Conversion, error)
	History(ctx context.Context, filter models.ConversionFilter) ([]models.Conversion, error)
}

type conversionService struct {
	repo repository.ConversionRepository
	now  func() time.Time
}

// NewConversionService creates a new ConversionService. repo may be nil, in
// which case nothing is archived and history lookups fail validation.
func NewConversionService(repo repository.ConversionRepository) ConversionService {
	return &conversionService{repo: repo, now: time.Now}
}

func (s *conversionService) Convert(ctx context.Context, tokens []string, opts ConvertOptions) (*models.Conversion, error) {
	log := logger.FromContext(ctx).WithField("tokens", len(tokens))
	log.Debug("converting move sequence")

	game, err := convert.Convert(tokens)
	if err != nil {
		log.Debug("conversion rejected: %v", err)
		return nil, err
	}

	var renderOpts []convert.Option
	if opts.Opening {
		renderOpts = append(renderOpts, convert.WithOpeningTags())
	}

	result := &models.Conversion{
		Moves:     append([]string{}, tokens...),
		PGN:       game.PGN(renderOpts...),
		Plies:     game.Plies(),
		CreatedAt: s.now().UTC(),
	}
	if opts.Opening {
		if code, title, ok := game.Opening(); ok {
			result.ECOCode = code
			result.OpeningName = title
		}
	}
	log.Debug("conversion completed: plies=%d", result.Plies)

	if s.repo == nil {
		return result, nil
	}

	id, err := s.repo.Insert(ctx, *result)
	if err != nil {
		// The PGN is still good; losing the archive entry is not fatal.
		log.Warn("failed to archive conversion: %v", err)
		return result, nil
	}
	result.ID = id
	log.Debug("conversion archived: id=%d", id)
	return result, nil
}

func (s *conversionService) Get(ctx context.Context, id int64) (*models.Conversion, error) {
	if s.repo == nil {
		return nil, errors.NewValidationError("archive", "not configured (set ARCHIVE_DB_PATH)")
	}

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("conversion", id)
		}
		logger.FromContext(ctx).Error("failed to get conversion: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return c, nil
}

func (s *conversionService) History(ctx context.Context, filter models.ConversionFilter) ([]models.Conversion, error) {
	if s.repo == nil {
		return nil, errors.NewValidationError("archive", "not configured (set ARCHIVE_DB_PATH)")
	}
	if filter.Limit < 0 {
		return nil, errors.NewValidationError("limit", "cannot be negative")
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list conversions: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if list == nil {
		list = []models.Conversion{}
	}
	return list, nil
}
