package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/uci2pgn/internal/logger"
	"github.com/vytor/uci2pgn/internal/models"
	"github.com/vytor/uci2pgn/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var conversionColumns = []string{"id", "moves", "pgn", "plies", "eco_code", "opening_name", "created_at"}

type conversionRepository struct {
	db *sql.DB
}

// NewConversionRepository creates a new ConversionRepository implementation
func NewConversionRepository(db *sql.DB) repository.ConversionRepository {
	return &conversionRepository{db: db}
}

func (r *conversionRepository) Insert(ctx context.Context, c models.Conversion) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("conversion_repo")
	log.Debug("inserting conversion: plies=%d", c.Plies)

	values := map[string]any{
		"moves":        strings.Join(c.Moves, " "),
		"pgn":          c.PGN,
		"plies":        c.Plies,
		"eco_code":     c.ECOCode,
		"opening_name": c.OpeningName,
	}
	if !c.CreatedAt.IsZero() {
		values["created_at"] = c.CreatedAt.UTC()
	}
	query := sqlBuilder.Insert("conversions").SetMap(values)

	res, err := query.RunWith(r.db).ExecContext(ctx)
	if err != nil {
		log.Error("failed to insert conversion: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Debug("conversion inserted: id=%d", id)
	return id, nil
}

func (r *conversionRepository) Get(ctx context.Context, id int64) (*models.Conversion, error) {
	log := logger.FromContext(ctx).WithPrefix("conversion_repo")
	log.Debug("getting conversion: id=%d", id)

	row := sqlBuilder.Select(conversionColumns...).
		From("conversions").
		Where(squirrel.Eq{"id": id}).
		RunWith(r.db).
		QueryRowContext(ctx)

	c, err := scanConversion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("conversion not found: id=%d", id)
		} else {
			log.Error("failed to get conversion: %v", err)
		}
		return nil, err
	}
	return &c, nil
}

func (r *conversionRepository) List(ctx context.Context, filter models.ConversionFilter) ([]models.Conversion, error) {
	log := logger.FromContext(ctx).WithPrefix("conversion_repo")
	log.Debug("listing conversions: eco=%s, min_plies=%d, limit=%d, offset=%d",
		filter.ECOCode, filter.MinPlies, filter.Limit, filter.Offset)

	query := applyFilter(sqlBuilder.Select(conversionColumns...).From("conversions"), filter)

	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy("created_at "+orderDir, "id "+orderDir)

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list conversions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			log.Error("failed to scan conversion row: %v", err)
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *conversionRepository) Count(ctx context.Context, filter models.ConversionFilter) (int, error) {
	query := applyFilter(sqlBuilder.Select("COUNT(*)").From("conversions"), filter)

	var count int
	if err := query.RunWith(r.db).QueryRowContext(ctx).Scan(&count); err != nil {
		logger.FromContext(ctx).WithPrefix("conversion_repo").Error("failed to count conversions: %v", err)
		return 0, err
	}
	return count, nil
}

func applyFilter(query squirrel.SelectBuilder, filter models.ConversionFilter) squirrel.SelectBuilder {
	if filter.ECOCode != "" {
		query = query.Where(squirrel.Eq{"eco_code": filter.ECOCode})
	}
	if filter.MinPlies > 0 {
		query = query.Where(squirrel.GtOrEq{"plies": filter.MinPlies})
	}
	return query
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(s scanner) (models.Conversion, error) {
	var c models.Conversion
	var moves string
	if err := s.Scan(&c.ID, &moves, &c.PGN, &c.Plies, &c.ECOCode, &c.OpeningName, &c.CreatedAt); err != nil {
		return models.Conversion{}, err
	}
	c.Moves = strings.Fields(moves)
	if c.Moves == nil {
		c.Moves = []string{}
	}
	return c, nil
}
