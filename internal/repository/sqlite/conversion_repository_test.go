package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/uci2pgn/internal/models"
	"github.com/vytor/uci2pgn/internal/repository"
	"github.com/vytor/uci2pgn/internal/repository/sqlite"
	"github.com/vytor/uci2pgn/internal/testutil"
)

type ConversionRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ConversionRepository
}

func (s *ConversionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewConversionRepository(s.db)
}

func (s *ConversionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ConversionRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	conv := models.Conversion{
		Moves:       []string{"e2e4", "e7e5", "g1f3"},
		PGN:         "[Event \"?\"]\n\n1. e4 e5 2. Nf3 *",
		Plies:       3,
		ECOCode:     "C40",
		OpeningName: "King's Knight Opening",
	}

	id, err := s.repo.Insert(ctx, conv)
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal(id, got.ID)
	s.Assert().Equal(conv.Moves, got.Moves)
	s.Assert().Equal(conv.PGN, got.PGN)
	s.Assert().Equal(3, got.Plies)
	s.Assert().Equal("C40", got.ECOCode)
	s.Assert().Equal("King's Knight Opening", got.OpeningName)
	s.Assert().False(got.CreatedAt.IsZero())
}

func (s *ConversionRepositorySuite) TestInsert_EmptyMoves() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.Conversion{PGN: "*"})
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Empty(got.Moves)
	s.Assert().NotNil(got.Moves)
	s.Assert().Equal(0, got.Plies)
}

func (s *ConversionRepositorySuite) TestGet_NotFound() {
	got, err := s.repo.Get(context.Background(), 99999)
	s.Assert().ErrorIs(err, sql.ErrNoRows)
	s.Assert().Nil(got)
}

func (s *ConversionRepositorySuite) TestList_NewestFirstWithPagination() {
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, moves := range [][]string{{"e2e4"}, {"d2d4"}, {"c2c4"}} {
		_, err := s.repo.Insert(ctx, models.Conversion{
			Moves:     moves,
			PGN:       "pgn",
			Plies:     1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		s.Require().NoError(err)
	}

	all, err := s.repo.List(ctx, models.ConversionFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Assert().Equal([]string{"c2c4"}, all[0].Moves)
	s.Assert().Equal([]string{"e2e4"}, all[2].Moves)

	asc, err := s.repo.List(ctx, models.ConversionFilter{OrderDir: "ASC", Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(asc, 2)
	s.Assert().Equal([]string{"e2e4"}, asc[0].Moves)

	page, err := s.repo.List(ctx, models.ConversionFilter{Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Assert().Equal([]string{"d2d4"}, page[0].Moves)
}

func (s *ConversionRepositorySuite) TestListAndCount_Filters() {
	ctx := context.Background()

	inputs := []models.Conversion{
		{Moves: []string{"e2e4", "e7e5"}, PGN: "a", Plies: 2, ECOCode: "C20"},
		{Moves: []string{"e2e4", "c7c5"}, PGN: "b", Plies: 2, ECOCode: "B20"},
		{Moves: []string{"e2e4", "c7c5", "g1f3", "d7d6"}, PGN: "c", Plies: 4, ECOCode: "B50"},
	}
	for _, c := range inputs {
		_, err := s.repo.Insert(ctx, c)
		s.Require().NoError(err)
	}

	byECO, err := s.repo.List(ctx, models.ConversionFilter{ECOCode: "B20"})
	s.Require().NoError(err)
	s.Require().Len(byECO, 1)
	s.Assert().Equal("b", byECO[0].PGN)

	count, err := s.repo.Count(ctx, models.ConversionFilter{MinPlies: 3})
	s.Require().NoError(err)
	s.Assert().Equal(1, count)

	total, err := s.repo.Count(ctx, models.ConversionFilter{})
	s.Require().NoError(err)
	s.Assert().Equal(3, total)
}

func TestConversionRepositorySuite(t *testing.T) {
	suite.Run(t, new(ConversionRepositorySuite))
}
