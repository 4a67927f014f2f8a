package services_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/uci2pgn/internal/errors"
	"github.com/vytor/uci2pgn/internal/models"
	"github.com/vytor/uci2pgn/internal/repository/sqlite"
	"github.com/vytor/uci2pgn/internal/services"
	"github.com/vytor/uci2pgn/internal/testutil"
	"github.com/vytor/uci2pgn/internal/testutil/mocks"
)

func TestConvert_WithoutArchive(t *testing.T) {
	svc := services.NewConversionService(nil)

	conv, err := svc.Convert(context.Background(), []string{"e2e4", "e7e5", "g1f3"}, services.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), conv.ID)
	assert.Equal(t, 3, conv.Plies)
	assert.Equal(t, []string{"e2e4", "e7e5", "g1f3"}, conv.Moves)
	assert.True(t, strings.HasSuffix(conv.PGN, "1. e4 e5 2. Nf3 *"))
	assert.Empty(t, conv.ECOCode)
	assert.False(t, conv.CreatedAt.IsZero())
}

func TestConvert_ArchivesResult(t *testing.T) {
	repo := new(mocks.MockConversionRepository)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(c models.Conversion) bool {
		return c.Plies == 2 && strings.HasSuffix(c.PGN, "1. e4 c5 *")
	})).Return(int64(42), nil)

	svc := services.NewConversionService(repo)
	conv, err := svc.Convert(context.Background(), []string{"e2e4", "c7c5"}, services.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(42), conv.ID)
	repo.AssertExpectations(t)
}

func TestConvert_ArchiveFailureIsNotFatal(t *testing.T) {
	repo := new(mocks.MockConversionRepository)
	repo.On("Insert", mock.Anything, mock.Anything).Return(int64(0), fmt.Errorf("database is locked"))

	svc := services.NewConversionService(repo)
	conv, err := svc.Convert(context.Background(), []string{"d2d4"}, services.ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), conv.ID)
	assert.True(t, strings.HasSuffix(conv.PGN, "1. d4 *"))
	repo.AssertExpectations(t)
}

func TestConvert_IllegalMoveSkipsArchive(t *testing.T) {
	repo := new(mocks.MockConversionRepository)

	svc := services.NewConversionService(repo)
	conv, err := svc.Convert(context.Background(), []string{"e2e5"}, services.ConvertOptions{})
	require.Error(t, err)
	assert.Nil(t, conv)
	assert.True(t, errors.IsIllegalMove(err))

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestConvert_OpeningTags(t *testing.T) {
	svc := services.NewConversionService(nil)

	conv, err := svc.Convert(context.Background(), []string{"e2e4", "c7c5"}, services.ConvertOptions{Opening: true})
	require.NoError(t, err)

	assert.NotEmpty(t, conv.ECOCode)
	assert.NotEmpty(t, conv.OpeningName)
	assert.Contains(t, conv.PGN, fmt.Sprintf("[ECO \"%s\"]", conv.ECOCode))
}

func TestHistory_RequiresArchive(t *testing.T) {
	svc := services.NewConversionService(nil)

	_, err := svc.History(context.Background(), models.ConversionFilter{})
	require.Error(t, err)
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)

	_, err = svc.Get(context.Background(), 1)
	require.Error(t, err)
}

func TestHistory_NegativeLimit(t *testing.T) {
	svc := services.NewConversionService(new(mocks.MockConversionRepository))

	_, err := svc.History(context.Background(), models.ConversionFilter{Limit: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestHistory_EmptyArchiveReturnsEmptySlice(t *testing.T) {
	repo := new(mocks.MockConversionRepository)
	repo.On("List", mock.Anything, models.ConversionFilter{Limit: 5}).Return(nil, nil)

	svc := services.NewConversionService(repo)
	list, err := svc.History(context.Background(), models.ConversionFilter{Limit: 5})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(mocks.MockConversionRepository)
	repo.On("Get", mock.Anything, int64(7)).Return(nil, sql.ErrNoRows)

	svc := services.NewConversionService(repo)
	_, err := svc.Get(context.Background(), 7)
	require.Error(t, err)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.Status)
}

func TestConvertAndHistory_SQLiteArchive(t *testing.T) {
	database := testutil.NewTestDB(t)
	defer testutil.MustClose(t, database)

	svc := services.NewConversionService(sqlite.NewConversionRepository(database))
	ctx := context.Background()

	first, err := svc.Convert(ctx, []string{"e2e4"}, services.ConvertOptions{})
	require.NoError(t, err)
	second, err := svc.Convert(ctx, []string{"d2d4", "d7d5"}, services.ConvertOptions{})
	require.NoError(t, err)

	list, err := svc.History(ctx, models.ConversionFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	ids := []int64{list[0].ID, list[1].ID}
	assert.ElementsMatch(t, []int64{first.ID, second.ID}, ids)

	got, err := svc.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.PGN, got.PGN)
	assert.Equal(t, []string{"d2d4", "d7d5"}, got.Moves)
}
