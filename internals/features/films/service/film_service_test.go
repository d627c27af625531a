package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ukmfilm_backend/internals/features/films/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.FilmModel{}))
	return db
}

func intPtr(v int) *int { return &v }

func seedFilm(t *testing.T, db *gorm.DB, title string, year int, published bool, genres ...string) model.FilmModel {
	t.Helper()
	slug, err := UniqueSlug(context.Background(), db, title, nil, uuid.Nil)
	require.NoError(t, err)
	f := model.FilmModel{
		FilmTitle:       title,
		FilmSlug:        slug,
		FilmYear:        intPtr(year),
		FilmGenres:      genres,
		FilmIsPublished: published,
		FilmOwnerID:     uuid.New(),
	}
	require.NoError(t, db.Create(&f).Error)
	return f
}

func titles(t *testing.T, db *gorm.DB, f PublicFilter) []string {
	t.Helper()
	var out []string
	require.NoError(t, ApplyPublicFilter(db.Model(&model.FilmModel{}), f).
		Order("film_title ASC").
		Pluck("film_title", &out).Error)
	return out
}

func TestApplyPublicFilter(t *testing.T) {
	db := openTestDB(t)
	seedFilm(t, db, "Senja di Kampus", 2024, true, "Drama", "romansa")
	seedFilm(t, db, "Jejak Sungai", 2023, true, "dokumenter")
	seedFilm(t, db, "Drama Kos", 2024, true, "komedi")
	seedFilm(t, db, "Draft Rahasia", 2024, false, "drama")

	assert.Equal(t, []string{"Drama Kos", "Jejak Sungai", "Senja di Kampus"}, titles(t, db, PublicFilter{}))
	assert.Equal(t, []string{"Drama Kos", "Senja di Kampus"}, titles(t, db, PublicFilter{Year: 2024}))
	assert.Equal(t, []string{"Senja di Kampus"}, titles(t, db, PublicFilter{Genre: " DRAMA "}))
	assert.Equal(t, []string{"Drama Kos"}, titles(t, db, PublicFilter{Query: "drama"}))
	assert.Empty(t, titles(t, db, PublicFilter{Genre: "horor"}))
}

func TestApplyPublicFilter_WildcardsAreLiteral(t *testing.T) {
	db := openTestDB(t)
	seedFilm(t, db, "Potongan 50% Harga", 2024, true, "x")
	seedFilm(t, db, "Film Pendek", 2024, true, "horor", "y")

	assert.Empty(t, titles(t, db, PublicFilter{Genre: "_"}))
	assert.Empty(t, titles(t, db, PublicFilter{Genre: "%"}))
	assert.Equal(t, []string{"Film Pendek"}, titles(t, db, PublicFilter{Genre: "y"}))
	assert.Equal(t, []string{"Potongan 50% Harga"}, titles(t, db, PublicFilter{Query: "50%"}))
	assert.Empty(t, titles(t, db, PublicFilter{Query: "_"}))
}

func TestUniqueSlug_SkipsSelfAndDeleted(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	a := seedFilm(t, db, "Layar Tancap", 2022, true)
	b := seedFilm(t, db, "Layar Tancap", 2022, true)
	assert.Equal(t, "layar-tancap", a.FilmSlug)
	assert.Equal(t, "layar-tancap-2", b.FilmSlug)

	same, err := UniqueSlug(ctx, db, "Layar Tancap", nil, a.FilmID)
	require.NoError(t, err)
	assert.Equal(t, "layar-tancap", same)

	custom := "Versi Sutradara"
	got, err := UniqueSlug(ctx, db, "Layar Tancap", &custom, a.FilmID)
	require.NoError(t, err)
	assert.Equal(t, "versi-sutradara", got)

	require.NoError(t, db.Delete(&a).Error)
	free, err := UniqueSlug(ctx, db, "Layar Tancap", nil, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "layar-tancap", free)
}

func TestFindPublishedBySlug(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	pub := seedFilm(t, db, "Kota Hujan", 2025, true, "drama")
	seedFilm(t, db, "Belum Rilis", 2025, false)

	got, err := FindPublishedBySlug(ctx, db, "KOTA-HUJAN")
	require.NoError(t, err)
	assert.Equal(t, pub.FilmID, got.FilmID)
	assert.Equal(t, []string{"drama"}, []string(got.FilmGenres))
	assert.NotNil(t, got.FilmCrew)

	_, err = FindPublishedBySlug(ctx, db, "belum-rilis")
	assert.ErrorIs(t, err, ErrFilmNotFound)

	_, err = FindByID(ctx, db, uuid.New(), false)
	assert.ErrorIs(t, err, ErrFilmNotFound)
}

func TestNormalizeGenres(t *testing.T) {
	assert.Equal(t, []string{"drama", "komedi"}, model.NormalizeGenres([]string{" Drama", "", "KOMEDI", "drama"}))
	assert.Equal(t, []string{}, model.NormalizeGenres(nil))
}
