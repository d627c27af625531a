package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	articleModel "ukmfilm_backend/internals/features/home/articles/model"
	"ukmfilm_backend/internals/features/home/carousels/dto"
	"ukmfilm_backend/internals/features/home/carousels/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&articleModel.ArticleModel{}, &model.CarouselModel{}))
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	ctrl := NewCarouselController(db)
	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	app.Get("/public/carousels", ctrl.GetAllActiveCarousels)
	app.Get("/admin/carousels", ctrl.GetAllCarouselsAdmin)
	app.Post("/admin/carousels", ctrl.CreateCarousel)
	app.Patch("/admin/carousels/:id", ctrl.UpdateCarousel)
	app.Delete("/admin/carousels/:id", ctrl.DeleteCarousel)
	return app
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, sonic.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func list(t *testing.T, app *fiber.App, path string) []dto.CarouselResponse {
	t.Helper()
	code, env := call(t, app, http.MethodGet, path, nil)
	require.Equal(t, fiber.StatusOK, code)
	var out []dto.CarouselResponse
	require.NoError(t, sonic.Unmarshal(env.Data, &out))
	return out
}

func TestPublicCarousels_ActiveOnlyAndLimited(t *testing.T) {
	app := newTestApp(openTestDB(t))

	for i := 0; i < 6; i++ {
		code, env := call(t, app, http.MethodPost, "/admin/carousels", fiber.Map{
			"carousel_title":     fmt.Sprintf("Slide %d", i),
			"carousel_image_url": "https://cdn.example.org/slide.jpg",
			"carousel_order":     i,
		})
		require.Equal(t, fiber.StatusCreated, code, env.Message)
	}
	code, _ := call(t, app, http.MethodPost, "/admin/carousels", fiber.Map{
		"carousel_title":     "Nonaktif",
		"carousel_image_url": "https://cdn.example.org/off.jpg",
		"carousel_is_active": false,
	})
	require.Equal(t, fiber.StatusCreated, code)

	pub := list(t, app, "/public/carousels")
	require.Len(t, pub, model.MaxPublicCarousels)
	assert.Equal(t, "Slide 0", pub[0].CarouselTitle)
	for _, c := range pub {
		assert.True(t, c.CarouselIsActive)
	}

	assert.Len(t, list(t, app, "/admin/carousels"), 7)
}

func TestCarouselArticleLink(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	code, env := call(t, app, http.MethodPost, "/admin/carousels", fiber.Map{
		"carousel_title":      "Tautan Hantu",
		"carousel_image_url":  "https://cdn.example.org/x.jpg",
		"carousel_article_id": uuid.New(),
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "Artikel tautan tidak ditemukan", env.Message)

	draft := articleModel.ArticleModel{ArticleTitle: "Draft", ArticleSlug: "draft", ArticleContent: "x", ArticleAuthorID: uuid.New()}
	require.NoError(t, db.Create(&draft).Error)

	code, env = call(t, app, http.MethodPost, "/admin/carousels", fiber.Map{
		"carousel_title":      "Dengan Artikel",
		"carousel_image_url":  "https://cdn.example.org/y.jpg",
		"carousel_article_id": draft.ArticleID,
	})
	require.Equal(t, fiber.StatusCreated, code, env.Message)
	var created dto.CarouselResponse
	require.NoError(t, sonic.Unmarshal(env.Data, &created))

	// artikel draft tidak ikut dipreload di publik
	pub := list(t, app, "/public/carousels")
	require.Len(t, pub, 1)
	assert.Nil(t, pub[0].Article)
	admin := list(t, app, "/admin/carousels")
	require.NotNil(t, admin[0].Article)
	assert.Equal(t, "draft", admin[0].Article.ArticleSlug)

	code, env = call(t, app, http.MethodPatch, "/admin/carousels/"+created.CarouselID, fiber.Map{"clear_article": true})
	require.Equal(t, fiber.StatusOK, code, env.Message)
	var patched dto.CarouselResponse
	require.NoError(t, sonic.Unmarshal(env.Data, &patched))
	assert.Nil(t, patched.CarouselArticleID)
}

func TestDeleteCarousel(t *testing.T) {
	app := newTestApp(openTestDB(t))
	code, env := call(t, app, http.MethodPost, "/admin/carousels", fiber.Map{
		"carousel_title": "Hapus Saya", "carousel_image_url": "https://cdn.example.org/z.jpg",
	})
	require.Equal(t, fiber.StatusCreated, code)
	var created dto.CarouselResponse
	require.NoError(t, sonic.Unmarshal(env.Data, &created))

	code, _ = call(t, app, http.MethodDelete, "/admin/carousels/"+created.CarouselID, nil)
	require.Equal(t, fiber.StatusOK, code)
	code, _ = call(t, app, http.MethodDelete, "/admin/carousels/"+created.CarouselID, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
	code, _ = call(t, app, http.MethodPatch, "/admin/carousels/"+created.CarouselID, fiber.Map{"carousel_title": "x"})
	assert.Equal(t, fiber.StatusNotFound, code)
}
