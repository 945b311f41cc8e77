package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pokemonreview/internal/dto"
	"pokemonreview/internal/http/middleware"
	"pokemonreview/internal/logger"
	"pokemonreview/internal/service"
	serviceMocks "pokemonreview/internal/service/mocks"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.Discard())})
	app.Use(middleware.RequestID())
	return app
}

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	t.Run("healthy", func(t *testing.T) {
		app := newApp()
		app.Get("/health", HealthCheck(db, nil))
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("database down", func(t *testing.T) {
		app := newApp()
		app.Get("/health", HealthCheck(db, nil))
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("cache down", func(t *testing.T) {
		rdb, rmock := redismock.NewClientMock()
		app := newApp()
		app.Get("/health", HealthCheck(db, rdb))
		dbMock.ExpectPing().WillReturnError(nil)
		rmock.ExpectPing().SetErr(errors.New("redis down"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListPokemon(t *testing.T) {
	mockSvc := new(serviceMocks.MockPokemonService)
	app := newApp()
	app.Get("/api/pokemon", ListPokemon(mockSvc))

	t.Run("success", func(t *testing.T) {
		page := dto.NewPokemonPage([]dto.PokemonDto{{ID: 1, Name: "pikachu", Type: "electric"}}, 1, 0, 10)
		mockSvc.On("List", mock.Anything, 0, 10).Return(page, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon?pageNo=0&pageSize=10", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result dto.PokemonPage
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Content, 1)
		assert.Equal(t, 1, result.TotalElements)
		assert.True(t, result.Last)
		mockSvc.AssertExpectations(t)
	})

	t.Run("defaults", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 0, service.DefaultPageSize).Return(dto.NewPokemonPage(nil, 0, 0, 10), nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 0, 10).Return(nil, errors.New("service error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetPokemon(t *testing.T) {
	mockSvc := new(serviceMocks.MockPokemonService)
	app := newApp()
	app.Get("/api/pokemon/:id", GetPokemon(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 1).Return(&dto.PokemonDto{ID: 1, Name: "pikachu", Type: "electric"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result dto.PokemonDto
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "pikachu", result.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 999).
			Return(nil, &service.NotFoundError{Kind: service.ErrPokemonNotFound, Message: service.MsgPokemonNotFound}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/999", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "POKEMON_NOT_FOUND", res.Error.Code)
		assert.Equal(t, service.MsgPokemonNotFound, res.Error.Message)
		assert.NotEmpty(t, res.RequestID)
	})

	t.Run("invalid id", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-3"} {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/"+raw, nil))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, raw)
			assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code, raw)
		}
	})
}

func TestGetPokemonByType(t *testing.T) {
	mockSvc := new(serviceMocks.MockPokemonService)
	app := newApp()
	app.Get("/api/pokemon/type/:type", GetPokemonByType(mockSvc))

	mockSvc.On("GetByType", mock.Anything, "electric").Return(&dto.PokemonDto{ID: 1, Name: "pikachu", Type: "electric"}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/type/electric", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestCreatePokemon(t *testing.T) {
	mockSvc := new(serviceMocks.MockPokemonService)
	app := newApp()
	app.Post("/api/pokemon/create", CreatePokemon(mockSvc))

	t.Run("created", func(t *testing.T) {
		in := dto.PokemonDto{Name: "pikachu", Type: "electric"}
		mockSvc.On("Create", mock.Anything, in).Return(&dto.PokemonDto{ID: 1, Name: "pikachu", Type: "electric"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/pokemon/create", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result dto.PokemonDto
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 1, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failed", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/pokemon/create", dto.PokemonDto{Type: "electric"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
		require.Len(t, res.Error.Details, 1)
		assert.Equal(t, "Name", res.Error.Details[0].Field)
		assert.Equal(t, "required", res.Error.Details[0].Type)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/pokemon/create", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestUpdatePokemon(t *testing.T) {
	mockSvc := new(serviceMocks.MockPokemonService)
	app := newApp()
	app.Put("/api/pokemon/:id/update", UpdatePokemon(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := dto.PokemonDto{Name: "raichu", Type: "electric"}
		mockSvc.On("Update", mock.Anything, 1, in).Return(&dto.PokemonDto{ID: 1, Name: "raichu", Type: "electric"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/pokemon/1/update", in))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		in := dto.PokemonDto{Name: "raichu", Type: "electric"}
		mockSvc.On("Update", mock.Anything, 5, in).
			Return(nil, &service.NotFoundError{Kind: service.ErrPokemonNotFound, Message: service.MsgPokemonNotUpdated}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/pokemon/5/update", in))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, service.MsgPokemonNotUpdated, decodeError(t, resp).Error.Message)
	})
}

func TestDeletePokemon(t *testing.T) {
	mockSvc := new(serviceMocks.MockPokemonService)
	app := newApp()
	app.Delete("/api/pokemon/:id/delete", DeletePokemon(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, 1).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/pokemon/1/delete", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body messagePayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Pokemon deleted", body.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, 2).Return(errors.New("delete error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/pokemon/2/delete", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestReviewHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockReviewService)
	app := newApp()
	app.Post("/api/pokemon/:pokemonId/reviews", CreateReview(mockSvc))
	app.Get("/api/pokemon/:pokemonId/reviews", ListReviews(mockSvc))
	app.Get("/api/pokemon/:pokemonId/reviews/:id", GetReview(mockSvc))
	app.Put("/api/pokemon/:pokemonId/reviews/:id", UpdateReview(mockSvc))
	app.Delete("/api/pokemon/:pokemonId/reviews/:id", DeleteReview(mockSvc))

	in := dto.ReviewDto{Title: "title", Content: "Is good", Stars: 5}

	t.Run("create", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, 1, in).Return(&dto.ReviewDto{ID: 3, Title: "title", Content: "Is good", Stars: 5}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/pokemon/1/reviews", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("create rejects stars out of range", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/pokemon/1/reviews", dto.ReviewDto{Title: "t", Content: "c", Stars: 6}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		require.Len(t, res.Error.Details, 1)
		assert.Equal(t, "Stars", res.Error.Details[0].Field)
		assert.Equal(t, "max", res.Error.Details[0].Type)
	})

	t.Run("list", func(t *testing.T) {
		mockSvc.On("ListByPokemon", mock.Anything, 1).Return([]dto.ReviewDto{{ID: 3}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/1/reviews", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var list []dto.ReviewDto
		json.NewDecoder(resp.Body).Decode(&list)
		assert.Len(t, list, 1)
	})

	t.Run("get passes review id first", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 3, 1).Return(&dto.ReviewDto{ID: 3}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/1/reviews/3", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("get not owned", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, 4, 1).
			Return(nil, &service.NotFoundError{Kind: service.ErrReviewNotFound, Message: service.MsgReviewNotOwned}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/1/reviews/4", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "REVIEW_NOT_FOUND", res.Error.Code)
		assert.Equal(t, "This review does not belong to a pokemon", res.Error.Message)
	})

	t.Run("update pokemon missing", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, 9, 3, in).
			Return(nil, &service.NotFoundError{Kind: service.ErrPokemonNotFound, Message: service.MsgPokemonOfReviewNotFound}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/pokemon/9/reviews/3", in))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "POKEMON_NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, 1, 3).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/pokemon/1/reviews/3", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body messagePayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Review deleted successfully", body.Message)
	})

	t.Run("invalid review id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/pokemon/1/reviews/x", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func imagePart(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	part.Write(data)
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadSprite(t *testing.T) {
	mockSvc := new(serviceMocks.MockSpriteService)
	app := newApp()
	app.Post("/api/pokemon/:id/sprite", UploadSprite(mockSvc))

	t.Run("success", func(t *testing.T) {
		body, ct := imagePart(t, "pika.png", "image/png", []byte("png"))
		mockSvc.On("Upload", mock.Anything, 1, mock.Anything, "pika.png", "image/png", int64(3)).
			Return(&service.SpriteInfo{Key: "pokemon/1/x.png", Size: 3, ContentType: "image/png"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/pokemon/1/sprite", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var info service.SpriteInfo
		json.NewDecoder(resp.Body).Decode(&info)
		assert.Equal(t, "pokemon/1/x.png", info.Key)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/pokemon/1/sprite", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("not an image", func(t *testing.T) {
		body, ct := imagePart(t, "notes.txt", "text/plain", []byte("hi"))
		mockSvc.On("Upload", mock.Anything, 1, mock.Anything, "notes.txt", "text/plain", int64(2)).
			Return(nil, service.ErrUnsupportedType).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/pokemon/1/sprite", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "UNSUPPORTED_TYPE", decodeError(t, resp).Error.Code)
	})
}

func TestGetSprite(t *testing.T) {
	mockSvc := new(serviceMocks.MockSpriteService)
	app := newApp()
	app.Get("/api/pokemon/:id/sprite", GetSprite(mockSvc))

	t.Run("redirects", func(t *testing.T) {
		mockSvc.On("URL", mock.Anything, 1).Return("http://minio.local/pokemon-sprites/pokemon/1/x.png?sig=1", nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/1/sprite", nil))

		assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
		assert.Equal(t, "http://minio.local/pokemon-sprites/pokemon/1/x.png?sig=1", resp.Header.Get("Location"))
	})

	t.Run("no sprite", func(t *testing.T) {
		mockSvc.On("URL", mock.Anything, 2).Return("", service.ErrSpriteNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/2/sprite", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "SPRITE_NOT_FOUND", decodeError(t, resp).Error.Code)
	})
}

func TestRouting(t *testing.T) {
	app := newApp()
	pokemonSvc := new(serviceMocks.MockPokemonService)
	reviewSvc := new(serviceMocks.MockReviewService)
	RegisterRoutes(app, nil, nil, Services{Pokemon: pokemonSvc, Review: reviewSvc})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("type route wins over id route", func(t *testing.T) {
		pokemonSvc.On("GetByType", mock.Anything, "fire").Return(&dto.PokemonDto{ID: 4, Type: "fire"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/type/fire", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		pokemonSvc.AssertExpectations(t)
	})

	t.Run("sprite routes absent without storage", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/1/sprite", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("list at group root", func(t *testing.T) {
		pokemonSvc.On("List", mock.Anything, 1, 5).Return(dto.NewPokemonPage(nil, 0, 1, 5), nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon?pageNo=1&pageSize=5", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		b, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(b), `"pageSize":5`)
	})
}
