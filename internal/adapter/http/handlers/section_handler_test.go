package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hopebridge/internal/adapter/http/handlers/mocks"
	"hopebridge/internal/domain/entities"
	"hopebridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSectionHandler_GetPublicSection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISectionUseCase(ctrl)
		h := NewSectionHandler(uc)

		r := gin.New()
		r.GET("/api/public/sections/:slug", h.GetPublicSection)

		uc.EXPECT().GetBySlug(gomock.Any(), "programs").Return(entities.Section{}, usecase.ErrSectionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/public/sections/programs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success passes content through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISectionUseCase(ctrl)
		h := NewSectionHandler(uc)

		r := gin.New()
		r.GET("/api/public/sections/:slug", h.GetPublicSection)

		uc.EXPECT().GetBySlug(gomock.Any(), "campaigns").Return(entities.Section{
			ID:      "sec-camp",
			Slug:    "campaigns",
			Content: json.RawMessage(`{"successStories":[{"id":"c1","title":"Clean Water"}]}`),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/public/sections/campaigns", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			ID      string `json:"id"`
			Content struct {
				SuccessStories []struct {
					ID    string `json:"id"`
					Title string `json:"title"`
				} `json:"successStories"`
			} `json:"content"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ID != "sec-camp" || len(resp.Content.SuccessStories) != 1 || resp.Content.SuccessStories[0].Title != "Clean Water" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestSectionHandler_SaveSection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISectionUseCase(ctrl)
		h := NewSectionHandler(uc)

		r := gin.New()
		r.PUT("/api/admin/sections/:slug", h.SaveSection)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/sections/hero", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown slug mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISectionUseCase(ctrl)
		h := NewSectionHandler(uc)

		r := gin.New()
		r.PUT("/api/admin/sections/:slug", h.SaveSection)

		uc.EXPECT().Save(gomock.Any(), "donors", gomock.Any()).Return(entities.Section{}, usecase.ErrInvalidSectionSlug)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/sections/donors", bytes.NewBufferString(`{"content":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISectionUseCase(ctrl)
		h := NewSectionHandler(uc)

		r := gin.New()
		r.PUT("/api/admin/sections/:slug", h.SaveSection)

		uc.EXPECT().Save(gomock.Any(), "hero", gomock.Any()).DoAndReturn(
			func(_ any, slug string, content json.RawMessage) (entities.Section, error) {
				var doc map[string]any
				if err := json.Unmarshal(content, &doc); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if doc["title"] != "Welcome" {
					t.Fatalf("unexpected content: %s", content)
				}
				return entities.Section{ID: "sec-hero", Slug: slug, Content: content}, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/api/admin/sections/hero", bytes.NewBufferString(`{"content":{"title":"Welcome"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
