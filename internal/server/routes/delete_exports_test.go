package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/context-ai/showcase/backend/internal/server/middleware"
)

type structValidator struct {
	validator *validator.Validate
}

func (v *structValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newExportContext(id string, app *middleware.App) (*middleware.AppContext, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &structValidator{validator: validator.New()}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/exports/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)

	return &middleware.AppContext{Context: c, App: app}, rec
}

func TestDeleteExportHandler_MissingID(t *testing.T) {
	c, rec := newExportContext("", &middleware.App{})

	if err := DeleteExportHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestDeleteExportHandler_StorageNotConfigured(t *testing.T) {
	c, rec := newExportContext("abc123", &middleware.App{})

	if err := DeleteExportHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}
