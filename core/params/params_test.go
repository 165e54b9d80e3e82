package params

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, rawQuery string) QueryParams {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products?"+rawQuery, nil)
	return NewQueryParams(e.NewContext(req, httptest.NewRecorder()))
}

func TestNewQueryParamsDefaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.PageNumber != DefaultPageNumber || p.PageSize != DefaultPageSize {
		t.Errorf("defaults = %d/%d", p.PageNumber, p.PageSize)
	}
	if p.Offset() != 0 {
		t.Errorf("offset = %d, want 0", p.Offset())
	}
}

func TestNewQueryParamsParsesValues(t *testing.T) {
	p := paramsFor(t, "page=3&page_size=10&search=arduino")
	if p.PageNumber != 3 || p.PageSize != 10 || p.Search != "arduino" {
		t.Errorf("params = %+v", p)
	}
	if p.Offset() != 20 {
		t.Errorf("offset = %d, want 20", p.Offset())
	}
}

func TestNewQueryParamsClampsAndIgnoresGarbage(t *testing.T) {
	p := paramsFor(t, "page=-1&page_size=9999")
	if p.PageNumber != DefaultPageNumber {
		t.Errorf("page = %d, want default", p.PageNumber)
	}
	if p.PageSize != MaxPageSize {
		t.Errorf("page_size = %d, want %d", p.PageSize, MaxPageSize)
	}

	p = paramsFor(t, "page=abc")
	if p.PageNumber != DefaultPageNumber {
		t.Errorf("page = %d, want default", p.PageNumber)
	}
}
