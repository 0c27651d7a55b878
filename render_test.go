package blog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRenderWritesComponentHTML(t *testing.T) {
	c, rec := newTestContext()
	cmp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hello</p>")
		return err
	})

	if err := Render(c, cmp); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); !strings.Contains(got, "<p>hello</p>") {
		t.Errorf("body = %q, want component markup", got)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Errorf("content type = %q, want text/html", ct)
	}
}

func TestRenderStatusSetsCode(t *testing.T) {
	c, rec := newTestContext()
	cmp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "missing")
		return err
	})

	if err := RenderStatus(c, http.StatusNotFound, cmp); err != nil {
		t.Fatalf("RenderStatus returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRenderStatusFailureWritesNoBody(t *testing.T) {
	c, rec := newTestContext()
	boom := errors.New("component failed")
	cmp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "partial output")
		return boom
	})

	if err := RenderStatus(c, http.StatusOK, cmp); !errors.Is(err, boom) {
		t.Fatalf("RenderStatus error = %v, want %v", err, boom)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want nothing written on render failure", rec.Body.String())
	}
}
