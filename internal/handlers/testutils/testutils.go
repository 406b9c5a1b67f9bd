package testutils

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// NewChiRequest создаёт запрос с параметрами пути chi, как будто его разобрал роутер.
func NewChiRequest(method, target string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// TenderRequest - запрос к /api/tenders/{tenderId}/...
func TenderRequest(method, target, tenderID string) *http.Request {
	return NewChiRequest(method, target, map[string]string{"tenderId": tenderID})
}
