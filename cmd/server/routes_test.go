package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"homeconnect.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIRoutes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIRoutes(r, routeDeps{
		authHandler:    &handlers.AuthHandler{},
		listingHandler: &handlers.ListingHandler{},
		paymentHandler: &handlers.PaymentHandler{},
		contactHandler: &handlers.ContactHandler{},
		statsHandler:   &handlers.StatsHandler{},
		authMiddleware: func(c *gin.Context) { c.Next() },
	})

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/auth/register"},
		{"POST", "/api/auth/login"},
		{"GET", "/api/auth/me"},
		{"GET", "/api/listings"},
		{"GET", "/api/listings/:id"},
		{"POST", "/api/listings"},
		{"PUT", "/api/listings/:id"},
		{"DELETE", "/api/listings/:id"},
		{"GET", "/api/my-listings"},
		{"POST", "/api/payments/initialize"},
		{"GET", "/api/payments/verify/:reference"},
		{"GET", "/api/unlocks/:listingId"},
		{"POST", "/api/contact"},
		{"GET", "/api/stats"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestHealthAndIndexRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerIndexRoute(r)
	registerMetricsRoute(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("index returned %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics returned %d", w.Code)
	}
}

func TestCORSMiddleware_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r)
	r.POST("/api/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/contact", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight returned %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin = %q", got)
	}
}
