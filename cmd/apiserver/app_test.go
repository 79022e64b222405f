package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"oip/account/internal/app/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "account-test", Env: "test", LogLevel: "error"},
		Server: config.ServerConfig{Port: "0"},
		Database: config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			DSN:         fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
			AutoMigrate: true,
			LogLevel:    "silent",
		},
	}
}

func TestInitializeApp(t *testing.T) {
	cfg := testConfig()
	mr := miniredis.RunT(t)
	cfg.Redis = config.RedisConfig{Addr: mr.Addr(), Channel: "account_events"}

	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts",
		strings.NewReader(`{"name":"Alice","email":"alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.Engine.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestInitializeAppRedisUnavailable(t *testing.T) {
	cfg := testConfig()
	mr := miniredis.RunT(t)
	cfg.Redis = config.RedisConfig{Addr: mr.Addr(), Channel: "account_events"}
	mr.Close()

	if _, _, err := InitializeApp(cfg); err == nil {
		t.Fatal("expected redis connection error")
	}
}
