package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zammmm09/StockMate/internal/application/chat"
	"github.com/Zammmm09/StockMate/internal/domain"
	apphttp "github.com/Zammmm09/StockMate/internal/interfaces/http"
)

type fakeReplier struct {
	reply  string
	err    error
	shopID string
	calls  int
}

func (f *fakeReplier) Reply(_ context.Context, shopID, _ string) (string, error) {
	f.calls++
	f.shopID = shopID
	return f.reply, f.err
}

type fakeLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allow, f.err
}

func chatApp(replier apphttp.ChatReplier, limiter apphttp.RateLimiter) *fiber.App {
	app := fiber.New()
	h := apphttp.NewChatHandler(replier, limiter, nil)
	app.Post("/api/chat", apphttp.OptionalAuth(testJWTSecret, nil), h.Send)
	return app
}

func postChat(t *testing.T, app *fiber.App, body, authHeader string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestChat_Reply(t *testing.T) {
	replier := &fakeReplier{reply: "Hello! 👋"}
	app := chatApp(replier, nil)

	status, body := postChat(t, app, `{"message":"hi"}`, bearer(t, time.Hour))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Hello! 👋", body["reply"])
	assert.Equal(t, testShopID, replier.shopID)
}

func TestChat_AnonymousCaller(t *testing.T) {
	replier := &fakeReplier{reply: "ok"}
	app := chatApp(replier, nil)

	status, _ := postChat(t, app, `{"message":"how many products"}`, "Bearer expired.or.bad")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, replier.calls)
	assert.Empty(t, replier.shopID)
}

func TestChat_MessageRequired(t *testing.T) {
	for _, body := range []string{`{}`, `{"message":""}`, `not json`} {
		t.Run(body, func(t *testing.T) {
			replier := &fakeReplier{}
			app := chatApp(replier, nil)

			status, out := postChat(t, app, body, "")

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, "Message is required", out["message"])
			assert.Zero(t, replier.calls)
		})
	}
}

func TestChat_BlankMessageFromUseCase(t *testing.T) {
	app := chatApp(&fakeReplier{err: domain.ErrInvalidInput}, nil)

	status, out := postChat(t, app, `{"message":"   "}`, "")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Message is required", out["message"])
}

func TestChat_ProcessingFailure(t *testing.T) {
	err := fmt.Errorf("%w: %v", chat.ErrProcessing, "nil map")
	app := chatApp(&fakeReplier{err: err}, nil)

	status, out := postChat(t, app, `{"message":"hi"}`, "")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Error processing your request", out["message"])
	assert.Equal(t, "nil map", out["error"])
}

func TestChat_RateLimit(t *testing.T) {
	t.Run("blocked", func(t *testing.T) {
		replier := &fakeReplier{reply: "ok"}
		limiter := &fakeLimiter{allow: false}
		app := chatApp(replier, limiter)

		status, out := postChat(t, app, `{"message":"hi"}`, bearer(t, time.Hour))

		assert.Equal(t, http.StatusTooManyRequests, status)
		assert.Equal(t, false, out["success"])
		assert.Zero(t, replier.calls)
		assert.Equal(t, []string{"chat:shop:" + testShopID}, limiter.keys)
	})

	t.Run("anonymous keyed by ip", func(t *testing.T) {
		limiter := &fakeLimiter{allow: true}
		app := chatApp(&fakeReplier{reply: "ok"}, limiter)

		status, _ := postChat(t, app, `{"message":"hi"}`, "")

		assert.Equal(t, http.StatusOK, status)
		require.Len(t, limiter.keys, 1)
		assert.True(t, strings.HasPrefix(limiter.keys[0], "chat:ip:"))
	})

	t.Run("limiter error fails open", func(t *testing.T) {
		replier := &fakeReplier{reply: "ok"}
		app := chatApp(replier, &fakeLimiter{err: errors.New("redis down")})

		status, out := postChat(t, app, `{"message":"hi"}`, "")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "ok", out["reply"])
	})
}
