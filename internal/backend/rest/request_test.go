package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"p2pconsole/internal/backend"
	"p2pconsole/internal/logger"
)

type fakeCreds struct {
	token string
}

func (f *fakeCreds) Credential() (string, bool) {
	return f.token, f.token != ""
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "panic"})
}

func newTestClient(t *testing.T, creds backend.CredentialSource, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, creds, 5*time.Second, testLogger()), srv
}

func TestBearerAndRequestIDAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	client, _ := newTestClient(t, &fakeCreds{token: "abc"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"status":"Idle","numOrders":0,"numPayments":0}`))
	}))

	if _, err := client.Status(context.Background()); err != nil {
		t.Fatalf("Status: %v", err)
	}
	if gotAuth != "Bearer abc" {
		t.Fatalf("ожидался заголовок Bearer abc, получено %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("X-Request-ID не выставлен")
	}
}

func TestNoCredentialMeansNoRequest(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, &fakeCreds{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := client.Status(context.Background())
	if !errors.Is(err, backend.ErrNoCredential) {
		t.Fatalf("ожидался ErrNoCredential, получено %v", err)
	}
	if requests != 0 {
		t.Fatalf("без токена запросов быть не должно, было %d", requests)
	}
}

func TestHTTPErrorCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, &fakeCreds{token: "abc"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))

	_, err := client.Orders(context.Background())

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("ожидался *APIError, получено %v", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Message != "boom" {
		t.Fatalf("неожиданный APIError: %+v", apiErr)
	}
	if errors.Is(err, backend.ErrNetwork) {
		t.Fatal("серверная ошибка не должна считаться транспортной")
	}
}

func TestHTTPErrorFallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, &fakeCreds{token: "abc"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("not json"))
	}))

	_, err := client.Orders(context.Background())

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("ожидался *APIError, получено %v", err)
	}
	if apiErr.Message != http.StatusText(http.StatusServiceUnavailable) {
		t.Fatalf("ожидался текст статуса, получено %q", apiErr.Message)
	}
}

func TestUnauthorizedFlag(t *testing.T) {
	client, _ := newTestClient(t, &fakeCreds{token: "stale"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid token."}`))
	}))

	_, err := client.Status(context.Background())

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) || !apiErr.Unauthorized() {
		t.Fatalf("ожидался 401, получено %v", err)
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := New(url, &fakeCreds{token: "abc"}, time.Second, testLogger())

	_, err := client.Status(context.Background())
	if !errors.Is(err, backend.ErrNetwork) {
		t.Fatalf("ожидался ErrNetwork, получено %v", err)
	}
}

func TestLoginPostsCredentialsWithoutBearer(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	client, _ := newTestClient(t, &fakeCreds{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" || r.Method != http.MethodPost {
			t.Errorf("неожиданный запрос: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		decodeBody(t, r, &gotBody)
		w.Write([]byte(`{"token":"abc"}`))
	}))

	token, err := client.Login(context.Background(), "admin", "x")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "abc" {
		t.Fatalf("ожидался токен abc, получено %q", token)
	}
	if gotAuth != "" {
		t.Fatalf("login не должен слать bearer, получено %q", gotAuth)
	}
	if gotBody.Username != "admin" || gotBody.Password != "x" {
		t.Fatalf("тело логина искажено: %+v", gotBody)
	}
}

func TestRemoveClientPathEscaping(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, &fakeCreds{token: "abc"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"message":"removed"}`))
	}))

	msg, err := client.RemoveClient(context.Background(), "user 7")
	if err != nil {
		t.Fatalf("RemoveClient: %v", err)
	}
	if msg != "removed" {
		t.Fatalf("ожидалось сообщение removed, получено %q", msg)
	}
	if gotPath != "/api/remove-client/user%207" {
		t.Fatalf("id не экранирован: %q", gotPath)
	}
}
