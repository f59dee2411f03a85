package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"p2pconsole/internal/models"
)

// Локальная заглушка бэкенда для ручной обкатки консоли: тот же контракт
// эндпоинтов, что у боевого бэкенда, но всё состояние в памяти и вместо
// торговли -- имитация цикла. Для разработки, не для эксплуатации.
type stubState struct {
	mu sync.Mutex

	token    string
	status   string
	lastRun  string
	orders   []models.Order
	payments []models.Payment
	clients  []models.Client
	logs     []string
	config   map[string]any

	stopCh chan struct{}
}

type server struct {
	state    *stubState
	username string
	hash     []byte
}

func main() {
	addr := flag.String("addr", ":5000", "адрес HTTP-сервера")
	username := flag.String("user", "admin", "логин администратора")
	hash := flag.String("hash", "", "bcrypt-хэш пароля (пусто -- пароль admin)")
	flag.Parse()

	passwordHash := []byte(*hash)
	if len(passwordHash) == 0 {
		generated, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("не удалось построить хэш: %v", err)
		}
		passwordHash = generated
	}

	srv := &server{
		state:    newStubState(),
		username: *username,
		hash:     passwordHash,
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/login", srv.handleLogin).Methods(http.MethodPost)

	authed := router.NewRoute().Subrouter()
	authed.Use(srv.requireAuth)
	authed.HandleFunc("/api/logout", srv.handleLogout).Methods(http.MethodPost)
	authed.HandleFunc("/api/status", srv.handleStatus).Methods(http.MethodGet)
	authed.HandleFunc("/api/logs", srv.handleLogs).Methods(http.MethodGet)
	authed.HandleFunc("/api/orders", srv.handleOrders).Methods(http.MethodGet)
	authed.HandleFunc("/api/payments", srv.handlePayments).Methods(http.MethodGet)
	authed.HandleFunc("/api/clients", srv.handleClients).Methods(http.MethodGet)
	authed.HandleFunc("/api/add-client", srv.handleAddClient).Methods(http.MethodPost)
	authed.HandleFunc("/api/remove-client/{id}", srv.handleRemoveClient).Methods(http.MethodDelete)
	authed.HandleFunc("/api/config", srv.handleConfig).Methods(http.MethodGet, http.MethodPost)
	authed.HandleFunc("/api/trigger-bot-run", srv.handleTrigger).Methods(http.MethodPost)
	authed.HandleFunc("/api/stop-bot", srv.handleStop).Methods(http.MethodPost)

	log.Printf("Заглушка бэкенда на %s (логин %s)", *addr, *username)
	log.Fatal(http.ListenAndServe(*addr, router))
}

func newStubState() *stubState {
	return &stubState{
		status: "Idle",
		clients: []models.Client{
			{ID: "user1", Name: "Kuda Client A", AccountNumber: "1234567890", BankCode: "50211", Amount: decimal.NewFromInt(5000)},
		},
		config: map[string]any{
			"bybitApiKey":           "bybit...",
			"bybitApiSecret":        "secre...",
			"paystackSecretKey":     "sk_li...",
			"runIntervalMinutes":    5,
			"email_alerts_enabled":  false,
			"email_username":        "",
			"alert_recipient_email": "",
		},
		logs: []string{"stubbot запущен"},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// Любой бизнес-эндпоинт требует bearer -- заглушка закрепляет политику
// "токен обязателен всегда".
func (s *server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")

		s.state.mu.Lock()
		valid := found && s.state.token != "" && token == s.state.token
		s.state.mu.Unlock()

		if !valid {
			writeMessage(w, http.StatusUnauthorized, "Invalid token.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if creds.Username != s.username ||
		bcrypt.CompareHashAndPassword(s.hash, []byte(creds.Password)) != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	token := uuid.New().String()
	s.state.mu.Lock()
	s.state.token = token
	s.state.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	s.state.token = ""
	s.state.mu.Unlock()
	writeMessage(w, http.StatusOK, "Logged out.")
}

func (s *server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	lastRun := s.state.lastRun
	if lastRun == "" {
		lastRun = "N/A"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      s.state.status,
		"lastRunTime": lastRun,
		"numOrders":   len(s.state.orders),
		"numPayments": len(s.state.payments),
		"running":     s.state.stopCh != nil,
	})
}

func (s *server) handleLogs(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	writeJSON(w, http.StatusOK, s.state.logs)
}

func (s *server) handleOrders(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	writeJSON(w, http.StatusOK, s.state.orders)
}

func (s *server) handlePayments(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	writeJSON(w, http.StatusOK, s.state.payments)
}

func (s *server) handleClients(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	writeJSON(w, http.StatusOK, s.state.clients)
}

func (s *server) handleAddClient(w http.ResponseWriter, r *http.Request) {
	var client models.NewClient
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if client.Name == "" || client.AccountNumber == "" || client.BankCode == "" {
		writeMessage(w, http.StatusBadRequest, "Missing or invalid client data (requires name, account, bank, amount)")
		return
	}

	s.state.mu.Lock()
	id := fmt.Sprintf("user_%d_%d", len(s.state.clients)+1, time.Now().Unix())
	s.state.clients = append(s.state.clients, models.Client{
		ID:            id,
		Name:          client.Name,
		AccountNumber: client.AccountNumber,
		BankCode:      client.BankCode,
		Amount:        client.Amount,
	})
	s.state.mu.Unlock()

	writeMessage(w, http.StatusCreated, "Client added successfully")
}

func (s *server) handleRemoveClient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.state.mu.Lock()
	kept := s.state.clients[:0]
	removed := false
	for _, client := range s.state.clients {
		if client.ID == id {
			removed = true
			continue
		}
		kept = append(kept, client)
	}
	s.state.clients = kept
	s.state.mu.Unlock()

	if !removed {
		writeMessage(w, http.StatusNotFound, "Client not found")
		return
	}
	writeMessage(w, http.StatusOK, "Client removed successfully")
}

func (s *server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.state.mu.Lock()
		defer s.state.mu.Unlock()
		writeJSON(w, http.StatusOK, s.state.config)
		return
	}

	var update map[string]any
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	s.state.mu.Lock()
	for key, value := range update {
		s.state.config[key] = value
	}
	s.state.mu.Unlock()

	writeMessage(w, http.StatusOK, "Configuration updated and saved.")
}

func (s *server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	if s.state.stopCh != nil {
		s.state.mu.Unlock()
		writeMessage(w, http.StatusConflict, "Bot is already running or stopping. Please wait.")
		return
	}
	stopCh := make(chan struct{})
	s.state.stopCh = stopCh
	s.state.status = "Running"
	s.state.mu.Unlock()

	go s.runLoop(stopCh)
	writeMessage(w, http.StatusOK, "Bot run initiated successfully in background!")
}

func (s *server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	if s.state.stopCh == nil {
		s.state.mu.Unlock()
		writeMessage(w, http.StatusBadRequest, "Bot is not currently running or is already stopped.")
		return
	}
	close(s.state.stopCh)
	s.state.stopCh = nil
	s.state.status = "Stopping..."
	s.state.mu.Unlock()

	writeMessage(w, http.StatusOK, "Stop signal sent to bot. It will halt shortly.")
}

// runLoop имитирует цикл бота: раз в несколько секунд появляется ордер,
// платёж и строка лога, пока не придёт стоп.
func (s *server) runLoop(stopCh chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	cycle := 0
	for {
		select {
		case <-stopCh:
			s.state.mu.Lock()
			s.state.status = "Stopped"
			s.state.lastRun = time.Now().Format(time.RFC3339)
			s.state.logs = append(s.state.logs, "бот остановлен оператором")
			s.state.mu.Unlock()
			return
		case <-ticker.C:
			cycle++
			now := time.Now()
			s.state.mu.Lock()
			s.state.status = "Running (Processing Offers)"
			s.state.lastRun = now.Format(time.RFC3339)
			s.state.orders = append(s.state.orders, models.Order{
				ID:             uuid.New().String()[:8],
				ClientName:     "Bybit Seller",
				AmountFiat:     decimal.NewFromInt(5000),
				AmountCrypto:   decimal.NewFromFloat(3.2),
				SellerNickname: fmt.Sprintf("seller-%d", cycle),
				Status:         "Completed & Crypto Released",
				Timestamp:      now,
			})
			s.state.payments = append(s.state.payments, models.Payment{
				ID:         uuid.New().String()[:8],
				ClientName: "Kuda Client A",
				Amount:     decimal.NewFromInt(5000),
				Bank:       "50211",
				Status:     "Success",
				Timestamp:  now,
			})
			s.state.logs = append(s.state.logs, fmt.Sprintf("цикл %d завершён", cycle))
			if len(s.state.logs) > 500 {
				s.state.logs = s.state.logs[1:]
			}
			s.state.mu.Unlock()
		}
	}
}
