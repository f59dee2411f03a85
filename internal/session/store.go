package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store хранит единственный токен сессии в файле, переживающем перезапуск
// консоли. Записывает токен только навигационный контроллер, все остальные
// потребители ограничены интерфейсом чтения (backend.CredentialSource).
type Store struct {
	mu   sync.Mutex
	path string

	loaded     bool
	credential string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Credential возвращает токен и признак его наличия.
func (s *Store) Credential() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.load()
	}
	return s.credential, s.credential != ""
}

// SetCredential сохраняет токен на диск. Файл получает права 0600,
// токен -- такой же секрет, как ключ API.
func (s *Store) SetCredential(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		return fmt.Errorf("Пустой токен сессии.")
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("Не удалось создать каталог сессии: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("Не удалось сохранить сессию: %w", err)
	}

	s.credential = token
	s.loaded = true
	return nil
}

// ClearCredential стирает токен. Отсутствие файла ошибкой не считается.
func (s *Store) ClearCredential() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = ""
	s.loaded = true

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("Не удалось удалить файл сессии: %w", err)
	}
	return nil
}

func (s *Store) load() {
	s.loaded = true
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	s.credential = strings.TrimSpace(string(data))
}
