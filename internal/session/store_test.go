package session

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "session.token"))
}

func TestCredentialAbsentByDefault(t *testing.T) {
	store := newTestStore(t)

	if token, ok := store.Credential(); ok || token != "" {
		t.Fatalf("ожидался пустой стор, получено %q", token)
	}
}

func TestSetAndGetCredential(t *testing.T) {
	store := newTestStore(t)

	if err := store.SetCredential("abc"); err != nil {
		t.Fatalf("SetCredential: %v", err)
	}

	token, ok := store.Credential()
	if !ok || token != "abc" {
		t.Fatalf("ожидался токен abc, получено %q (ok=%v)", token, ok)
	}
}

func TestCredentialSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.token")

	first := New(path)
	if err := first.SetCredential("abc"); err != nil {
		t.Fatalf("SetCredential: %v", err)
	}

	// Новый стор по тому же пути -- аналог перезапуска консоли.
	second := New(path)
	token, ok := second.Credential()
	if !ok || token != "abc" {
		t.Fatalf("токен не пережил перезапуск: %q (ok=%v)", token, ok)
	}
}

func TestClearCredential(t *testing.T) {
	store := newTestStore(t)

	if err := store.SetCredential("abc"); err != nil {
		t.Fatalf("SetCredential: %v", err)
	}
	if err := store.ClearCredential(); err != nil {
		t.Fatalf("ClearCredential: %v", err)
	}

	if _, ok := store.Credential(); ok {
		t.Fatal("токен остался после ClearCredential")
	}
}

func TestClearWithoutFile(t *testing.T) {
	store := newTestStore(t)

	if err := store.ClearCredential(); err != nil {
		t.Fatalf("ClearCredential по отсутствующему файлу: %v", err)
	}
}

// Для любой последовательности login→logout→login в сторе лежит токен
// последнего успешного входа, а после logout -- ничего.
func TestLoginLogoutLoginSequence(t *testing.T) {
	store := newTestStore(t)

	if err := store.SetCredential("first"); err != nil {
		t.Fatalf("SetCredential: %v", err)
	}
	if err := store.ClearCredential(); err != nil {
		t.Fatalf("ClearCredential: %v", err)
	}
	if _, ok := store.Credential(); ok {
		t.Fatal("токен присутствует после logout")
	}
	if err := store.SetCredential("second"); err != nil {
		t.Fatalf("SetCredential: %v", err)
	}

	token, ok := store.Credential()
	if !ok || token != "second" {
		t.Fatalf("ожидался токен последнего входа, получено %q", token)
	}
}

func TestSessionFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.token")
	store := New(path)

	if err := store.SetCredential("abc"); err != nil {
		t.Fatalf("SetCredential: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("ожидались права 0600, получено %o", perm)
	}
}

func TestEmptyTokenRejected(t *testing.T) {
	store := newTestStore(t)

	if err := store.SetCredential(""); err == nil {
		t.Fatal("пустой токен должен отклоняться")
	}
}
