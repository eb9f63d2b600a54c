package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/service"
)

// storeContract runs the shared ScoreStore behavior against a fresh store
func storeContract(t *testing.T, open func(t *testing.T) ScoreStore) {
	t.Run("empty loads zero", func(t *testing.T) {
		s := open(t)
		defer s.Close()
		got, err := s.Load()
		if err != nil || got != 0 {
			t.Errorf("Load = %d,%v want 0,nil", got, err)
		}
	})

	t.Run("save keeps maximum", func(t *testing.T) {
		s := open(t)
		defer s.Close()
		for _, score := range []int{3, 7, 5, 0} {
			if err := s.Save(score); err != nil {
				t.Fatalf("Save(%d): %v", score, err)
			}
		}
		if got, _ := s.Load(); got != 7 {
			t.Errorf("Load = %d, want 7", got)
		}
	})

	t.Run("closed", func(t *testing.T) {
		s := open(t)
		s.Close()
		if _, err := s.Load(); !errors.Is(err, ErrClosed) {
			t.Errorf("Load after Close = %v, want ErrClosed", err)
		}
		if err := s.Save(1); !errors.Is(err, ErrClosed) {
			t.Errorf("Save after Close = %v, want ErrClosed", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, func(t *testing.T) ScoreStore { return NewMemoryStore() })
}

func TestJSONStore(t *testing.T) {
	storeContract(t, func(t *testing.T) ScoreStore {
		s, err := NewJSONStore(filepath.Join(t.TempDir(), "scores.json"))
		if err != nil {
			t.Fatalf("NewJSONStore: %v", err)
		}
		return s
	})
}

func TestJSONStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")

	s, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("store file not created: %v", err)
	}
	if err := s.Save(12); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Close()

	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), `"HighScore": 12`) {
		t.Errorf("file content = %s", raw)
	}

	reopened, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if got, _ := reopened.Load(); got != 12 {
		t.Errorf("Load after reopen = %d, want 12", got)
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	os.WriteFile(path, []byte("{not json"), 0644)

	if _, err := NewJSONStore(path); err == nil {
		t.Error("corrupt file should fail to open")
	}
}

func TestJSONStoreConcurrentSave(t *testing.T) {
	s, err := NewJSONStore(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	defer s.Close()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			s.Save(v)
		}(i)
	}
	wg.Wait()

	if got, _ := s.Load(); got != 20 {
		t.Errorf("Load = %d, want 20", got)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	s, err := Open(config.Store{Backend: config.BackendMemory})
	if err != nil {
		t.Fatalf("Open memory: %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("memory backend = %T", s)
	}

	s, err = Open(config.Store{Backend: config.BackendJSON, Path: filepath.Join(t.TempDir(), "s.json")})
	if err != nil {
		t.Fatalf("Open json: %v", err)
	}
	if _, ok := s.(*JSONStore); !ok {
		t.Errorf("json backend = %T", s)
	}

	if _, err := Open(config.Store{Backend: "redis"}); err == nil {
		t.Error("unknown backend should fail")
	}
}

// Requires a reachable database, e.g. SNAKE_TEST_DATABASE_URL=postgres://localhost/snake?sslmode=disable
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("SNAKE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("SNAKE_TEST_DATABASE_URL not set")
	}

	storeContract(t, func(t *testing.T) ScoreStore {
		s, err := NewPostgresStore(dsn)
		if err != nil {
			t.Fatalf("NewPostgresStore: %v", err)
		}
		if _, err := s.db.Exec(`DELETE FROM scores`); err != nil {
			t.Fatalf("reset table: %v", err)
		}
		return s
	})
}

func TestPostgresStoreUnreachable(t *testing.T) {
	_, err := NewPostgresStore("postgres://snake@127.0.0.1:1/snake?sslmode=disable&connect_timeout=1")
	if err == nil {
		t.Error("unreachable database should fail to open")
	}
}

func TestServiceFallsBackToMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = config.BackendPostgres
	cfg.Store.DatabaseURL = "postgres://snake@127.0.0.1:1/snake?sslmode=disable&connect_timeout=1"

	svc := NewService()
	if err := svc.Init(&service.Env{Config: cfg}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !svc.Fallback() {
		t.Error("expected fallback")
	}
	if _, ok := svc.Store().(*MemoryStore); !ok {
		t.Errorf("store = %T, want *MemoryStore", svc.Store())
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}

func TestServiceOpensJSON(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Path = filepath.Join(t.TempDir(), "scores.json")

	svc := NewService()
	svc.Init(&service.Env{Config: cfg})
	if svc.Fallback() {
		t.Fatal("json store should open")
	}
	svc.Store().Save(4)
	svc.Stop()

	reopened, _ := NewJSONStore(cfg.Store.Path)
	if got, _ := reopened.Load(); got != 4 {
		t.Errorf("persisted = %d, want 4", got)
	}
}
