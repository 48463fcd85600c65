package kvstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenSQLite_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpenSQLite_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("OpenSQLite() iteration %d failed: %v", i, err)
		}
		s.Close()
	}
}

func TestOpenSQLite_InvalidPath(t *testing.T) {
	_, err := OpenSQLite("/nonexistent/dir/test.db")
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestSQLite_SetGetRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer s.Close()

	if _, ok, _ := s.Get("k"); ok {
		t.Error("missing key should report ok=false")
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite Set() failed: %v", err)
	}

	v, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || v != "v2" {
		t.Errorf("Get() = %q, %v; want %q, true", v, ok, "v2")
	}

	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("removed key should report ok=false")
	}
	if err := s.Remove("k"); err != nil {
		t.Errorf("removing a missing key should be a no-op: %v", err)
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("first OpenSQLite() failed: %v", err)
	}
	if err := s1.Set("localbase:materials", `[{"id":"m1"}]`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	s1.Close()

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("second OpenSQLite() failed: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.Get("localbase:materials")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || v != `[{"id":"m1"}]` {
		t.Errorf("value did not survive reopen: %q, %v", v, ok)
	}
}

func TestSQLite_Keys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer s.Close()

	for _, k := range []string{"localbase:units", "localbase:materials", "other:key"} {
		if err := s.Set(k, "[]"); err != nil {
			t.Fatalf("Set(%q) failed: %v", k, err)
		}
	}

	keys, err := s.Keys("localbase:")
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	want := []string{"localbase:materials", "localbase:units"}
	if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestSQLite_CloseNilDB(t *testing.T) {
	s := &SQLite{db: nil}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}
