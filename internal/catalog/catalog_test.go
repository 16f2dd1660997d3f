package catalog

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	appErrors "speciesfilter/internal/errors"
)

func TestParsePayload(t *testing.T) {
	t.Run("ArrayOfStrings", func(t *testing.T) {
		got, err := ParsePayload([]byte(` ["Homo sapiens", "Mus musculus"] `))
		if err != nil {
			t.Fatalf("ParsePayload returned error: %v", err)
		}
		want := []string{"Homo sapiens", "Mus musculus"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("EmptyArray", func(t *testing.T) {
		got, err := ParsePayload([]byte(`[]`))
		if err != nil {
			t.Fatalf("ParsePayload returned error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", got)
		}
	})

	rejects := []struct {
		name string
		data string
		code appErrors.Code
	}{
		{"Empty", "  ", appErrors.CodePayloadInvalid},
		{"NotJSON", `["Homo sapiens",`, appErrors.CodeParseFailed},
		{"Script", `eval("alert(1)")`, appErrors.CodeParseFailed},
		{"Object", `{"species": ["Homo sapiens"]}`, appErrors.CodePayloadInvalid},
		{"NonStringEntry", `["Homo sapiens", 42]`, appErrors.CodePayloadInvalid},
		{"NullEntry", `["Homo sapiens", null]`, appErrors.CodePayloadInvalid},
		{"Null", `null`, appErrors.CodePayloadInvalid},
	}
	for _, tc := range rejects {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePayload([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !appErrors.IsCode(err, tc.code) {
				t.Fatalf("expected code %s, got %s (%v)", tc.code, appErrors.CodeOf(err), err)
			}
		})
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "species.json")
	writeFile(t, path, `["Danio rerio","Gallus gallus"]`)

	got, err := FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Danio rerio", "Gallus gallus"}) {
		t.Fatalf("unexpected names %q", got)
	}

	_, err = FileSource{Path: filepath.Join(dir, "missing.json")}.Load(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeSourceNotFound) {
		t.Fatalf("expected source_not_found, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `[1,2,3]`)
	_, err = FileSource{Path: bad}.Load(context.Background())
	if !appErrors.IsCode(err, appErrors.CodePayloadInvalid) {
		t.Fatalf("expected payload_invalid, got %v", err)
	}
}

func TestStaticSourceCopies(t *testing.T) {
	src := StaticSource{"Rat", "Cow"}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	got[0] = "changed"
	if src[0] != "Rat" {
		t.Fatal("expected Load to return a copy")
	}
}

func TestSQLiteSource(t *testing.T) {
	dbPath := testSpeciesDB(t, "Homo sapiens", "Mus musculus", "", "Danio rerio")

	got, err := NewSQLiteSource(dbPath).Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []string{"Homo sapiens", "Mus musculus", "Danio rerio"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSQLiteSourceMissingTable(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "empty.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE other (id INTEGER)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	_ = db.Close()

	_, err = NewSQLiteSource(dbPath).Load(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeSourceReadFailed) {
		t.Fatalf("expected source_read_failed, got %v", err)
	}
}

func TestBuildSQLiteDSNIsReadOnly(t *testing.T) {
	dsn := buildSQLiteDSN("/tmp/species.db")
	if want := "file:///tmp/species.db?_busy_timeout=3000&mode=ro"; dsn != want {
		t.Fatalf("got %q, want %q", dsn, want)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "species.json")
	writeFile(t, jsonPath, `["Rat"]`)
	dbPath := testSpeciesDB(t, "Cow")

	src, err := Open(jsonPath)
	if err != nil {
		t.Fatalf("Open(json) returned error: %v", err)
	}
	if _, ok := src.(FileSource); !ok {
		t.Fatalf("expected FileSource, got %T", src)
	}

	src, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open(db) returned error: %v", err)
	}
	if _, ok := src.(*SQLiteSource); !ok {
		t.Fatalf("expected *SQLiteSource, got %T", src)
	}

	if _, err := Open(""); !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("expected configuration_error, got %v", err)
	}
	if _, err := Open(filepath.Join(dir, "nope.json")); !appErrors.IsCode(err, appErrors.CodeSourceNotFound) {
		t.Fatalf("expected source_not_found, got %v", err)
	}
	if _, err := Open(dir); !appErrors.IsCode(err, appErrors.CodeSourceUnsupported) {
		t.Fatalf("expected source_unsupported, got %v", err)
	}
}

// testSpeciesDB creates a species database holding names and returns its path.
func testSpeciesDB(t *testing.T, names ...string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "species.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if _, err := db.Exec(`CREATE TABLE species (
		production_name TEXT,
		display_name TEXT
	)`); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	for _, name := range names {
		if _, err := db.Exec(`INSERT INTO species (production_name, display_name) VALUES (?, ?)`, "", name); err != nil {
			t.Fatalf("insert %q: %v", name, err)
		}
	}
	return dbPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
