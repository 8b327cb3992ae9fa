package config

import (
	"reflect"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.ServerPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.ServerPort)
	}
	if cfg.RecordsDB.DBName != "people_db" {
		t.Fatalf("unexpected records db name: %q", cfg.RecordsDB.DBName)
	}
	if cfg.UsersDB.DBName != "users_db" {
		t.Fatalf("unexpected users db name: %q", cfg.UsersDB.DBName)
	}
	if cfg.Upload.Backend != BackendFilesystem {
		t.Fatalf("unexpected upload backend: %q", cfg.Upload.Backend)
	}
	if cfg.Upload.Root != "static/images" {
		t.Fatalf("unexpected upload root: %q", cfg.Upload.Root)
	}
	if cfg.Upload.MaxBytes != 16<<20 {
		t.Fatalf("unexpected max upload bytes: %d", cfg.Upload.MaxBytes)
	}
	want := []string{"png", "jpg", "jpeg", "gif"}
	if !reflect.DeepEqual(cfg.Upload.AllowedExtensions, want) {
		t.Fatalf("unexpected allowed extensions: %v", cfg.Upload.AllowedExtensions)
	}
}

func TestLoadConfigUsersDBFollowsRecordsDB(t *testing.T) {
	t.Setenv("RECORDS_DB_HOST", "db.internal")
	t.Setenv("RECORDS_DB_PORT", "5433")

	cfg := LoadConfig()
	if cfg.UsersDB.Host != "db.internal" || cfg.UsersDB.Port != 5433 {
		t.Fatalf("users db should default onto records db server: %+v", cfg.UsersDB)
	}
	if cfg.UsersDB.DBName == cfg.RecordsDB.DBName {
		t.Fatalf("users db must stay a separate logical database")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("UPLOAD_BACKEND", "minio")
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")
	t.Setenv("UPLOAD_ALLOWED_EXTENSIONS", "png, webp")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := LoadConfig()
	if cfg.Upload.Backend != BackendMinio {
		t.Fatalf("unexpected backend: %q", cfg.Upload.Backend)
	}
	if cfg.Upload.MaxBytes != 1048576 {
		t.Fatalf("unexpected max bytes: %d", cfg.Upload.MaxBytes)
	}
	if !reflect.DeepEqual(cfg.Upload.AllowedExtensions, []string{"png", "webp"}) {
		t.Fatalf("unexpected extensions: %v", cfg.Upload.AllowedExtensions)
	}
	if !cfg.Minio.UseSSL {
		t.Fatalf("expected minio ssl enabled")
	}
}
