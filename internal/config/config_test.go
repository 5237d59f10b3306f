package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("UPSTREAM_BASE_URL")
	os.Unsetenv("ENV")
	os.Unsetenv("PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
	if cfg.UpstreamBaseURL != devUpstreamBaseURL {
		t.Errorf("expected dev upstream default, got %q", cfg.UpstreamBaseURL)
	}
	if cfg.UpstreamTimeout != 10 {
		t.Errorf("expected default timeout 10, got %d", cfg.UpstreamTimeout)
	}
}

func TestLoad_RequiresUpstreamOutsideDev(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Unsetenv("UPSTREAM_BASE_URL")
	defer os.Unsetenv("ENV")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when UPSTREAM_BASE_URL is unset in production")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Setenv("UPSTREAM_BASE_URL", "https://api.hospital.example/api")
	os.Setenv("PORT", "8443")
	defer func() {
		os.Unsetenv("ENV")
		os.Unsetenv("UPSTREAM_BASE_URL")
		os.Unsetenv("PORT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UpstreamBaseURL != "https://api.hospital.example/api" {
		t.Errorf("unexpected upstream URL %q", cfg.UpstreamBaseURL)
	}
	if cfg.Port != "8443" {
		t.Errorf("unexpected port %q", cfg.Port)
	}
	if !cfg.SecureCookies() {
		t.Error("expected secure cookies outside development")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid http", Config{UpstreamBaseURL: "http://localhost:8080/api", UpstreamTimeout: 10}, false},
		{"valid https", Config{UpstreamBaseURL: "https://api.example.com/api", UpstreamTimeout: 5}, false},
		{"bad scheme", Config{UpstreamBaseURL: "ftp://example.com", UpstreamTimeout: 10}, true},
		{"no host", Config{UpstreamBaseURL: "http://", UpstreamTimeout: 10}, true},
		{"zero timeout", Config{UpstreamBaseURL: "http://localhost:8080", UpstreamTimeout: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSecureCookies_DevExempt(t *testing.T) {
	dev := Config{Env: "development"}
	if dev.SecureCookies() {
		t.Error("development should not require secure cookies")
	}
	staging := Config{Env: "staging"}
	if !staging.SecureCookies() {
		t.Error("non-development environments should require secure cookies")
	}
}
