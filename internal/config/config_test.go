package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "DB_DRIVER", "SQLITE_PATH", "JWT_TTL", "REDIS_DB", "CREDENTIAL_POLICY", "SUMMARY_RECENT", "IS_PROD"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()
	if cfg.AppPort != "8080" || cfg.DBDriver != "sqlite" || cfg.SQLitePath != "budget.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.JWTTTL != 24*time.Hour || cfg.SummaryRecent != 5 || cfg.CredentialPolicy != "bcrypt" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.IsProd {
		t.Fatal("IsProd should default to false")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "budget")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()
	if got, want := cfg.MySQLDSN(), "u:p@tcp(db:3306)/budget?parseTime=true"; got != want {
		t.Fatalf("MySQLDSN=%q want %q", got, want)
	}
	if cfg.JWTTTL != 90*time.Minute || cfg.RedisDB != 3 || !cfg.IsProd {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	base := Config{JWTSecret: "s", DBDriver: "sqlite", CredentialPolicy: "bcrypt", SummaryRecent: 5}
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"missing secret", func(c *Config) { c.JWTSecret = "" }, false},
		{"unknown driver", func(c *Config) { c.DBDriver = "postgres" }, false},
		{"unknown policy", func(c *Config) { c.CredentialPolicy = "md5" }, false},
		{"negative recent", func(c *Config) { c.SummaryRecent = -1 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
