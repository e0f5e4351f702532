package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Ledger.DefaultSharedFundPercent != 10 || cfg.Ledger.DefaultPastoralTeamPercent != 10 || cfg.Ledger.DefaultOperationalPercent != 80 {
		t.Errorf("default split = %+v, want 10/10/80", cfg.Ledger)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("redis should be disabled by default, got %q", cfg.Redis.URL)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SPLIT_CACHE_TTL", "30s")
	t.Setenv("DEFAULT_SHARED_FUND_PERCENT", "12.5")
	t.Setenv("FORM_RELAY_TOKEN", "relay-secret")
	t.Setenv("ENV", "production")

	cfg := Load()

	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Redis.SplitCacheTTL != 30*time.Second {
		t.Errorf("ttl = %s, want 30s", cfg.Redis.SplitCacheTTL)
	}
	if cfg.Ledger.DefaultSharedFundPercent != 12.5 {
		t.Errorf("shared = %v, want 12.5", cfg.Ledger.DefaultSharedFundPercent)
	}
	if cfg.Intake.RelayToken != "relay-secret" {
		t.Errorf("relay token = %q", cfg.Intake.RelayToken)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("SPLIT_CACHE_TTL", "forever")
	t.Setenv("DEFAULT_OPERATIONAL_PERCENT", "eighty")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want fallback 8080", cfg.Server.Port)
	}
	if cfg.Redis.SplitCacheTTL != 10*time.Minute {
		t.Errorf("ttl = %s, want fallback 10m", cfg.Redis.SplitCacheTTL)
	}
	if cfg.Ledger.DefaultOperationalPercent != 80 {
		t.Errorf("operational = %v, want fallback 80", cfg.Ledger.DefaultOperationalPercent)
	}
}
