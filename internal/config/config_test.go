package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Template.Path != "templates/Blank.xlsm" {
		t.Errorf("Template.Path = %q, want %q", cfg.Template.Path, "templates/Blank.xlsm")
	}
	if cfg.Template.SheetName != "Proposal" {
		t.Errorf("Template.SheetName = %q, want %q", cfg.Template.SheetName, "Proposal")
	}
	if cfg.Template.BodyStartRow != 27 || cfg.Template.BodyEndRow != 47 {
		t.Errorf("Template body rows = %d-%d, want 27-47", cfg.Template.BodyStartRow, cfg.Template.BodyEndRow)
	}
	if cfg.Template.ExtraBlankRows != 3 {
		t.Errorf("Template.ExtraBlankRows = %d, want %d", cfg.Template.ExtraBlankRows, 3)
	}
	if cfg.Template.TotalsLookup != "label" {
		t.Errorf("Template.TotalsLookup = %q, want %q", cfg.Template.TotalsLookup, "label")
	}
	if cfg.Output.Dir != "output" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "output")
	}
	if cfg.Output.FilePrefix != "Boyd_Proposal_" {
		t.Errorf("Output.FilePrefix = %q, want %q", cfg.Output.FilePrefix, "Boyd_Proposal_")
	}
	if cfg.Logo.AnchorCell != "B2" {
		t.Errorf("Logo.AnchorCell = %q, want %q", cfg.Logo.AnchorCell, "B2")
	}
	if cfg.Rate.RequestsPerMinute != 100 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 100)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("BOYD_TEMPLATE_PATH", "templates/Custom.xlsx")
	os.Setenv("BOYD_BODY_START_ROW", "30")
	os.Setenv("BOYD_BODY_END_ROW", "50")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("BOYD_TEMPLATE_PATH")
		os.Unsetenv("BOYD_BODY_START_ROW")
		os.Unsetenv("BOYD_BODY_END_ROW")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Template.Path != "templates/Custom.xlsx" {
		t.Errorf("Template.Path = %q, want %q", cfg.Template.Path, "templates/Custom.xlsx")
	}
	if cfg.Template.BodyStartRow != 30 {
		t.Errorf("Template.BodyStartRow = %d, want %d", cfg.Template.BodyStartRow, 30)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_Duration(t *testing.T) {
	os.Setenv("SERVER_READ_TIMEOUT", "45s")
	os.Setenv("SERVER_REQUEST_TIMEOUT", "1m30s")
	defer func() {
		os.Unsetenv("SERVER_READ_TIMEOUT")
		os.Unsetenv("SERVER_REQUEST_TIMEOUT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Server.RequestTimeout != 90*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want %v", cfg.Server.RequestTimeout, 90*time.Second)
	}
}

func TestLoad_InvalidBodyRows(t *testing.T) {
	os.Setenv("BOYD_BODY_START_ROW", "50")
	os.Setenv("BOYD_BODY_END_ROW", "40")
	defer func() {
		os.Unsetenv("BOYD_BODY_START_ROW")
		os.Unsetenv("BOYD_BODY_END_ROW")
	}()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for end row above start row")
	}
	if !contains(err.Error(), "BOYD_BODY_END_ROW") {
		t.Errorf("error should mention BOYD_BODY_END_ROW: %v", err)
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, ShutdownTimeout: time.Second},
		Template: TemplateConfig{
			Path: "templates/Blank.xlsm", SheetName: "Proposal",
			BodyStartRow: 27, BodyEndRow: 47, ExtraBlankRows: 3, TotalsLookup: "label",
		},
		Output:  OutputConfig{Dir: "output", FilePrefix: "Boyd_Proposal_"},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid port")
	}
	if !contains(err.Error(), "SERVER_PORT") {
		t.Errorf("error should mention SERVER_PORT: %v", err)
	}
}

func TestValidate_InvalidTotalsLookup(t *testing.T) {
	cfg := validConfig()
	cfg.Template.TotalsLookup = "regex"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for unknown totals lookup")
	}
	if !contains(err.Error(), "BOYD_TOTALS_LOOKUP") {
		t.Errorf("error should mention BOYD_TOTALS_LOOKUP: %v", err)
	}
}

func TestValidate_PrefixWithSeparator(t *testing.T) {
	cfg := validConfig()
	cfg.Output.FilePrefix = "../escape_"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for prefix with path separator")
	}
	if !contains(err.Error(), "BOYD_OUTPUT_PREFIX") {
		t.Errorf("error should mention BOYD_OUTPUT_PREFIX: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid log level")
	}
	if !contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("error should mention LOG_LEVEL: %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"localhost", 443, "localhost:443"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		got := cfg.Addr()
		if got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsHelper(s, substr))
}

func containsHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
