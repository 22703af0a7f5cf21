package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REPORTS_PERSIST", "")
	t.Setenv("REPORTS_TABLE", "financial_reports")
	t.Setenv("CORS_ALLOWED_ORIGIN", "*")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if !cfg.Reports.Persist || cfg.Reports.TableName != "financial_reports" {
		t.Fatalf("unexpected reports config: %+v", cfg.Reports)
	}
}

func TestLoad_PersistOffWithoutEndpoint(t *testing.T) {
	t.Setenv("REPORTS_PERSIST", "")
	t.Setenv("DYNAMODB_ENDPOINT", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "*")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Reports.Persist {
		t.Fatalf("expected persistence off without DYNAMODB_ENDPOINT")
	}

	t.Setenv("REPORTS_PERSIST", "true")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Reports.Persist {
		t.Fatalf("expected explicit REPORTS_PERSIST to win")
	}
}

func TestLoad_DynamoDB(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DynamoDBConfig{Region: "us-east-1", AccessKeyID: "local", SecretAccessKey: "secret", Endpoint: "http://dynamodb:8000"}
	if cfg.DynamoDB != want {
		t.Fatalf("unexpected dynamodb config: %+v", cfg.DynamoDB)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("REPORTS_PERSIST", "off")
	t.Setenv("REPORTS_TABLE", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 3000 || cfg.Reports.Persist || cfg.CORSAllowedOrigin != "http://localhost:3000" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		t.Setenv("CORS_ALLOWED_ORIGIN", "*")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing table with persistence", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("CORS_ALLOWED_ORIGIN", "*")
		t.Setenv("REPORTS_PERSIST", "true")
		t.Setenv("REPORTS_TABLE", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
