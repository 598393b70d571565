package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("TokenTTL = %v, want %v", cfg.Auth.TokenTTL, defaultTokenTTL)
	}
	if got := cfg.Holiday.Notice(); got != 24*time.Hour {
		t.Fatalf("Holiday.Notice() = %v, want 24h", got)
	}
	if cfg.Worker.ExpirySweepInterval != defaultSweepInterval || cfg.Worker.SweepBatchSize != defaultSweepBatchSize {
		t.Fatalf("worker defaults not applied: %+v", cfg.Worker)
	}
	if cfg.PubSub == nil || cfg.Database == nil {
		t.Fatal("optional sections must not stay nil")
	}
	if cfg.Pagination.DefaultLimit != 10 || cfg.Pagination.MaxLimit != 50 {
		t.Fatalf("pagination defaults not applied: %+v", cfg.Pagination)
	}
	if cfg.Database.SlowQueryThreshold != defaultSlowQuery {
		t.Fatalf("SlowQueryThreshold = %v, want %v", cfg.Database.SlowQueryThreshold, defaultSlowQuery)
	}
}
