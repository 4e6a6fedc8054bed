package http_test

import (
	"testing"

	"storyweaver/internal/platform/config"
	phttp "storyweaver/internal/platform/net/http"
)

func TestNewServerReadsScopedPort(t *testing.T) {
	t.Setenv("CORE_API_PORT", ":6001")

	srv := phttp.NewServer(config.New().Prefix("CORE_API_"))
	if srv.Addr() != ":6001" {
		t.Fatalf("addr = %q, want :6001", srv.Addr())
	}
}

func TestNewServerDefaultsPort(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("TEST_UNSET_API_"))
	if srv.Addr() != ":5000" {
		t.Fatalf("addr = %q, want :5000", srv.Addr())
	}
}
