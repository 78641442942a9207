package firestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/config"
)

func TestConnectNotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"empty", config.Config{}},
		{"project without creds", config.Config{FirebaseProjectID: "medidash"}},
		{"creds without project", config.Config{FirebaseCredsFile: "creds.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Connect(context.Background(), tt.cfg)
			if !errors.Is(err, ErrNotConfigured) {
				t.Fatalf("Connect error = %v, want ErrNotConfigured", err)
			}
			if conn != nil {
				t.Fatalf("Connect returned a connection without configuration")
			}
		})
	}
}

func TestConnectBadCredentials(t *testing.T) {
	cfg := config.Config{FirebaseProjectID: "medidash", FirebaseCredsBase64: "not base64!"}
	if _, err := Connect(context.Background(), cfg); err == nil || errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Connect error = %v, want a credential decode error", err)
	}
}

func TestPingTimeout(t *testing.T) {
	if got := pingTimeout(0); got != defaultTimeout {
		t.Errorf("pingTimeout(0) = %v, want %v", got, defaultTimeout)
	}
	if got := pingTimeout(2 * time.Second); got != 2*time.Second {
		t.Errorf("pingTimeout(2s) = %v, want 2s", got)
	}
}
