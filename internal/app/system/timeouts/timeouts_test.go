package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing {
		t.Errorf("Ping: got %v, want %v", Ping(), DefaultPing)
	}
	if Fetch() != DefaultFetch {
		t.Errorf("Fetch: got %v, want %v", Fetch(), DefaultFetch)
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(Config{Fetch: 3 * time.Second})

	got := Current()
	if got.Fetch != 3*time.Second {
		t.Errorf("Fetch: got %v, want 3s", got.Fetch)
	}
	if got.Ping != DefaultPing {
		t.Errorf("Ping should keep default, got %v", got.Ping)
	}
}
