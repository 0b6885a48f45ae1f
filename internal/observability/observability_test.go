package observability

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	t.Parallel()

	stack, err := Start(config.Config{ServiceName: "league-portal-api", AppEnv: config.EnvDev}, logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if stack.DebugAddr() != "" {
		t.Fatalf("pprof must stay off when disabled")
	}
	if err := stack.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_PprofServesIndex(t *testing.T) {
	t.Parallel()

	stack, err := Start(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := stack.Shutdown(ctx); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + stack.DebugAddr() + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof index: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from pprof index, got %d", resp.StatusCode)
	}
}

func TestStart_PprofBindFailure(t *testing.T) {
	t.Parallel()

	if _, err := Start(config.Config{PprofEnabled: true, PprofAddr: "256.0.0.1:bad"}, logging.NewNop()); err == nil {
		t.Fatalf("expected bind error for invalid address")
	}
}
