package discovery

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/config"
	"splitwise-platform/internal/infrastructure/logger"
	"splitwise-platform/internal/utils"

	"github.com/stretchr/testify/require"
)

type fakeRegistrar struct {
	mu          sync.Mutex
	registerErr error
	renewErrs   []error
	registers   int
	renews      int
	cancels     int
	lastID      string
}

func (f *fakeRegistrar) Register(_ context.Context, inst *models.Instance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registers++
	f.lastID = inst.InstanceID
	return f.registerErr
}

func (f *fakeRegistrar) Renew(context.Context, string, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renews++
	if len(f.renewErrs) > 0 {
		err := f.renewErrs[0]
		f.renewErrs = f.renewErrs[1:]
		return err
	}
	return nil
}

func (f *fakeRegistrar) Cancel(context.Context, string, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	return nil
}

func (f *fakeRegistrar) snapshot() (int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registers, f.renews, f.cancels
}

func TestAgent_HeartbeatReRegisterAndCancel(t *testing.T) {
	reg := &fakeRegistrar{renewErrs: []error{utils.ErrInstanceNotFound}}
	a := NewAgent(reg, &models.Instance{App: "user-service", HostName: "user-svc", Port: 8081}, 5*time.Millisecond, logger.New("test"))
	require.Contains(t, a.InstanceID(), "user-svc:user-service:8081:")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, renews, _ := reg.snapshot()
		return renews >= 3
	}, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("agent did not stop")
	}

	registers, _, cancels := reg.snapshot()
	require.Equal(t, 2, registers)
	require.Equal(t, 1, cancels)
	require.Equal(t, a.InstanceID(), reg.lastID)
}

func TestAgent_RegistrationGivesUpWithContext(t *testing.T) {
	reg := &fakeRegistrar{registerErr: errors.New("connection refused")}
	a := NewAgent(reg, &models.Instance{InstanceID: "x", App: "api-gateway", HostName: "gw", Port: 8080}, time.Second, logger.New("test"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := a.Run(ctx)
	require.Error(t, err)
	registers, renews, cancels := reg.snapshot()
	require.GreaterOrEqual(t, registers, 1)
	require.Zero(t, renews)
	require.Zero(t, cancels)
}

func TestSelfInstance(t *testing.T) {
	cfg := &config.Config{Env: "dev", ServiceName: "USER-SERVICE"}
	cfg.HTTPServer.Port = 8081
	cfg.Discovery.InstanceHost = "user-svc"
	cfg.Discovery.LeaseDuration = 90 * time.Second

	inst := SelfInstance(cfg)
	require.Equal(t, "USER-SERVICE", inst.App)
	require.Equal(t, "user-svc", inst.HostName)
	require.Equal(t, 8081, inst.Port)
	require.Equal(t, models.StatusUp, inst.Status)
	require.Equal(t, 90*time.Second, inst.LeaseDuration)
	require.Equal(t, "dev", inst.Metadata["env"])

	cfg.Discovery.InstanceHost = ""
	require.NotEmpty(t, SelfInstance(cfg).HostName)
}
