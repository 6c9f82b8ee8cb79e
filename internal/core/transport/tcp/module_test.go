package tcp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/dep2p/go-transit/config"
	"github.com/dep2p/go-transit/pkg/interfaces/reactor"
)

// TestModule 测试 Fx 模块装配与生命周期
func TestModule(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Transport = cfg.Transport.WithDialTimeout(3 * time.Second)

	var (
		r     *Reactor
		iface reactor.Reactor
	)

	app := fxtest.New(t,
		fx.WithLogger(func() fxevent.Logger { return &fxevent.ZapLogger{Logger: zap.NewNop()} }),
		fx.Supply(cfg),
		Module(),
		fx.Populate(&r, &iface),
	)
	app.RequireStart()

	require.NotNil(t, r)
	assert.Same(t, r, iface)
	assert.Equal(t, 3*time.Second, r.DialTimeout())
	assert.False(t, r.IsClosed())

	app.RequireStop()
	assert.True(t, r.IsClosed())
}

// TestProvideReactor_NilConfig 测试缺省配置
func TestProvideReactor_NilConfig(t *testing.T) {
	out := ProvideReactor(nil)
	require.NotNil(t, out.Reactor)
	assert.Equal(t, config.DefaultTransportConfig().DialTimeout.Duration(), out.Reactor.DialTimeout())
}
