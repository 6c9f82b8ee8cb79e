package tcp

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-transit/config"
	"github.com/dep2p/go-transit/pkg/interfaces/reactor"
)

// ReactorOutput Fx 输出
type ReactorOutput struct {
	fx.Out

	Reactor   *Reactor
	Interface reactor.Reactor
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("transport/tcp",
		fx.Provide(ProvideReactor),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideReactor 从统一配置提供 Reactor
func ProvideReactor(cfg *config.Config) ReactorOutput {
	tc := defaultTransportConfig()
	if cfg != nil {
		tc = cfg.Transport
	}
	log.Debug("创建 TCP reactor", "dialTimeout", tc.DialTimeout.String(), "noDelay", tc.NoDelay)

	r := NewReactor(tc)
	return ReactorOutput{Reactor: r, Interface: r}
}

// registerLifecycle 注册生命周期钩子
func registerLifecycle(lc fx.Lifecycle, r *Reactor) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return r.Close()
		},
	})
}

func defaultTransportConfig() config.TransportConfig {
	return config.DefaultTransportConfig()
}
