package tor

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-transit/config"
	torif "github.com/dep2p/go-transit/pkg/interfaces/tor"
)

// CapabilityOutput Fx 输出
type CapabilityOutput struct {
	fx.Out

	SOCKS      *SOCKSCapability
	Capability torif.Capability
}

// Module 返回 Fx 模块
//
// 只应在 config.Tor.Enable 时加载；未加载时提示服务按无 Tor 处理。
func Module() fx.Option {
	return fx.Module("tor",
		fx.Provide(ProvideCapability),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideCapability 从统一配置提供 Tor 能力
func ProvideCapability(cfg *config.Config) CapabilityOutput {
	tc := config.DefaultTorConfig()
	if cfg != nil {
		tc = cfg.Tor
	}
	log.Info("启用 Tor 能力", "socks", tc.SOCKSAddr, "isolate", tc.IsolateStreams)

	c := NewSOCKSCapability(tc)
	return CapabilityOutput{SOCKS: c, Capability: c}
}

// registerLifecycle 注册生命周期钩子
func registerLifecycle(lc fx.Lifecycle, c *SOCKSCapability) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})
}
