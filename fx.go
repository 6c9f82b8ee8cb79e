package transit

import (
	"fmt"
	"io"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-transit/config"
	"github.com/dep2p/go-transit/internal/core/hints"
	"github.com/dep2p/go-transit/internal/core/metrics"
	torcore "github.com/dep2p/go-transit/internal/core/tor"
	"github.com/dep2p/go-transit/internal/core/transport/tcp"
	"github.com/dep2p/go-transit/pkg/interfaces/reactor"
	"github.com/dep2p/go-transit/pkg/interfaces/tor"
)

// buildFxApp 构建 Fx 应用
//
// 条件加载：
//   - Reactor: 自定义实现或 tcp.Module
//   - Tor: 自定义实现，或 Tor 启用时加载 torcore.Module，否则不提供
//   - metrics.Module、hints.Module 始终加载，Tor 能力可选注入
func buildFxApp(o *options, cfg *config.Config, t *Transit) (*fx.App, error) {
	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置验证（前置）
	// ════════════════════════════════════════════════════════════════════════
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	diagnostics := o.diagnosticsWriter(cfg)

	modules := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),

		// 配置注入
		fx.Supply(cfg),
		fx.Provide(fx.Annotate(
			func() io.Writer { return diagnostics },
			fx.ResultTags(`name:"diagnostics"`),
		)),
	}

	// ════════════════════════════════════════════════════════════════════════
	// 2. 直连端点
	// ════════════════════════════════════════════════════════════════════════
	if o.reactor != nil {
		r := o.reactor
		modules = append(modules, fx.Provide(func() reactor.Reactor { return r }))
	} else {
		modules = append(modules, tcp.Module())
	}

	// ════════════════════════════════════════════════════════════════════════
	// 3. Tor 能力（条件加载）
	// ════════════════════════════════════════════════════════════════════════
	switch {
	case o.torCapability != nil:
		c := o.torCapability
		modules = append(modules, fx.Provide(func() tor.Capability { return c }))
	case cfg.Tor.Enable:
		modules = append(modules, torcore.Module())
	}

	// ════════════════════════════════════════════════════════════════════════
	// 4. 提示服务与指标
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		metrics.Module,
		hints.Module(),
		fx.Populate(&t.service, &t.reporter),
	)

	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		return nil, err
	}

	log.Debug("Fx 应用已构建", "tor", cfg.Tor.Enable, "customReactor", o.reactor != nil)
	return app, nil
}
