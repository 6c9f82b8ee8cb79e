package hints

import (
	"io"

	"go.uber.org/fx"

	"github.com/dep2p/go-transit/internal/core/metrics"
	"github.com/dep2p/go-transit/pkg/interfaces/reactor"
	"github.com/dep2p/go-transit/pkg/interfaces/tor"
)

// ServiceParams Service 依赖参数
type ServiceParams struct {
	fx.In

	Reactor reactor.Reactor

	// Tor 仅在启用 Tor 模块时提供
	Tor tor.Capability `optional:"true"`

	// Diagnostics 解析诊断输出，未提供时使用 os.Stderr
	Diagnostics io.Writer `name:"diagnostics" optional:"true"`

	// Reporter 解析指标，可选
	Reporter metrics.Reporter `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("hints",
		fx.Provide(ProvideService),
	)
}

// ProvideService 提供提示服务
func ProvideService(p ServiceParams) *Service {
	log.Debug("创建提示服务", "tor", p.Tor != nil)
	s := NewService(p.Reactor, p.Tor, p.Diagnostics)
	if p.Reporter != nil {
		s = s.WithReporter(p.Reporter)
	}
	return s
}
