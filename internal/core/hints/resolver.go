package hints

import (
	"github.com/dep2p/go-transit/internal/util/logger"
	"github.com/dep2p/go-transit/pkg/interfaces/endpoint"
	"github.com/dep2p/go-transit/pkg/interfaces/reactor"
	"github.com/dep2p/go-transit/pkg/interfaces/tor"
	"github.com/dep2p/go-transit/pkg/types"
)

var log = logger.Logger("core/hints")

// EndpointFromHint 把单个提示解析为可连接端点
//
// 决策规则：
//   - torCap 非 nil：DirectTCPV1Hint/TorTCPV1Hint 交给 torCap.StreamVia；
//     Tor 拒绝地址（非公网 IPv4、IPv6 字面量）或不可用时返回 false。
//     其他类型返回 false。
//   - torCap 为 nil：DirectTCPV1Hint 交给 r.EndpointFor；
//     其他类型（包括 TorTCPV1Hint）返回 false。
//
// RelayV1Hint 总是返回 false，调用方需先展开其内部提示再逐个解析。
// 能力实现的 panic 在此处恢复并降级为 false。
func EndpointFromHint(hint types.Hint, torCap tor.Capability, r reactor.Reactor) (ep endpoint.Endpoint, ok bool) {
	if hint == nil {
		return nil, false
	}

	defer func() {
		if p := recover(); p != nil {
			log.Warn("解析端点时能力实现 panic，已降级", "hint", hint.String(), "panic", p)
			ep, ok = nil, false
		}
	}()

	v := &resolveVisitor{tor: torCap, reactor: r}
	hint.Accept(v)
	if v.endpoint == nil {
		return nil, false
	}
	return v.endpoint, true
}

// resolveVisitor 按提示类型选择解析策略
//
// 新增提示类型时 types.HintVisitor 增加方法，这里会编译失败。
type resolveVisitor struct {
	tor      tor.Capability
	reactor  reactor.Reactor
	endpoint endpoint.Endpoint
}

var _ types.HintVisitor = (*resolveVisitor)(nil)

func (v *resolveVisitor) VisitDirectTCP(h types.DirectTCPV1Hint) {
	if v.tor != nil {
		v.viaTor(h)
		return
	}
	if v.reactor == nil {
		return
	}
	v.endpoint = v.reactor.EndpointFor(h.Hostname, h.Port)
}

func (v *resolveVisitor) VisitTorTCP(h types.TorTCPV1Hint) {
	if v.tor == nil {
		// 没有 Tor 就无法使用 Tor 提示
		return
	}
	v.viaTor(h)
}

func (v *resolveVisitor) VisitRelay(types.RelayV1Hint) {}

// viaTor 经 Tor 打开流，不支持的地址降级为无端点
func (v *resolveVisitor) viaTor(h types.TCPHint) {
	hostname, port := h.Target()
	res := v.tor.StreamVia(hostname, port)
	if !res.OK() {
		log.Debug("Tor 无法连接该地址", "hostname", hostname, "port", port, "status", res.Status.String(), "reason", res.Reason)
		return
	}
	v.endpoint = res.Endpoint
}
