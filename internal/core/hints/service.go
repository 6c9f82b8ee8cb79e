package hints

import (
	"io"

	"github.com/dep2p/go-transit/internal/core/metrics"
	"github.com/dep2p/go-transit/pkg/interfaces/endpoint"
	"github.com/dep2p/go-transit/pkg/interfaces/reactor"
	"github.com/dep2p/go-transit/pkg/interfaces/tor"
	"github.com/dep2p/go-transit/pkg/types"
)

// ============================================================================
//                              Candidate
// ============================================================================

// Candidate 一个已解析、可尝试连接的候选
type Candidate struct {
	// Hint 候选对应的 TCP 提示（中继提示已展开）
	Hint types.TCPHint

	// Endpoint 可连接端点
	Endpoint endpoint.Endpoint

	// Description 描述，见 Describe
	Description string

	// ViaRelay 是否来自中继提示
	ViaRelay bool

	// Group 候选组编号：同一中继提示展开的候选共享编号，
	// 调用方每组最多需要一个连接成功，组内按顺序表示偏好
	Group int
}

// ============================================================================
//                              Service
// ============================================================================

// Service 绑定一组能力（可选的 Tor、Reactor）和诊断输出的提示服务
//
// Service 创建后不再修改，可并发使用。
type Service struct {
	tor      tor.Capability
	reactor  reactor.Reactor
	parser   *Parser
	reporter metrics.Reporter
}

// NewService 创建提示服务
//
// torCap 为 nil 表示不使用 Tor；diagnostics 为 nil 时诊断写入 os.Stderr。
func NewService(r reactor.Reactor, torCap tor.Capability, diagnostics io.Writer) *Service {
	return &Service{
		tor:     torCap,
		reactor: r,
		parser:  NewParser(diagnostics),
	}
}

// WithReporter 返回使用 r 记录解析指标的副本
func (s *Service) WithReporter(r metrics.Reporter) *Service {
	c := *s
	c.reporter = r
	return &c
}

// TorEnabled 是否通过 Tor 解析提示
func (s *Service) TorEnabled() bool {
	return s.tor != nil
}

// Parse 解析单个命令行提示
func (s *Service) Parse(text string) (types.DirectTCPV1Hint, bool) {
	h, ok := s.parser.Parse(text)
	if s.reporter != nil {
		s.reporter.LogParse(ok)
	}
	return h, ok
}

// ParseAll 批量解析命令行提示，跳过无法解析的条目
func (s *Service) ParseAll(texts []string) []types.DirectTCPV1Hint {
	out := make([]types.DirectTCPV1Hint, 0, len(texts))
	for _, text := range texts {
		if h, ok := s.Parse(text); ok {
			out = append(out, h)
		}
	}
	return out
}

// Describe 描述提示，是否经 Tor 由服务的能力集决定
func (s *Service) Describe(h types.Hint, viaRelay bool) string {
	return Describe(h, viaRelay, s.TorEnabled())
}

// Resolve 把单个提示解析为端点
func (s *Service) Resolve(h types.Hint) (endpoint.Endpoint, bool) {
	ep, ok := EndpointFromHint(h, s.tor, s.reactor)
	if s.reporter != nil && h != nil {
		s.reporter.LogResolve(h.Type(), ok)
	}
	return ep, ok
}

// Plan 把一组提示规划为可尝试的候选
//
// 提示先按结构去重；直连/Tor 提示按输入顺序排在前面，各自成组；
// 中继提示随后展开，其内部提示共享一个组并保持广播方给出的顺序。
// 无法解析的提示被跳过。
func (s *Service) Plan(hints []types.Hint) []Candidate {
	set := types.NewHintSet(hints...)

	var (
		direct []Candidate
		relay  []Candidate
		group  int
	)

	for _, h := range set.Hints() {
		th, isTCP := h.(types.TCPHint)
		if !isTCP {
			continue
		}
		if c, ok := s.candidate(th, false, group); ok {
			direct = append(direct, c)
			group++
		}
	}

	for _, h := range set.Hints() {
		r, isRelay := h.(types.RelayV1Hint)
		if !isRelay {
			continue
		}
		added := false
		for _, inner := range r.Hints() {
			if c, ok := s.candidate(inner, true, group); ok {
				relay = append(relay, c)
				added = true
			}
		}
		if added {
			group++
		}
	}

	return append(direct, relay...)
}

func (s *Service) candidate(h types.TCPHint, viaRelay bool, group int) (Candidate, bool) {
	ep, ok := s.Resolve(h)
	if !ok {
		log.Debug("跳过无法解析的提示", "hint", s.Describe(h, viaRelay))
		return Candidate{}, false
	}
	return Candidate{
		Hint:        h,
		Endpoint:    ep,
		Description: s.Describe(h, viaRelay),
		ViaRelay:    viaRelay,
		Group:       group,
	}, true
}
