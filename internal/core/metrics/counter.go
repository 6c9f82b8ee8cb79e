package metrics

import (
	"sync/atomic"

	"github.com/dep2p/go-transit/pkg/types"
)

// knownKinds 预先分配计数器的提示类型
var knownKinds = []types.HintType{
	types.HintTypeDirectTCPV1,
	types.HintTypeTorTCPV1,
	types.HintTypeRelayV1,
}

// pair 成功/失败计数
type pair struct {
	ok     atomic.Uint64
	failed atomic.Uint64
}

func (p *pair) log(ok bool) {
	if ok {
		p.ok.Add(1)
	} else {
		p.failed.Add(1)
	}
}

func (p *pair) load() Count {
	return Count{OK: p.ok.Load(), Failed: p.failed.Load()}
}

func (p *pair) reset() {
	p.ok.Store(0)
	p.failed.Store(0)
}

// ResolutionCounter 解析计数器
//
// 按类型的计数表在构造时确定，之后只读，因此不需要锁。
// 未知类型计入 "other"。
type ResolutionCounter struct {
	parse   pair
	resolve map[types.HintType]*pair
	other   pair
}

// NewResolutionCounter 创建解析计数器
func NewResolutionCounter() *ResolutionCounter {
	c := &ResolutionCounter{
		resolve: make(map[types.HintType]*pair, len(knownKinds)),
	}
	for _, k := range knownKinds {
		c.resolve[k] = &pair{}
	}
	return c
}

// LogParse 记录一次命令行提示解析
func (c *ResolutionCounter) LogParse(ok bool) {
	c.parse.log(ok)
}

// LogResolve 记录一次端点解析
func (c *ResolutionCounter) LogResolve(kind types.HintType, ok bool) {
	if p, exists := c.resolve[kind]; exists {
		p.log(ok)
		return
	}
	c.other.log(ok)
}

// Snapshot 返回当前计数快照
func (c *ResolutionCounter) Snapshot() Snapshot {
	s := Snapshot{
		Parse:   c.parse.load(),
		Resolve: make(map[types.HintType]Count, len(c.resolve)+1),
	}
	for k, p := range c.resolve {
		s.Resolve[k] = p.load()
	}
	if other := c.other.load(); other.Total() > 0 {
		s.Resolve[OtherKind] = other
	}
	return s
}

// Reset 重置所有计数
func (c *ResolutionCounter) Reset() {
	c.parse.reset()
	for _, p := range c.resolve {
		p.reset()
	}
	c.other.reset()
}
