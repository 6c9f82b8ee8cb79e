package transit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/fx"

	"github.com/dep2p/go-transit/config"
	"github.com/dep2p/go-transit/internal/core/hints"
	"github.com/dep2p/go-transit/internal/core/metrics"
	"github.com/dep2p/go-transit/internal/util/logger"
	"github.com/dep2p/go-transit/pkg/interfaces/endpoint"
)

var log = logger.Logger("transit")

const (
	startTimeout = 10 * time.Second
	stopTimeout  = 10 * time.Second
)

// ════════════════════════════════════════════════════════════════════════════
//                              Transit
// ════════════════════════════════════════════════════════════════════════════

// Transit 绑定了一组能力（Reactor、可选的 Tor）的提示解析器
//
// 所有方法可并发调用。Close 之后解析仍可用，但得到的端点无法再连接。
type Transit struct {
	cfg *config.Config
	app *fx.App

	// 由 Fx 注入
	service  *hints.Service
	reporter metrics.Reporter

	mu     sync.Mutex
	closed bool
}

// New 创建并启动 Transit
//
// 示例：
//
//	t, err := transit.New(
//	    transit.WithTor(true),
//	    transit.WithSOCKSAddr("127.0.0.1:9150"),
//	)
func New(opts ...Option) (*Transit, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	cfg := o.toConfig()
	t := &Transit{cfg: cfg}

	app, err := buildFxApp(o, cfg, t)
	if err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	t.app = app

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	log.Info("transit 已启动", "tor", t.service.TorEnabled())
	return t, nil
}

// Config 返回生效配置的副本
func (t *Transit) Config() config.Config {
	return *t.cfg
}

// TorEnabled 是否经 Tor 解析提示
func (t *Transit) TorEnabled() bool {
	return t.service.TorEnabled()
}

// Parse 解析单个命令行提示，失败时向诊断输出写一行
func (t *Transit) Parse(text string) (DirectTCPV1Hint, bool) {
	return t.service.Parse(text)
}

// ParseAll 批量解析命令行提示，跳过无法解析的条目
func (t *Transit) ParseAll(texts []string) []DirectTCPV1Hint {
	return t.service.ParseAll(texts)
}

// Describe 描述提示，是否带 "tor->" 前缀由是否启用 Tor 决定
func (t *Transit) Describe(h Hint, viaRelay bool) string {
	return t.service.Describe(h, viaRelay)
}

// Resolve 把单个提示解析为端点
func (t *Transit) Resolve(h Hint) (endpoint.Endpoint, bool) {
	return t.service.Resolve(h)
}

// Plan 把一组提示规划为可尝试的候选，见 Candidate
func (t *Transit) Plan(hs []Hint) []Candidate {
	return t.service.Plan(hs)
}

// Stats 返回解析计数快照
func (t *Transit) Stats() Stats {
	return t.reporter.Snapshot()
}

// Close 停止 Transit，关闭内置的 Reactor 和 Tor 能力
//
// 重复调用返回 nil。
func (t *Transit) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := t.app.Stop(ctx); err != nil {
		log.Error("停止失败", "error", err)
		return fmt.Errorf("stop fx app: %w", err)
	}

	log.Info("transit 已关闭")
	return nil
}

// IsClosed 检查是否已关闭
func (t *Transit) IsClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}
