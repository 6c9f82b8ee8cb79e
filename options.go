package transit

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dep2p/go-transit/config"
	"github.com/dep2p/go-transit/pkg/interfaces/reactor"
	"github.com/dep2p/go-transit/pkg/interfaces/tor"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 基础配置（WithConfig / WithConfigFile），为空时使用默认配置
	base *config.Config

	// 是否应用 TRANSIT_ 环境变量
	env bool

	// 覆盖项
	tor struct {
		enable    *bool
		socksAddr string
	}
	dialTimeout time.Duration

	// 诊断输出，优先于 config.Diagnostics.Output
	diagnostics io.Writer

	// 自定义能力实现，替换内置模块
	torCapability tor.Capability
	reactor       reactor.Reactor
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{}
}

// toConfig 合并出最终配置
//
// 优先级：Option > 环境变量 > 配置文件 > 默认值。
func (o *options) toConfig() *config.Config {
	cfg := config.NewConfig()
	if o.base != nil {
		*cfg = *o.base
	}

	if o.env {
		config.ApplyEnv(cfg)
	}

	// 覆盖: Tor
	if o.tor.enable != nil {
		cfg.Tor.Enable = *o.tor.enable
	}
	if o.tor.socksAddr != "" {
		cfg.Tor.SOCKSAddr = o.tor.socksAddr
	}
	if o.torCapability != nil {
		cfg.Tor.Enable = true
	}

	// 覆盖: 拨号超时
	if o.dialTimeout > 0 {
		cfg.Transport.DialTimeout = config.Duration(o.dialTimeout)
	}

	return cfg
}

// diagnosticsWriter 返回诊断输出目标
func (o *options) diagnosticsWriter(cfg *config.Config) io.Writer {
	if o.diagnostics != nil {
		return o.diagnostics
	}
	switch cfg.Diagnostics.Output {
	case config.DiagnosticsStdout:
		return os.Stdout
	case config.DiagnosticsDiscard:
		return io.Discard
	default:
		return os.Stderr
	}
}

// ============================================================================
//                              配置来源
// ============================================================================

// WithConfig 使用给定配置作为基础配置
//
// 配置会被复制，之后修改 cfg 不影响 Transit。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return ErrNilConfig
		}
		c := *cfg
		o.base = &c
		return nil
	}
}

// WithConfigFile 从 JSON 文件加载基础配置
func WithConfigFile(path string) Option {
	return func(o *options) error {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		o.base = cfg
		return nil
	}
}

// WithEnv 应用 TRANSIT_ 前缀的环境变量
func WithEnv() Option {
	return func(o *options) error {
		o.env = true
		return nil
	}
}

// ============================================================================
//                              覆盖项
// ============================================================================

// WithTor 启用或禁用 Tor
//
// 启用后所有 TCP 提示都经 Tor 连接。
func WithTor(enable bool) Option {
	return func(o *options) error {
		o.tor.enable = &enable
		return nil
	}
}

// WithSOCKSAddr 设置 Tor SOCKS5 地址
func WithSOCKSAddr(addr string) Option {
	return func(o *options) error {
		if addr == "" {
			return fmt.Errorf("socks addr: %w", ErrEmptyAddr)
		}
		o.tor.socksAddr = addr
		return nil
	}
}

// WithDialTimeout 设置直连拨号超时
func WithDialTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return fmt.Errorf("dial timeout %s: %w", d, ErrInvalidTimeout)
		}
		o.dialTimeout = d
		return nil
	}
}

// WithDiagnostics 设置命令行提示解析的诊断输出
func WithDiagnostics(w io.Writer) Option {
	return func(o *options) error {
		if w == nil {
			return ErrNilWriter
		}
		o.diagnostics = w
		return nil
	}
}

// ============================================================================
//                              自定义能力
// ============================================================================

// WithTorCapability 使用自定义 Tor 能力（隐含启用 Tor）
func WithTorCapability(c tor.Capability) Option {
	return func(o *options) error {
		if c == nil {
			return fmt.Errorf("tor: %w", ErrNilCapability)
		}
		o.torCapability = c
		return nil
	}
}

// WithReactor 使用自定义 Reactor 创建直连端点
func WithReactor(r reactor.Reactor) Option {
	return func(o *options) error {
		if r == nil {
			return fmt.Errorf("reactor: %w", ErrNilCapability)
		}
		o.reactor = r
		return nil
	}
}
