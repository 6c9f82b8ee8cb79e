// Package config 提供统一的配置管理
//
// 主 Config 结构体嵌入所有子配置，每个子配置在独立文件中定义，
// 支持从 JSON 加载、环境变量覆盖和校验。
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Tor.Enable = true
//
//	// 从文件加载并应用环境变量
//	cfg, err := config.LoadFile("transit.json")
//	config.ApplyEnv(cfg)
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// Config 是 go-transit 的完整配置结构
//
//   - Transport: 直连 TCP 端点的拨号参数
//   - Tor: Tor 能力（SOCKS 端口、流隔离）
//   - Diagnostics: 提示解析诊断输出
type Config struct {
	// Transport 直连传输配置
	Transport TransportConfig `json:"transport"`

	// Tor Tor 配置
	Tor TorConfig `json:"tor"`

	// Diagnostics 诊断输出配置
	Diagnostics DiagnosticsConfig `json:"diagnostics"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Transport:   DefaultTransportConfig(),
		Tor:         DefaultTorConfig(),
		Diagnostics: DefaultDiagnosticsConfig(),
	}
}

// Validate 验证配置的有效性
//
// 检查所有子配置，返回的错误包含全部问题（multierr.Errors 可拆分）。
func (c *Config) Validate() error {
	return multierr.Combine(
		prefixed("transport", c.Transport.Validate()),
		prefixed("tor", c.Tor.Validate()),
		prefixed("diagnostics", c.Diagnostics.Validate()),
	)
}

// FromJSON 从 JSON 解析配置
//
// 未出现的字段保留默认值。
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadFile 从 JSON 文件加载配置
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: 用户指定的配置文件路径是预期行为
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return FromJSON(data)
}

// ToJSON 序列化配置
func (c *Config) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// prefixed 为子配置错误加上所属字段
func prefixed(section string, err error) error {
	errs := multierr.Errors(err)
	if len(errs) == 0 {
		return nil
	}
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = fmt.Errorf("%s: %w", section, e)
	}
	return multierr.Combine(out...)
}
