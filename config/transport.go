package config

import (
	"errors"
	"time"

	"go.uber.org/multierr"
)

// TransportConfig 直连 TCP 端点配置
//
// 只影响 DirectTCPV1Hint 在未启用 Tor 时得到的端点。
type TransportConfig struct {
	// DialTimeout 拨号超时，包括 DNS 解析和 TCP 握手
	DialTimeout Duration `json:"dial_timeout"`

	// KeepAlive 是否启用 TCP KeepAlive
	KeepAlive bool `json:"keep_alive"`

	// KeepAlivePeriod KeepAlive 周期
	KeepAlivePeriod Duration `json:"keep_alive_period"`

	// NoDelay 是否禁用 Nagle 算法
	NoDelay bool `json:"no_delay"`
}

// DefaultTransportConfig 返回默认传输配置
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		DialTimeout:     Duration(10 * time.Second), // 拨号超时：10 秒，竞速场景下慢候选尽早放弃
		KeepAlive:       true,                       // 启用 TCP KeepAlive：检测死连接
		KeepAlivePeriod: Duration(15 * time.Second), // KeepAlive 间隔：15 秒
		NoDelay:         true,                       // 禁用 Nagle 算法：握手字节及时发出
	}
}

// Validate 验证传输配置
func (c TransportConfig) Validate() error {
	var err error
	if c.DialTimeout <= 0 {
		err = multierr.Append(err, errors.New("dial timeout must be positive"))
	}
	if c.KeepAlive && c.KeepAlivePeriod <= 0 {
		err = multierr.Append(err, errors.New("keep alive period must be positive when enabled"))
	}
	return err
}

// WithDialTimeout 设置拨号超时
func (c TransportConfig) WithDialTimeout(timeout time.Duration) TransportConfig {
	c.DialTimeout = Duration(timeout)
	return c
}

// WithKeepAlive 设置 KeepAlive，period <= 0 表示禁用
func (c TransportConfig) WithKeepAlive(period time.Duration) TransportConfig {
	c.KeepAlive = period > 0
	c.KeepAlivePeriod = Duration(period)
	return c
}
