package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/multierr"
)

// DefaultSOCKSAddr Tor 默认 SOCKS 端口
const DefaultSOCKSAddr = "127.0.0.1:9050"

// TorConfig Tor 能力配置
//
// 启用后所有 TCP 提示都经 Tor 连接，直连不再使用。
type TorConfig struct {
	// Enable 是否启用 Tor
	Enable bool `json:"enable"`

	// SOCKSAddr Tor SOCKS5 端口地址（host:port）
	SOCKSAddr string `json:"socks_addr"`

	// IsolateStreams 每个端点使用独立的 SOCKS 凭据，
	// 配合 Tor 的 IsolateSOCKSAuth 使不同连接走不同线路
	IsolateStreams bool `json:"isolate_streams"`

	// DialTimeout 经 Tor 建立流的超时（包括 SOCKS 握手）
	DialTimeout Duration `json:"dial_timeout"`
}

// DefaultTorConfig 返回默认 Tor 配置
func DefaultTorConfig() TorConfig {
	return TorConfig{
		Enable:         false, // 默认禁用：需要本地运行 Tor
		SOCKSAddr:      DefaultSOCKSAddr,
		IsolateStreams: true,
		DialTimeout:    Duration(60 * time.Second), // Tor 线路建立较慢
	}
}

// Validate 验证 Tor 配置
//
// 未启用时不做检查。
func (c TorConfig) Validate() error {
	if !c.Enable {
		return nil
	}

	var err error
	if c.SOCKSAddr == "" {
		err = multierr.Append(err, errors.New("socks address is required when tor is enabled"))
	} else if _, port, splitErr := net.SplitHostPort(c.SOCKSAddr); splitErr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid socks address %q: %w", c.SOCKSAddr, splitErr))
	} else if n, convErr := strconv.Atoi(port); convErr != nil || n <= 0 || n > 65535 {
		err = multierr.Append(err, fmt.Errorf("invalid socks port %q", port))
	}
	if c.DialTimeout <= 0 {
		err = multierr.Append(err, errors.New("dial timeout must be positive"))
	}
	return err
}

// WithEnable 设置是否启用 Tor
func (c TorConfig) WithEnable(enabled bool) TorConfig {
	c.Enable = enabled
	return c
}

// WithSOCKSAddr 设置 SOCKS 地址
func (c TorConfig) WithSOCKSAddr(addr string) TorConfig {
	c.SOCKSAddr = addr
	return c
}
