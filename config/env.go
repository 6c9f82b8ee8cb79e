package config

import (
	"os"
	"strconv"
	"time"
)

// 环境变量（均使用 TRANSIT_ 前缀）
const (
	EnvPrefix = "TRANSIT_"

	EnvTorEnable   = "TOR_ENABLE"
	EnvSOCKSAddr   = "TOR_SOCKS_ADDR"
	EnvDialTimeout = "DIAL_TIMEOUT"
	EnvDiagnostics = "DIAGNOSTICS"
)

// ApplyEnv 应用环境变量覆盖配置
//
// 环境变量优先级高于配置文件，但低于命令行参数。
// 无法解析的值被忽略。
//   - TRANSIT_TOR_ENABLE: 启用 Tor（true/false）
//   - TRANSIT_TOR_SOCKS_ADDR: Tor SOCKS 地址
//   - TRANSIT_DIAL_TIMEOUT: 直连拨号超时（如 "5s"）
//   - TRANSIT_DIAGNOSTICS: 诊断输出（stderr/stdout/discard）
func ApplyEnv(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv(EnvPrefix + EnvTorEnable); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tor.Enable = enabled
		}
	}

	if v := os.Getenv(EnvPrefix + EnvSOCKSAddr); v != "" {
		cfg.Tor.SOCKSAddr = v
	}

	if v := os.Getenv(EnvPrefix + EnvDialTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Transport.DialTimeout = Duration(d)
		}
	}

	if v := os.Getenv(EnvPrefix + EnvDiagnostics); v != "" {
		cfg.Diagnostics.Output = v
	}
}
