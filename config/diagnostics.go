package config

import "fmt"

// 诊断输出目标
const (
	DiagnosticsStderr  = "stderr"
	DiagnosticsStdout  = "stdout"
	DiagnosticsDiscard = "discard"
)

// DiagnosticsConfig 提示解析诊断输出配置
type DiagnosticsConfig struct {
	// Output 输出目标：stderr（默认）、stdout、discard
	Output string `json:"output"`
}

// DefaultDiagnosticsConfig 返回默认诊断配置
func DefaultDiagnosticsConfig() DiagnosticsConfig {
	return DiagnosticsConfig{
		Output: DiagnosticsStderr,
	}
}

// Validate 验证诊断配置
func (c DiagnosticsConfig) Validate() error {
	switch c.Output {
	case DiagnosticsStderr, DiagnosticsStdout, DiagnosticsDiscard:
		return nil
	default:
		return fmt.Errorf("unknown diagnostics output %q", c.Output)
	}
}
