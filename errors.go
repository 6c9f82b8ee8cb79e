package transit

import "errors"

// 公共错误定义
var (
	// ErrNilConfig 配置为空
	ErrNilConfig = errors.New("config is nil")

	// ErrNilWriter 诊断输出为空
	ErrNilWriter = errors.New("diagnostics writer is nil")

	// ErrNilCapability 能力实现为空
	ErrNilCapability = errors.New("capability is nil")

	// ErrInvalidTimeout 超时必须为正
	ErrInvalidTimeout = errors.New("timeout must be positive")

	// ErrEmptyAddr 地址为空
	ErrEmptyAddr = errors.New("address is empty")
)
