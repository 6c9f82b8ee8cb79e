package tor

import "errors"

var (
	// ErrCapabilityClosed Tor 能力已关闭
	ErrCapabilityClosed = errors.New("tor capability closed")

	// ErrNoContextDialer SOCKS 拨号器不支持 context
	ErrNoContextDialer = errors.New("socks dialer does not support context")
)
