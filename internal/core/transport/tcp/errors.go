package tcp

import "errors"

var (
	// ErrReactorClosed Reactor 已关闭
	ErrReactorClosed = errors.New("tcp reactor closed")

	// ErrNotTCP 拨号结果不是 TCP 连接
	ErrNotTCP = errors.New("not a tcp connection")
)
