package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
//                              HintType - 提示类型
// ============================================================================

// HintType 连接提示类型，与信令通道中提示字典的 "type" 字段一一对应
type HintType string

const (
	// HintTypeDirectTCPV1 直连 TCP 提示
	HintTypeDirectTCPV1 HintType = "direct-tcp-v1"
	// HintTypeTorTCPV1 经 Tor 的 TCP 提示
	HintTypeTorTCPV1 HintType = "tor-tcp-v1"
	// HintTypeRelayV1 中继提示（一组可选的 TCP 提示）
	HintTypeRelayV1 HintType = "relay-v1"
)

// String 返回类型标签
func (t HintType) String() string {
	return string(t)
}

// ============================================================================
//                              Hint 接口
// ============================================================================

// Hint 连接提示：到达对端的一种候选网络位置/方式
//
// Hint 是封闭的和类型，只有本包中的 DirectTCPV1Hint、TorTCPV1Hint、
// RelayV1Hint 实现它。所有实现都是不可变值。
//
// 按具体类型分支的代码应实现 HintVisitor：新增提示类型时 HintVisitor
// 会增加方法，所有未处理新类型的访问者会在编译期报错。
type Hint interface {
	// Type 返回提示的类型标签
	Type() HintType

	// Key 返回结构化的规范键，两个提示结构相等当且仅当 Key 相等
	Key() string

	// Accept 以具体类型回调访问者
	Accept(v HintVisitor)

	String() string

	isHint()
}

// TCPHint 可直接发起 TCP 连接的提示（DirectTCPV1Hint 或 TorTCPV1Hint）
//
// RelayV1Hint 只能包含 TCPHint，因此中继提示不能嵌套。
type TCPHint interface {
	Hint

	// Target 返回目标主机名和端口
	Target() (hostname string, port int)

	priority() float64
}

// HintVisitor 提示访问者，每种提示类型一个方法
type HintVisitor interface {
	VisitDirectTCP(h DirectTCPV1Hint)
	VisitTorTCP(h TorTCPV1Hint)
	VisitRelay(h RelayV1Hint)
}

// 确保实现接口
var (
	_ TCPHint = DirectTCPV1Hint{}
	_ TCPHint = TorTCPV1Hint{}
	_ Hint    = RelayV1Hint{}
)

// ============================================================================
//                              DirectTCPV1Hint
// ============================================================================

// DirectTCPV1Hint 直连 TCP 提示：直接 TCP 连接到 Hostname:Port
//
// Priority 越高越优先，具体取舍由上层协商决定。
// 构造时不做校验，需要时调用 Validate。
type DirectTCPV1Hint struct {
	Hostname string
	Port     int
	Priority float64
}

// NewDirectTCPV1Hint 创建直连 TCP 提示
func NewDirectTCPV1Hint(hostname string, port int, priority float64) DirectTCPV1Hint {
	return DirectTCPV1Hint{Hostname: hostname, Port: port, Priority: priority}
}

// Type 返回 direct-tcp-v1
func (h DirectTCPV1Hint) Type() HintType { return HintTypeDirectTCPV1 }

// Target 返回目标主机名和端口
func (h DirectTCPV1Hint) Target() (string, int) { return h.Hostname, h.Port }

// Key 返回规范键
func (h DirectTCPV1Hint) Key() string {
	return tcpHintKey(HintTypeDirectTCPV1, h.Hostname, h.Port, h.Priority)
}

// Accept 回调 VisitDirectTCP
func (h DirectTCPV1Hint) Accept(v HintVisitor) { v.VisitDirectTCP(h) }

// Validate 校验主机名、端口和优先级
func (h DirectTCPV1Hint) Validate() error {
	return validateTCPHint(h.Hostname, h.Port, h.Priority)
}

// String 返回调试用字符串
func (h DirectTCPV1Hint) String() string {
	return tcpHintString(HintTypeDirectTCPV1, h.Hostname, h.Port, h.Priority)
}

func (DirectTCPV1Hint) isHint()             {}
func (h DirectTCPV1Hint) priority() float64 { return h.Priority }

// ============================================================================
//                              TorTCPV1Hint
// ============================================================================

// TorTCPV1Hint 经 Tor 的 TCP 提示：通过 Tor 连接到 Hostname:Port
type TorTCPV1Hint struct {
	Hostname string
	Port     int
	Priority float64
}

// NewTorTCPV1Hint 创建 Tor TCP 提示
func NewTorTCPV1Hint(hostname string, port int, priority float64) TorTCPV1Hint {
	return TorTCPV1Hint{Hostname: hostname, Port: port, Priority: priority}
}

// Type 返回 tor-tcp-v1
func (h TorTCPV1Hint) Type() HintType { return HintTypeTorTCPV1 }

// Target 返回目标主机名和端口
func (h TorTCPV1Hint) Target() (string, int) { return h.Hostname, h.Port }

// Key 返回规范键
func (h TorTCPV1Hint) Key() string {
	return tcpHintKey(HintTypeTorTCPV1, h.Hostname, h.Port, h.Priority)
}

// Accept 回调 VisitTorTCP
func (h TorTCPV1Hint) Accept(v HintVisitor) { v.VisitTorTCP(h) }

// Validate 校验主机名、端口和优先级
func (h TorTCPV1Hint) Validate() error {
	return validateTCPHint(h.Hostname, h.Port, h.Priority)
}

// String 返回调试用字符串
func (h TorTCPV1Hint) String() string {
	return tcpHintString(HintTypeTorTCPV1, h.Hostname, h.Port, h.Priority)
}

func (TorTCPV1Hint) isHint()             {}
func (h TorTCPV1Hint) priority() float64 { return h.Priority }

// ============================================================================
//                              RelayV1Hint
// ============================================================================

// RelayV1Hint 中继提示：同一台中继服务器的多种可选到达方式
//
// 内部序列的顺序即广播方给出的偏好顺序，使用方最多只需其中一个成功。
// 内部序列在构造时复制，之后不可修改；零值表示空的中继提示。
type RelayV1Hint struct {
	hints []TCPHint
}

// NewRelayV1Hint 创建中继提示，nil 元素被忽略
func NewRelayV1Hint(hints ...TCPHint) RelayV1Hint {
	var cp []TCPHint
	for _, h := range hints {
		if h != nil {
			cp = append(cp, h)
		}
	}
	return RelayV1Hint{hints: cp}
}

// Type 返回 relay-v1
func (h RelayV1Hint) Type() HintType { return HintTypeRelayV1 }

// Hints 返回内部提示序列的副本
func (h RelayV1Hint) Hints() []TCPHint {
	cp := make([]TCPHint, len(h.hints))
	copy(cp, h.hints)
	return cp
}

// Len 返回内部提示数量
func (h RelayV1Hint) Len() int { return len(h.hints) }

// At 返回第 i 个内部提示
func (h RelayV1Hint) At(i int) TCPHint { return h.hints[i] }

// Key 返回规范键，按构造顺序拼接内部提示的键
func (h RelayV1Hint) Key() string {
	var b strings.Builder
	b.WriteString(string(HintTypeRelayV1))
	b.WriteByte('[')
	for i, inner := range h.hints {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(inner.Key())
	}
	b.WriteByte(']')
	return b.String()
}

// Equal 结构相等比较（内部序列按顺序逐个比较）
func (h RelayV1Hint) Equal(other RelayV1Hint) bool {
	if len(h.hints) != len(other.hints) {
		return false
	}
	for i := range h.hints {
		if h.hints[i].Key() != other.hints[i].Key() {
			return false
		}
	}
	return true
}

// Accept 回调 VisitRelay
func (h RelayV1Hint) Accept(v HintVisitor) { v.VisitRelay(h) }

// Validate 校验所有内部提示
func (h RelayV1Hint) Validate() error {
	for i, inner := range h.hints {
		hostname, port := inner.Target()
		if err := validateTCPHint(hostname, port, inner.priority()); err != nil {
			return fmt.Errorf("relay hint %d: %w", i, err)
		}
	}
	return nil
}

// String 返回调试用字符串
func (h RelayV1Hint) String() string {
	parts := make([]string, len(h.hints))
	for i, inner := range h.hints {
		parts[i] = inner.String()
	}
	return string(HintTypeRelayV1) + "[" + strings.Join(parts, " ") + "]"
}

func (RelayV1Hint) isHint() {}

// ============================================================================
//                              辅助函数
// ============================================================================

// EqualHints 结构相等比较任意两个提示
func EqualHints(a, b Hint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// tcpHintKey 生成 TCP 提示的规范键
//
// 主机名加引号，避免包含分隔符的主机名产生歧义。
func tcpHintKey(t HintType, hostname string, port int, priority float64) string {
	return string(t) + ":" + strconv.Quote(hostname) + ":" + strconv.Itoa(port) + ":" + formatPriority(priority)
}

func tcpHintString(t HintType, hostname string, port int, priority float64) string {
	return fmt.Sprintf("%s{%s:%d priority=%s}", t, hostname, port, formatPriority(priority))
}

// formatPriority 格式化优先级，-0 与 0 视为相同
func formatPriority(p float64) string {
	if p == 0 {
		p = 0
	}
	return strconv.FormatFloat(p, 'g', -1, 64)
}

func validateTCPHint(hostname string, port int, priority float64) error {
	if hostname == "" {
		return ErrEmptyHostname
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}
	if math.IsNaN(priority) || math.IsInf(priority, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPriority, priority)
	}
	return nil
}
