package hints

import (
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/dep2p/go-transit/pkg/types"
)

// ============================================================================
//                              语法
// ============================================================================
//
//	tcp:<hostname>:<port>[:priority=<float>][:<ignored>...]
//
// 主机名中不能包含 ':'，因此不支持 IPv6 字面量。

var (
	// reHint 整体形状 "<type>:<rest>"
	reHint = regexp.MustCompile(`^([a-zA-Z0-9]+):(.*)$`)

	// rePort 端口必须是纯十进制数字
	rePort = regexp.MustCompile(`^[0-9]+$`)
)

const (
	hintTypeTCP    = "tcp"
	priorityPrefix = "priority="
)

// ============================================================================
//                              Parser
// ============================================================================

// Parser 命令行提示解析器
//
// 诊断信息逐行写入 Diagnostics。
type Parser struct {
	Diagnostics io.Writer
}

// NewParser 创建解析器，w 为 nil 时诊断写入 os.Stderr
func NewParser(w io.Writer) *Parser {
	if w == nil {
		w = os.Stderr
	}
	return &Parser{Diagnostics: w}
}

// Parse 解析单个提示字符串
func (p *Parser) Parse(text string) (types.DirectTCPV1Hint, bool) {
	return ParseHintArgv(text, p.Diagnostics)
}

// ParseAll 批量解析，跳过无法解析的条目并保持原有顺序
func (p *Parser) ParseAll(texts []string) []types.DirectTCPV1Hint {
	return ParseHints(texts, p.Diagnostics)
}

// ParseHintArgv 解析命令行提供的提示字符串
//
// 成功返回 (hint, true)。任何失败都会向 stderr 写一行诊断并返回 false，
// 调用方应跳过该提示继续处理其他提示。stderr 为 nil 时写入 os.Stderr。
//
//	ParseHintArgv("tcp:example.org:1234:priority=2.5", w)
//	// DirectTCPV1Hint{"example.org", 1234, 2.5}, true
func ParseHintArgv(text string, stderr io.Writer) (types.DirectTCPV1Hint, bool) {
	if stderr == nil {
		stderr = os.Stderr
	}

	m := reHint.FindStringSubmatch(text)
	if m == nil {
		diagnose(stderr, "unparseable hint '%s'", text)
		return types.DirectTCPV1Hint{}, false
	}

	hintType, value := m[1], m[2]
	if hintType != hintTypeTCP {
		diagnose(stderr, "unknown hint type '%s' in '%s'", hintType, text)
		return types.DirectTCPV1Hint{}, false
	}

	pieces := strings.Split(value, ":")
	if len(pieces) < 2 {
		diagnose(stderr, "unparseable TCP hint (need more colons) '%s'", text)
		return types.DirectTCPV1Hint{}, false
	}

	if !rePort.MatchString(pieces[1]) {
		diagnose(stderr, "non-numeric port in TCP hint '%s'", text)
		return types.DirectTCPV1Hint{}, false
	}
	port, err := strconv.Atoi(pieces[1])
	if err != nil {
		// 超出 int 范围
		diagnose(stderr, "non-numeric port in TCP hint '%s'", text)
		return types.DirectTCPV1Hint{}, false
	}

	priority := 0.0
	for _, more := range pieces[2:] {
		if !strings.HasPrefix(more, priorityPrefix) {
			continue
		}
		// "priority=1=2" 取第二段
		v, ok := parsePriority(strings.Split(more, "=")[1])
		if !ok {
			diagnose(stderr, "non-float priority= in TCP hint '%s'", text)
			return types.DirectTCPV1Hint{}, false
		}
		priority = v
	}

	return types.NewDirectTCPV1Hint(pieces[0], port, priority), true
}

// ParseHints 批量解析，跳过无法解析的条目并保持原有顺序
func ParseHints(texts []string, stderr io.Writer) []types.DirectTCPV1Hint {
	out := make([]types.DirectTCPV1Hint, 0, len(texts))
	for _, text := range texts {
		if h, ok := ParseHintArgv(text, stderr); ok {
			out = append(out, h)
		}
	}
	return out
}

// parsePriority 解析优先级
//
// 允许首尾空白、符号和指数；拒绝十六进制浮点、下划线分隔以及 NaN/Inf。
func parsePriority(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	unsigned := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") || strings.Contains(s, "_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// diagnose 写一行诊断，写入失败被忽略
func diagnose(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
