package hints

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-transit/pkg/types"
)

func TestParseHintArgv_Valid(t *testing.T) {
	tests := []struct {
		text     string
		expected types.DirectTCPV1Hint
	}{
		{"tcp:example.org:1234", types.NewDirectTCPV1Hint("example.org", 1234, 0)},
		{"tcp:127.0.0.1:80", types.NewDirectTCPV1Hint("127.0.0.1", 80, 0)},
		{"tcp:example.org:1234:priority=2.5", types.NewDirectTCPV1Hint("example.org", 1234, 2.5)},
		{"tcp:example.org:1234:priority=2.5:priority=9.0", types.NewDirectTCPV1Hint("example.org", 1234, 9.0)},
		{"tcp:example.org:1234:foo=bar:priority=-1", types.NewDirectTCPV1Hint("example.org", 1234, -1)},
		{"tcp:example.org:1234:unknown", types.NewDirectTCPV1Hint("example.org", 1234, 0)},
		{"tcp:example.org:1234:priority=1e2", types.NewDirectTCPV1Hint("example.org", 1234, 100)},
		{"tcp:example.org:1234:priority=3=4", types.NewDirectTCPV1Hint("example.org", 1234, 3)},
		{"tcp:example.org:1234:priority= 0.5 ", types.NewDirectTCPV1Hint("example.org", 1234, 0.5)},
		{"tcp:host:0080", types.NewDirectTCPV1Hint("host", 80, 0)},
		// 主机名原样保留，不做校验
		{"tcp::80", types.NewDirectTCPV1Hint("", 80, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var diag bytes.Buffer
			hint, ok := ParseHintArgv(tt.text, &diag)
			require.True(t, ok)
			assert.Equal(t, tt.expected, hint)
			assert.Empty(t, diag.String(), "成功解析不应输出诊断")
		})
	}
}

func TestParseHintArgv_Invalid(t *testing.T) {
	tests := []struct {
		text       string
		diagnostic string
	}{
		{"udp:example.org:1234", "unknown hint type 'udp' in 'udp:example.org:1234'"},
		{"TCP:example.org:1234", "unknown hint type 'TCP' in 'TCP:example.org:1234'"},
		{"nocolonhere", "unparseable hint 'nocolonhere'"},
		{"", "unparseable hint ''"},
		{"tc-p:host:80", "unparseable hint 'tc-p:host:80'"},
		{"tcp:onlyhost", "unparseable TCP hint (need more colons) 'tcp:onlyhost'"},
		{"tcp:", "unparseable TCP hint (need more colons) 'tcp:'"},
		{"tcp:host:notaport", "non-numeric port in TCP hint 'tcp:host:notaport'"},
		{"tcp:host:+80", "non-numeric port in TCP hint 'tcp:host:+80'"},
		{"tcp:host:-80", "non-numeric port in TCP hint 'tcp:host:-80'"},
		{"tcp:host:", "non-numeric port in TCP hint 'tcp:host:'"},
		{"tcp:host:99999999999999999999999", "non-numeric port in TCP hint 'tcp:host:99999999999999999999999'"},
		{"tcp:host:80:priority=abc", "non-float priority= in TCP hint 'tcp:host:80:priority=abc'"},
		{"tcp:host:80:priority=", "non-float priority= in TCP hint 'tcp:host:80:priority='"},
		{"tcp:host:80:priority=nan", "non-float priority= in TCP hint 'tcp:host:80:priority=nan'"},
		{"tcp:host:80:priority=0x1p-2", "non-float priority= in TCP hint 'tcp:host:80:priority=0x1p-2'"},
		{"tcp:host:80:priority=1:priority=bad", "non-float priority= in TCP hint 'tcp:host:80:priority=1:priority=bad'"},
		// 整个文本必须匹配，末尾换行不被容忍
		{"tcp:h:80\n", "unparseable hint 'tcp:h:80\n'"},
		// IPv6 字面量不受语法支持
		{"tcp:::1:80", "non-numeric port in TCP hint 'tcp:::1:80'"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var diag bytes.Buffer
			hint, ok := ParseHintArgv(tt.text, &diag)
			assert.False(t, ok)
			assert.Equal(t, types.DirectTCPV1Hint{}, hint)
			assert.Equal(t, tt.diagnostic+"\n", diag.String(), "每个失败应恰好输出一行诊断")
		})
	}
}

func TestParseHints_SkipsBadEntries(t *testing.T) {
	var diag bytes.Buffer
	hints := ParseHints([]string{
		"tcp:a:1",
		"udp:b:2",
		"tcp:c:3:priority=1.5",
		"tcp:d",
	}, &diag)

	assert.Equal(t, []types.DirectTCPV1Hint{
		types.NewDirectTCPV1Hint("a", 1, 0),
		types.NewDirectTCPV1Hint("c", 3, 1.5),
	}, hints)
	assert.Equal(t, 2, strings.Count(diag.String(), "\n"))

	t.Log("✅ 批量解析跳过无效提示")
}

func TestParser(t *testing.T) {
	var diag bytes.Buffer
	p := NewParser(&diag)

	_, ok := p.Parse("bogus")
	assert.False(t, ok)
	assert.Contains(t, diag.String(), "unparseable hint 'bogus'")

	assert.Len(t, p.ParseAll([]string{"tcp:a:1", "tcp:b:2"}), 2)
}

func TestNewParser_DefaultsToStderr(t *testing.T) {
	p := NewParser(nil)
	assert.NotNil(t, p.Diagnostics)
}
