package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dep2p/go-transit/pkg/types"
)

// OtherKind 未知提示类型的计数键
const OtherKind types.HintType = "other"

// Count 成功/失败计数
type Count struct {
	OK     uint64
	Failed uint64
}

// Total 返回总次数
func (c Count) Total() uint64 {
	return c.OK + c.Failed
}

// Snapshot 某个时间点的计数快照
type Snapshot struct {
	// Parse 命令行提示解析
	Parse Count

	// Resolve 按提示类型的端点解析
	Resolve map[types.HintType]Count
}

// Resolved 返回所有类型的端点解析合计
func (s Snapshot) Resolved() Count {
	var total Count
	for _, c := range s.Resolve {
		total.OK += c.OK
		total.Failed += c.Failed
	}
	return total
}

// String 返回单行摘要，类型按名称排序
//
//	parse=2/1 direct-tcp-v1=1/0 relay-v1=0/0 tor-tcp-v1=0/1
func (s Snapshot) String() string {
	kinds := make([]string, 0, len(s.Resolve))
	for k := range s.Resolve {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	var b strings.Builder
	fmt.Fprintf(&b, "parse=%d/%d", s.Parse.OK, s.Parse.Failed)
	for _, k := range kinds {
		c := s.Resolve[types.HintType(k)]
		fmt.Fprintf(&b, " %s=%d/%d", k, c.OK, c.Failed)
	}
	return b.String()
}
