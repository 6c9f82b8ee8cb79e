// Package addrutil 提供地址分类工具
package addrutil

import (
	"net/netip"
	"strings"
)

// sharedAddressSpace 运营商级 NAT 地址段（RFC 6598），不是公网可达地址
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// reservedIPv4 IANA 特殊用途 IPv4 地址段，全局单播判断无法排除
var reservedIPv4 = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),       // 本网络
	netip.MustParsePrefix("192.0.0.0/24"),    // IETF 协议分配
	netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
	netip.MustParsePrefix("192.88.99.0/24"),  // 6to4 中继（已废弃）
	netip.MustParsePrefix("198.18.0.0/15"),   // 基准测试
	netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
	netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
	netip.MustParsePrefix("240.0.0.0/4"),     // 保留（含受限广播）
}

// isReserved 判断地址是否落在特殊用途地址段
func isReserved(addr netip.Addr) bool {
	if !addr.Is4() {
		return false
	}
	for _, p := range reservedIPv4 {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ============================================================================
//                              IP 类型判断工具
// ============================================================================

// ParseIPLiteral 将主机名解析为 IP 字面量
//
// 支持 "1.2.3.4"、"::1"、"[::1]" 以及带 zone 的 "fe80::1%eth0"。
// 域名（包括 .onion）返回 false。
func ParseIPLiteral(host string) (netip.Addr, bool) {
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if host == "" {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr, true
}

// IsIPv6Literal 判断主机名是否是 IPv6 字面量（包括 ::ffff:a.b.c.d 形式的 IPv4 映射地址）
func IsIPv6Literal(host string) bool {
	addr, ok := ParseIPLiteral(host)
	return ok && addr.Is6()
}

// IsLoopbackHost 判断主机名是否是回环地址
func IsLoopbackHost(host string) bool {
	addr, ok := ParseIPLiteral(host)
	return ok && addr.IsLoopback()
}

// IsPrivateHost 判断主机名是否是私网地址
//
// 私网地址范围：
//   - 10.0.0.0/8
//   - 172.16.0.0/12
//   - 192.168.0.0/16
//   - 100.64.0.0/10 (运营商级 NAT)
//   - fc00::/7 (IPv6 ULA)
//   - 169.254.0.0/16, fe80::/10 (链路本地)
func IsPrivateHost(host string) bool {
	addr, ok := ParseIPLiteral(host)
	if !ok {
		return false
	}
	addr = addr.Unmap()
	return addr.IsPrivate() || addr.IsLinkLocalUnicast() || sharedAddressSpace.Contains(addr)
}

// IsPublicHost 判断主机名是否是公网 IP 地址
//
// 公网地址：非回环、非私网、非链路本地、非组播、非 IANA 保留段的有效单播地址
func IsPublicHost(host string) bool {
	addr, ok := ParseIPLiteral(host)
	if !ok {
		return false
	}
	addr = addr.Unmap()
	return addr.IsGlobalUnicast() && !addr.IsPrivate() &&
		!sharedAddressSpace.Contains(addr) && !isReserved(addr)
}

// HostType 返回主机名类型描述
//
// 返回值：
//   - "loopback" - 回环地址
//   - "private" - 私网地址
//   - "public" - 公网地址
//   - "onion" - Tor 隐藏服务
//   - "dns" - 域名（无法判断 IP 类型）
//   - "unknown" - 其他（未指定地址、组播、保留段等）
func HostType(host string) string {
	if host == "" {
		return "unknown"
	}
	if _, ok := ParseIPLiteral(host); !ok {
		if strings.HasSuffix(strings.ToLower(host), ".onion") {
			return "onion"
		}
		return "dns"
	}

	switch {
	case IsLoopbackHost(host):
		return "loopback"
	case IsPrivateHost(host):
		return "private"
	case IsPublicHost(host):
		return "public"
	default:
		return "unknown"
	}
}
