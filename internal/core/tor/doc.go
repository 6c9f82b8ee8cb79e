// Package tor 提供基于本地 Tor SOCKS5 端口的 Tor 能力
//
// SOCKSCapability 实现 pkg/interfaces/tor.Capability：
//   - IPv6 字面量、非公网 IPv4 字面量返回 StatusUnsupportedAddress，
//     Tor 出口无法（也不应）到达这些地址
//   - 主机名（包括 .onion）不在本地解析，原样交给 Tor
//   - 已关闭或未配置 SOCKS 地址时返回 StatusUnavailable
//
// 启用 IsolateStreams 时，每个端点使用随机的 SOCKS 用户名/密码，
// Tor 的 IsolateSOCKSAuth（默认开启）据此为不同端点分配不同线路。
package tor
