// Package tcp 提供直连 TCP 端点
//
// Reactor 把 (hostname, port) 映射为 HostnameEndpoint。端点在 Connect 时
// 才解析主机名并拨号，因此构造端点本身没有网络开销，也不会失败。
//
// 拨号参数来自 config.TransportConfig：
//   - DialTimeout: 解析加握手的总超时
//   - KeepAlive / KeepAlivePeriod: TCP KeepAlive
//   - NoDelay: 禁用 Nagle 算法
//
// 使用示例：
//
//	r := tcp.NewReactor(config.DefaultTransportConfig())
//	ep := r.EndpointFor("example.org", 1234)
//	conn, err := ep.Connect(ctx)
package tcp
