// Package transit 解析和使用 transit 连接提示
//
// 连接提示（hint）描述"可以从哪里、以什么方式连接到对端"：
//
//   - DirectTCPV1Hint: 直连 TCP 到 hostname:port
//   - TorTCPV1Hint: 经 Tor 连接到 hostname:port
//   - RelayV1Hint: 一组经中继服务器可达的 TCP 提示
//
// 提示从信令通道（解码后的提示字典）或命令行（"tcp:host:port[:priority=N]"）
// 得到，本包把它们翻译为可连接的端点。是否经 Tor 由是否启用 Tor 能力决定：
// 启用后所有 TCP 提示都经 Tor，Tor 无法到达的地址（非公网 IPv4、IPv6 字面量）
// 被跳过；未启用时只有直连提示可用。
//
// # 快速开始
//
//	t, err := transit.New(transit.WithTor(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer t.Close()
//
//	hint, ok := t.Parse("tcp:example.org:4001:priority=1.5")
//	if !ok {
//	    return // 诊断信息已写入 stderr
//	}
//	for _, c := range t.Plan([]transit.Hint{hint}) {
//	    conn, err := c.Endpoint.Connect(ctx)
//	    ...
//	}
//
// # 无状态函数
//
// 不需要配置时可以直接使用 ParseHintArgv、Describe、EndpointFromHint，
// 自行提供 reactor.Reactor 和 tor.Capability 实现。
//
// # 配置
//
// 配置来自 config.Config（JSON 文件、环境变量），Option 在其上覆盖：
//
//	t, err := transit.New(
//	    transit.WithConfigFile("transit.json"),
//	    transit.WithEnv(),
//	    transit.WithDialTimeout(5*time.Second),
//	)
package transit
