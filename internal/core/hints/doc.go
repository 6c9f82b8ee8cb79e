// Package hints 实现连接提示的描述、解析与端点解析
//
// 连接提示（hint）是到达对端的候选网络位置/方式，经信令通道传来，
// 或由命令行手工提供。本包只决定"尝试什么"并产出可连接的端点，
// 既不打开套接字也不执行传输握手；多个端点的竞速由上层完成。
//
// # 组成
//
//   - describe.go  - Describe：日志/界面用的提示描述
//   - parser.go    - ParseHintArgv：解析 "tcp:<host>:<port>[:priority=<float>]"
//   - resolver.go  - EndpointFromHint：按 Tor/Reactor 能力把提示解析为端点
//   - service.go   - Service：绑定能力集，批量解析与候选规划
//   - module.go    - Fx 模块
//
// # 错误模型
//
// 所有失败都降级为"跳过该提示"：解析失败写一行诊断到调用方提供的
// io.Writer 并返回 false；提示不适用于当前能力集或 Tor 拒绝地址时
// 返回 false 且不输出诊断。
//
// 本包所有函数均无共享可变状态，可并发调用。
package hints
