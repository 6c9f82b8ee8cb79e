// Package metrics 统计提示解析结果
//
// ResolutionCounter 记录：
//   - 命令行提示解析成功/失败次数
//   - 按提示类型分组的端点解析成功/失败次数
//
// 所有计数器使用原子操作，可并发调用。指标只在进程内可见，
// 通过 Snapshot 读取。
package metrics
