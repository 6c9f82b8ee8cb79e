// Package main 提供 transit-hints 命令行入口
//
// 解析命令行给出的连接提示，打印每个可用候选的描述，
// 可选地逐个尝试连接：
//
//	transit-hints tcp:example.org:4001 tcp:10.0.0.2:4001:priority=0.5
//	transit-hints -tor -connect tcp:example.org:4001
//	transit-hints -relay tcp:relay.example:4001
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dep2p/go-transit"
	"github.com/dep2p/go-transit/internal/util/logger"
	"github.com/dep2p/go-transit/pkg/types"
)

var log = logger.Logger("cmd")

// errNoUsableHints 没有任何提示得到可用端点
var errNoUsableHints = errors.New("no usable hints")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		}
		os.Exit(1)
	}
}

// cliFlags 命令行参数
type cliFlags struct {
	configFile string
	tor        bool
	socksAddr  string
	relay      bool
	connect    bool
	timeout    time.Duration
	parallel   int
	stats      bool
	logLevel   string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("transit-hints", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cliFlags{}
	fs.StringVar(&f.configFile, "config", "", "配置文件路径（JSON）")
	fs.BoolVar(&f.tor, "tor", false, "经 Tor 连接所有 TCP 提示")
	fs.StringVar(&f.socksAddr, "socks", "", "Tor SOCKS5 地址（默认 127.0.0.1:9050）")
	fs.BoolVar(&f.relay, "relay", false, "把所有提示视为同一个中继提示")
	fs.BoolVar(&f.connect, "connect", false, "逐个尝试连接候选")
	fs.DurationVar(&f.timeout, "timeout", 0, "直连拨号超时（如 5s）")
	fs.IntVar(&f.parallel, "parallel", 4, "-connect 时同时探测的候选数")
	fs.BoolVar(&f.stats, "stats", false, "结束时向 stderr 打印解析统计")
	fs.StringVar(&f.logLevel, "log-level", "", "日志级别（debug/info/warn/error）")
	fs.BoolVar(&f.version, "version", false, "显示版本信息")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "用法: transit-hints [选项] tcp:<host>:<port>[:priority=<float>] ...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// buildOptions 把命令行参数转换为选项
//
// 优先级：命令行 > 环境变量 > 配置文件。
func buildOptions(f *cliFlags, stderr io.Writer) []transit.Option {
	var opts []transit.Option
	if f.configFile != "" {
		opts = append(opts, transit.WithConfigFile(f.configFile))
	}
	opts = append(opts, transit.WithEnv(), transit.WithDiagnostics(stderr))
	if f.tor {
		opts = append(opts, transit.WithTor(true))
	}
	if f.socksAddr != "" {
		opts = append(opts, transit.WithSOCKSAddr(f.socksAddr))
	}
	if f.timeout > 0 {
		opts = append(opts, transit.WithDialTimeout(f.timeout))
	}
	return opts
}

func run(args []string, stdout, stderr io.Writer) error {
	f, texts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if f.version {
		fmt.Fprintln(stdout, transit.VersionInfo())
		return nil
	}

	if f.logLevel != "" {
		level, ok := logger.ParseLevel(f.logLevel)
		if !ok {
			return fmt.Errorf("unknown log level %q", f.logLevel)
		}
		logger.SetGlobalLevel(level)
	}

	t, err := transit.New(buildOptions(f, stderr)...)
	if err != nil {
		return err
	}
	defer func() { _ = t.Close() }()

	parsed := t.ParseAll(texts)
	if f.stats {
		defer func() { fmt.Fprintln(stderr, t.Stats().String()) }()
	}

	hs := make([]transit.Hint, 0, len(parsed))
	if f.relay {
		inner := make([]types.TCPHint, 0, len(parsed))
		for _, h := range parsed {
			inner = append(inner, h)
		}
		hs = append(hs, types.NewRelayV1Hint(inner...))
	} else {
		for _, h := range parsed {
			hs = append(hs, h)
		}
	}

	candidates := t.Plan(hs)
	log.Debug("候选规划完成", "args", len(texts), "parsed", len(parsed), "candidates", len(candidates))
	if len(candidates) == 0 {
		return errNoUsableHints
	}

	if !f.connect {
		for _, c := range candidates {
			fmt.Fprintf(stdout, "%s priority=%s group=%d\n", c.Description, formatPriority(c.Hint), c.Group)
		}
		return nil
	}

	for i, result := range probe(context.Background(), candidates, f.parallel) {
		fmt.Fprintf(stdout, "%s %s\n", candidates[i].Description, result)
	}
	return nil
}

// probe 并发探测所有候选，结果按候选顺序返回
//
// 每个候选都会被探测，不会因为某个成功而取消其他候选。
func probe(ctx context.Context, candidates []transit.Candidate, parallel int) []string {
	results := make([]string, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			results[i] = tryConnect(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// tryConnect 连接候选并立即关闭，返回结果描述
func tryConnect(ctx context.Context, c transit.Candidate) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	start := time.Now()
	conn, err := c.Endpoint.Connect(ctx)
	if err != nil {
		return fmt.Sprintf("failed: %v", err)
	}
	_ = conn.Close()
	return fmt.Sprintf("ok (%s)", time.Since(start).Round(time.Millisecond))
}

// formatPriority 返回候选提示的优先级
func formatPriority(h transit.TCPHint) string {
	switch v := h.(type) {
	case types.DirectTCPV1Hint:
		return fmt.Sprint(v.Priority)
	case types.TorTCPV1Hint:
		return fmt.Sprint(v.Priority)
	default:
		return "?"
	}
}
