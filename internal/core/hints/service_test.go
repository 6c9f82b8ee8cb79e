package hints

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-transit/internal/core/metrics"
	"github.com/dep2p/go-transit/pkg/types"
)

func TestService_Basics(t *testing.T) {
	var diag bytes.Buffer
	s := NewService(&fakeReactor{}, nil, &diag)

	assert.False(t, s.TorEnabled())

	hint, ok := s.Parse("tcp:h:80")
	require.True(t, ok)
	assert.Equal(t, "->tcp:h:80", s.Describe(hint, false))

	_, ok = s.Parse("tcp:h")
	assert.False(t, ok)
	assert.Contains(t, diag.String(), "need more colons")

	ep, ok := s.Resolve(hint)
	require.True(t, ok)
	assert.Equal(t, "reactor:h:80", ep.String())

	withTor := NewService(&fakeReactor{}, &fakeTor{}, &diag)
	assert.True(t, withTor.TorEnabled())
	assert.Equal(t, "tor->relay:tcp:h:80", withTor.Describe(hint, true))
}

func TestService_Plan_WithoutTor(t *testing.T) {
	s := NewService(&fakeReactor{}, nil, &bytes.Buffer{})

	relay := types.NewRelayV1Hint(
		types.NewTorTCPV1Hint("relay.onion", 4001, 0),
		types.NewDirectTCPV1Hint("relay.example.org", 4001, 0),
		types.NewDirectTCPV1Hint("10.0.0.1", 4001, 0),
	)
	hints := []types.Hint{
		relay,
		types.NewDirectTCPV1Hint("peer.example.org", 80, 1),
		types.NewTorTCPV1Hint("peer.onion", 80, 0),
		types.NewDirectTCPV1Hint("peer.example.org", 80, 1), // 重复
		types.NewRelayV1Hint(
			types.NewTorTCPV1Hint("relay.onion", 4001, 0),
			types.NewDirectTCPV1Hint("relay.example.org", 4001, 0),
			types.NewDirectTCPV1Hint("10.0.0.1", 4001, 0),
		), // 结构重复的中继
	}

	candidates := s.Plan(hints)
	require.Len(t, candidates, 3)

	assert.Equal(t, "->tcp:peer.example.org:80", candidates[0].Description)
	assert.False(t, candidates[0].ViaRelay)
	assert.Equal(t, 0, candidates[0].Group)

	assert.Equal(t, "->relay:tcp:relay.example.org:4001", candidates[1].Description)
	assert.Equal(t, "->relay:tcp:10.0.0.1:4001", candidates[2].Description)
	for _, c := range candidates[1:] {
		assert.True(t, c.ViaRelay)
		assert.Equal(t, 1, c.Group, "同一中继展开的候选应共享组号")
	}
}

func TestService_Plan_WithTor(t *testing.T) {
	tc := &fakeTor{reject: map[string]bool{"10.0.0.1": true}}
	s := NewService(&fakeReactor{}, tc, &bytes.Buffer{})

	hints := []types.Hint{
		types.NewDirectTCPV1Hint("10.0.0.1", 80, 0),
		types.NewTorTCPV1Hint("peer.onion", 80, 0),
		types.NewRelayV1Hint(types.NewDirectTCPV1Hint("10.0.0.1", 4001, 0)),
		types.NewRelayV1Hint(types.NewTorTCPV1Hint("relay.onion", 4001, 0)),
	}

	candidates := s.Plan(hints)
	require.Len(t, candidates, 2)

	assert.Equal(t, "tor->tor:peer.onion:80", candidates[0].Description)
	assert.Equal(t, 0, candidates[0].Group)

	// 第一个中继没有可用候选，不占用组号
	assert.Equal(t, "tor->relay:tor:relay.onion:4001", candidates[1].Description)
	assert.Equal(t, 1, candidates[1].Group)
	assert.Equal(t, types.NewTorTCPV1Hint("relay.onion", 4001, 0), candidates[1].Hint)
}

func TestService_Plan_Empty(t *testing.T) {
	s := NewService(&fakeReactor{}, nil, &bytes.Buffer{})
	assert.Empty(t, s.Plan(nil))
}

func TestService_Reporter(t *testing.T) {
	counter := metrics.NewResolutionCounter()
	base := NewService(&fakeReactor{}, nil, &bytes.Buffer{})
	s := base.WithReporter(counter)

	hs := s.ParseAll([]string{"tcp:a:1", "tcp:b", "udp:c:3", "tcp:d:4"})
	require.Len(t, hs, 2)

	s.Plan([]types.Hint{
		hs[0],
		types.NewTorTCPV1Hint("x.onion", 80, 0),
		types.NewRelayV1Hint(hs[1]),
	})
	_, ok := s.Resolve(nil)
	assert.False(t, ok)

	snap := counter.Snapshot()
	assert.Equal(t, metrics.Count{OK: 2, Failed: 2}, snap.Parse)
	// 直连提示解析两次：一次顶层、一次中继展开
	assert.Equal(t, metrics.Count{OK: 2}, snap.Resolve[types.HintTypeDirectTCPV1])
	assert.Equal(t, metrics.Count{Failed: 1}, snap.Resolve[types.HintTypeTorTCPV1])

	// 原服务不受影响
	base.Parse("tcp:e:5")
	assert.Equal(t, uint64(4), counter.Snapshot().Parse.Total())
}
