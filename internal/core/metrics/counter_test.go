package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/dep2p/go-transit/pkg/types"
)

// TestResolutionCounter 测试计数
func TestResolutionCounter(t *testing.T) {
	c := NewResolutionCounter()

	c.LogParse(true)
	c.LogParse(true)
	c.LogParse(false)
	c.LogResolve(types.HintTypeDirectTCPV1, true)
	c.LogResolve(types.HintTypeTorTCPV1, false)
	c.LogResolve("future-v9", false)

	s := c.Snapshot()
	assert.Equal(t, Count{OK: 2, Failed: 1}, s.Parse)
	assert.Equal(t, Count{OK: 1}, s.Resolve[types.HintTypeDirectTCPV1])
	assert.Equal(t, Count{Failed: 1}, s.Resolve[types.HintTypeTorTCPV1])
	assert.Equal(t, Count{}, s.Resolve[types.HintTypeRelayV1])
	assert.Equal(t, Count{Failed: 1}, s.Resolve[OtherKind])
	assert.Equal(t, Count{OK: 1, Failed: 2}, s.Resolved())

	assert.Equal(t,
		"parse=2/1 direct-tcp-v1=1/0 other=0/1 relay-v1=0/0 tor-tcp-v1=0/1",
		s.String())

	c.Reset()
	s = c.Snapshot()
	assert.Equal(t, uint64(0), s.Parse.Total())
	assert.Equal(t, uint64(0), s.Resolved().Total())
	_, hasOther := s.Resolve[OtherKind]
	assert.False(t, hasOther)
}

// TestResolutionCounter_Concurrent 测试并发计数
func TestResolutionCounter_Concurrent(t *testing.T) {
	c := NewResolutionCounter()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.LogParse(j%2 == 0)
				c.LogResolve(types.HintTypeDirectTCPV1, true)
			}
		}()
	}
	wg.Wait()

	s := c.Snapshot()
	assert.Equal(t, Count{OK: 4000, Failed: 4000}, s.Parse)
	assert.Equal(t, uint64(8000), s.Resolve[types.HintTypeDirectTCPV1].OK)
}

// TestModule 测试 Fx 模块
func TestModule(t *testing.T) {
	var (
		r Reporter
		c *ResolutionCounter
	)
	app := fxtest.New(t,
		fx.WithLogger(func() fxevent.Logger { return &fxevent.ZapLogger{Logger: zap.NewNop()} }),
		Module,
		fx.Populate(&r, &c),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, r)
	r.LogParse(true)
	assert.Equal(t, uint64(1), c.Snapshot().Parse.OK)
}
