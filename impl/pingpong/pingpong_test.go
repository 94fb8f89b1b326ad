package pingpong

import (
	"actor-tictactoe/impl/messages"
	"actor-tictactoe/impl/utils"
	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
	"time"
)

func waitForPong(t *testing.T, pongs chan struct{}) {
	select {
	case <-pongs:
	case <-time.After(2 * time.Second):
		t.Fatal("pong was not reported")
	}
}

func TestPing_singlePong(t *testing.T) {
	system := actor.NewActorSystem()
	pongs := make(chan struct{}, 10)
	parent := Spawn(system.Root, func() { pongs <- struct{}{} }, zap.NewNop())

	system.Root.Send(parent, &messages.Ping{})

	waitForPong(t, pongs)
	select {
	case <-pongs:
		t.Fatal("more than one pong for a single ping")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPing_childAnswersAgain(t *testing.T) {
	system := actor.NewActorSystem()
	pongs := make(chan struct{}, 10)
	parent := Spawn(system.Root, func() { pongs <- struct{}{} }, zap.NewNop())

	system.Root.Send(parent, &messages.Ping{})
	waitForPong(t, pongs)
	system.Root.Send(parent, &messages.Ping{})
	waitForPong(t, pongs)
}

func TestPing_logsPong(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	system := actor.NewActorSystem()
	pongs := make(chan struct{}, 10)
	parent := Spawn(system.Root, func() { pongs <- struct{}{} }, zap.New(core))

	system.Root.Send(parent, &messages.Ping{})
	system.Root.Send(parent, &messages.Ping{})
	waitForPong(t, pongs)
	waitForPong(t, pongs)

	assert.Equal(t, 2, logs.FilterMessage("pong received").Len())
	assert.Equal(t, 1, logs.FilterMessage("spawned actor").Len())
}

func TestParent_nilReporter(t *testing.T) {
	system := actor.NewActorSystem()
	core, logs := observer.New(zapcore.InfoLevel)
	parent := Spawn(system.Root, nil, zap.New(core))

	system.Root.Send(parent, &messages.Ping{})

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("pong received").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestProps_freshParentPerSpawn(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	system := actor.NewActorSystem()
	pongs := make(chan struct{}, 10)
	props := Props(func() { pongs <- struct{}{} }, zap.New(core))

	first := system.Root.Spawn(props)
	second := system.Root.Spawn(props)
	assert.Eventually(t, func() bool {
		return logs.FilterMessage("spawned actor").Len() == 2
	}, 2*time.Second, 10*time.Millisecond)

	system.Root.Send(first, &messages.Ping{})
	waitForPong(t, pongs)

	pongLogs := logs.FilterMessage("pong received").All()
	require.Len(t, pongLogs, 1)
	assert.Equal(t, utils.MakeCustomPid(first), pongLogs[0].ContextMap()["pid"])
	assert.NotEqual(t, utils.MakeCustomPid(second), pongLogs[0].ContextMap()["pid"])
}
