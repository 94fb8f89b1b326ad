package player

import (
	"actor-tictactoe/impl/apperror"
	"actor-tictactoe/impl/messages"
	"actor-tictactoe/impl/moves"
	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
	"time"
)

const waitTimeout = 2 * time.Second

// supervisor stands in for the coordinator: it spawns the player and records
// whatever the player sends back.
type supervisor struct {
	props    *actor.Props
	spawned  chan *actor.PID
	received chan interface{}
}

func (s *supervisor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		s.spawned <- context.Spawn(s.props)
	case *messages.TurnMade, *messages.Violation:
		s.received <- msg
	}
}

func spawnPlayer(t *testing.T, provider moves.Provider, delay time.Duration) (*actor.ActorSystem, *actor.PID, chan interface{}) {
	system := actor.NewActorSystem()
	s := &supervisor{
		props:    Props(provider, delay, zap.NewNop()),
		spawned:  make(chan *actor.PID, 1),
		received: make(chan interface{}, 10),
	}
	system.Root.Spawn(actor.PropsFromProducer(func() actor.Actor { return s }))

	select {
	case pid := <-s.spawned:
		return system, pid, s.received
	case <-time.After(waitTimeout):
		t.Fatal("player was not spawned")
	}
	return nil, nil, nil
}

func receive(t *testing.T, received chan interface{}) interface{} {
	select {
	case msg := <-received:
		return msg
	case <-time.After(waitTimeout):
		t.Fatal("no message from the player")
	}
	return nil
}

func TestPlay_singleCandidate(t *testing.T) {
	system, pid, received := spawnPlayer(t, moves.NewRandom(1), time.Millisecond)

	system.Root.Send(pid, messages.NewPlay([]int{4}))

	msg := receive(t, received)
	require.IsType(t, &messages.TurnMade{}, msg)
	assert.Equal(t, 4, msg.(*messages.TurnMade).SelectedIndex)
}

func TestPlay_waitsForDelay(t *testing.T) {
	delay := 50 * time.Millisecond
	system, pid, received := spawnPlayer(t, moves.Lowest{}, delay)

	start := time.Now()
	system.Root.Send(pid, messages.NewPlay([]int{2, 6}))

	msg := receive(t, received)
	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Equal(t, 2, msg.(*messages.TurnMade).SelectedIndex)
}

func TestPlay_queuedWhileComputing(t *testing.T) {
	system, pid, received := spawnPlayer(t, moves.Lowest{}, 20*time.Millisecond)

	system.Root.Send(pid, messages.NewPlay([]int{4}))
	system.Root.Send(pid, messages.NewPlay([]int{7}))

	first := receive(t, received)
	second := receive(t, received)
	assert.Equal(t, 4, first.(*messages.TurnMade).SelectedIndex)
	assert.Equal(t, 7, second.(*messages.TurnMade).SelectedIndex)
}

func TestPlay_answersEveryRequest(t *testing.T) {
	system, pid, received := spawnPlayer(t, moves.Lowest{}, time.Millisecond)

	for _, candidates := range [][]int{{0, 1}, {3}, {8, 5}} {
		system.Root.Send(pid, messages.NewPlay(candidates))
		msg := receive(t, received)
		assert.Contains(t, candidates, msg.(*messages.TurnMade).SelectedIndex)
	}
}

func TestPlay_emptyCandidates(t *testing.T) {
	system, pid, received := spawnPlayer(t, moves.Lowest{}, time.Millisecond)

	system.Root.Send(pid, messages.NewPlay(nil))

	msg := receive(t, received)
	require.IsType(t, &messages.Violation{}, msg)
	assert.ErrorIs(t, msg.(*messages.Violation).Err, apperror.ErrInvalidMoveSelection)
}

func TestPlay_selectionOutsideCandidates(t *testing.T) {
	outside := moves.Func(func(candidates []int) int { return 9 })
	system, pid, received := spawnPlayer(t, outside, time.Millisecond)

	system.Root.Send(pid, messages.NewPlay([]int{1, 2}))

	msg := receive(t, received)
	require.IsType(t, &messages.Violation{}, msg)
	assert.ErrorIs(t, msg.(*messages.Violation).Err, apperror.ErrInvalidMoveSelection)
}

func TestNewPlayer_defaultCandidates(t *testing.T) {
	p := NewPlayer(moves.Lowest{}, 0, zap.NewNop())

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, p.candidates)
	assert.Equal(t, Idle, p.state)
	assert.Equal(t, "idle", p.state.String())
}
