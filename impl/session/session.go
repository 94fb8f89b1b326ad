package session

import (
	"actor-tictactoe/impl/coordinator"
	"actor-tictactoe/impl/eventlogger"
	"actor-tictactoe/impl/messages"
	"actor-tictactoe/impl/moves"
	"actor-tictactoe/impl/parameters"
	"actor-tictactoe/impl/player"
	"context"
	"fmt"
	"github.com/asynkron/protoactor-go/actor"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"sync"
	"time"
)

// Session runs exactly one game on an actor system. The coordinator and its
// players live until Close.
type Session struct {
	id     string
	system *actor.ActorSystem
	pid    *actor.PID

	results chan *coordinator.Result
	result  *coordinator.Result
	mutex   *sync.Mutex

	logger *eventlogger.EventLogger
}

func New(
	system *actor.ActorSystem,
	params *parameters.Parameters,
	provider moves.Provider,
	renderer coordinator.Renderer,
	logger *zap.Logger,
) *Session {
	s := new(Session)
	s.id = uuid.NewString()
	s.system = system
	s.results = make(chan *coordinator.Result, 1)
	s.mutex = &sync.Mutex{}

	logger = logger.With(zap.String("session", s.id))

	s.pid = system.Root.SpawnPrefix(
		coordinator.Props(
			player.Props(provider, params.ThinkingTime(), logger.Named("player")),
			params.First(),
			renderer,
			s.results,
			logger.Named("coordinator"),
		),
		"coordinator")

	s.logger = eventlogger.InitEventLogger(s.pid.Id, logger.Named("session"))
	s.logger.OnSpawned("coordinator", s.pid.Id)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) PID() *actor.PID {
	return s.pid
}

// Start sends the start signal. Repeated calls have no further effect.
func (s *Session) Start() {
	s.system.Root.Send(s.pid, &messages.Start{})
}

func (s *Session) Snapshot(timeout time.Duration) (*coordinator.Snapshot, error) {
	res, err := s.system.Root.RequestFuture(s.pid, &messages.SnapshotRequest{}, timeout).Result()
	if err != nil {
		return nil, fmt.Errorf("could not get a snapshot of session %s: %w", s.id, err)
	}
	snapshot, ok := res.(*coordinator.Snapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot response %T", res)
	}
	return snapshot, nil
}

// Wait blocks until the game reaches a terminal state or ctx is done. The
// result is kept, later calls return it immediately.
func (s *Session) Wait(ctx context.Context) (*coordinator.Result, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.result != nil {
		return s.result, nil
	}

	select {
	case result := <-s.results:
		s.result = result
		return result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the coordinator, which stops the players it still supervises.
func (s *Session) Close() error {
	return s.system.Root.PoisonFuture(s.pid).Wait()
}
