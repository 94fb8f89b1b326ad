package player

import (
	"actor-tictactoe/impl/apperror"
	"actor-tictactoe/impl/board"
	"actor-tictactoe/impl/eventlogger"
	"actor-tictactoe/impl/messages"
	"actor-tictactoe/impl/moves"
	"actor-tictactoe/impl/utils"
	"fmt"
	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"time"
)

type State int32

const (
	Idle State = iota
	ComputingMove
)

func (s State) String() string {
	if s == ComputingMove {
		return "computingMove"
	}
	return "idle"
}

// Player answers every Play with a TurnMade sent to its parent after a delay.
// Plays that arrive while a move is being computed wait for it to finish.
type Player struct {
	provider moves.Provider
	delay    time.Duration

	state      State
	candidates []int
	pending    []*messages.Play

	baseLogger *zap.Logger
	logger     *eventlogger.EventLogger
}

func NewPlayer(provider moves.Provider, delay time.Duration, logger *zap.Logger) *Player {
	p := new(Player)
	p.provider = provider
	p.delay = delay
	p.state = Idle
	p.candidates = make([]int, board.Size)
	for i := range p.candidates {
		p.candidates[i] = i
	}
	p.baseLogger = logger
	return p
}

// Props builds a producer creating a fresh Player per spawn.
func Props(provider moves.Provider, delay time.Duration, logger *zap.Logger) *actor.Props {
	return actor.PropsFromProducer(
		func() actor.Actor {
			return NewPlayer(provider, delay, logger)
		})
}

func (p *Player) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		p.logger = eventlogger.InitEventLogger(utils.MakeCustomPid(context.Self()), p.baseLogger)
	case *messages.Play:
		if p.state == ComputingMove {
			p.pending = append(p.pending, msg.Copy())
			p.logger.OnPlayQueued(msg.Candidates, len(p.pending))
			return
		}
		p.play(context, msg)
	}
}

func (p *Player) play(context actor.Context, msg *messages.Play) {
	p.candidates = make([]int, len(msg.Candidates))
	copy(p.candidates, msg.Candidates)
	p.logger.OnPlayReceived(p.candidates)

	p.state = ComputingMove
	p.logger.OnStateEntered(p.state.String())

	context.ReenterAfter(
		actor.NewFuture(context.ActorSystem(), p.delay),
		func(res interface{}, err error) {
			p.completeTurn(context)
		})
}

func (p *Player) completeTurn(context actor.Context) {
	index, err := p.selectMove()
	if err != nil {
		p.logger.OnViolation(err)
		context.Request(context.Parent(), &messages.Violation{Err: err})
	} else {
		p.logger.OnMoveSelected(index)
		context.Request(context.Parent(), &messages.TurnMade{SelectedIndex: index})
	}

	p.state = Idle
	p.logger.OnStateEntered(p.state.String())

	if len(p.pending) > 0 {
		next := p.pending[0]
		p.pending = p.pending[1:]
		p.play(context, next)
	}
}

func (p *Player) selectMove() (int, error) {
	if len(p.candidates) == 0 {
		return 0, fmt.Errorf("%w: candidate set is empty", apperror.ErrInvalidMoveSelection)
	}

	index, err := p.provider.Choose(p.candidates)
	if err != nil {
		return 0, err
	}
	if !slices.Contains(p.candidates, index) {
		return 0, fmt.Errorf(
			"%w: index %d is not one of %v", apperror.ErrInvalidMoveSelection, index, p.candidates)
	}
	return index, nil
}
