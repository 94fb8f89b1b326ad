package coordinator

import (
	"actor-tictactoe/impl/apperror"
	"actor-tictactoe/impl/board"
	"actor-tictactoe/impl/eventlogger"
	"actor-tictactoe/impl/messages"
	"actor-tictactoe/impl/utils"
	"fmt"
	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

// Coordinator owns the board and the turn order and drives the two players it
// spawns. Only one player holds a Play request at any time.
type Coordinator struct {
	playerProps *actor.Props
	renderer    Renderer
	results     chan<- *Result

	state     State
	field     board.Board
	turnOrder board.TurnOrder
	players   [2]*actor.PID
	active    *actor.PID
	turns     int
	moves     []Move
	published bool

	baseLogger *zap.Logger
	logger     *eventlogger.EventLogger
}

// NewCoordinator creates a coordinator in setup. results should be buffered,
// the coordinator never blocks on it.
func NewCoordinator(
	playerProps *actor.Props,
	first board.TurnOrder,
	renderer Renderer,
	results chan<- *Result,
	logger *zap.Logger,
) *Coordinator {
	c := new(Coordinator)
	c.playerProps = playerProps
	c.turnOrder = first
	c.renderer = renderer
	if c.renderer == nil {
		c.renderer = nopRenderer{}
	}
	c.results = results
	c.state = Setup
	c.baseLogger = logger
	return c
}

// Props builds a producer creating a fresh Coordinator per spawn, so a restart
// starts over in setup.
func Props(
	playerProps *actor.Props,
	first board.TurnOrder,
	renderer Renderer,
	results chan<- *Result,
	logger *zap.Logger,
) *actor.Props {
	return actor.PropsFromProducer(
		func() actor.Actor {
			return NewCoordinator(playerProps, first, renderer, results, logger)
		})
}

func (c *Coordinator) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *actor.Started:
		c.logger = eventlogger.InitEventLogger(utils.MakeCustomPid(context.Self()), c.baseLogger)
		c.enterSetup(context)
	case *messages.Start:
		if c.state != Setup {
			c.logger.OnIgnoredStart(c.state.String())
			return
		}
		c.enterTurn(context, c.turnOrder)
	case *messages.TurnMade:
		if !c.fromActivePlayer(context, msg.String()) {
			return
		}
		c.active = nil
		c.evaluate(context, msg)
	case *messages.Violation:
		if !c.fromActivePlayer(context, msg.String()) {
			return
		}
		c.halt(context, msg.Err)
	case *messages.SnapshotRequest:
		snapshot := c.snapshot()
		context.Respond(&snapshot)
	}
}

// fromActivePlayer reports whether the current message answers the outstanding
// Play. Anything else is logged as an orphan and must be ignored.
func (c *Coordinator) fromActivePlayer(context actor.Context, description string) bool {
	if c.state.InTurn() && utils.SamePid(context.Sender(), c.active) {
		return true
	}
	c.logger.OnOrphan(
		fmt.Errorf("%w: %s", apperror.ErrOrphanMessage, description),
		utils.MakeCustomPid(context.Sender()),
		c.state.String())
	return false
}

func (c *Coordinator) enterSetup(context actor.Context) {
	c.state = Setup
	for _, turn := range []board.TurnOrder{board.PlayerA, board.PlayerB} {
		c.players[turn] = context.SpawnPrefix(c.playerProps, turn.String())
		c.logger.OnSpawned(turn.String(), utils.MakeCustomPid(c.players[turn]))
	}
	c.settle()
}

func (c *Coordinator) enterTurn(context actor.Context, turn board.TurnOrder) {
	if c.active != nil {
		c.halt(context, fmt.Errorf(
			"%w: %s still holds a play request", apperror.ErrOutstandingPlay, utils.MakeCustomPid(c.active)))
		return
	}

	c.state = turnState(turn)
	c.logger.OnStateEntered(c.state.String())

	candidates := c.field.EmptyPositions()
	c.active = c.players[turn]
	context.Request(c.active, messages.NewPlay(candidates))
	c.logger.OnPlaySent(turn, candidates)

	c.settle()
}

// evaluate writes the move, switches the turn and either continues with the
// next player or ends the game, all within the current message.
func (c *Coordinator) evaluate(context actor.Context, msg *messages.TurnMade) {
	c.state = Evaluate
	c.logger.OnStateEntered(c.state.String())

	if err := c.writeMove(msg.SelectedIndex); err != nil {
		c.halt(context, err)
		return
	}
	c.switchTurn()

	switch evt := c.continueOrEnd().(type) {
	case continueEvent:
		c.enterTurn(context, evt.turnOrder)
	case endEvent:
		c.enterFinale(context)
	}
}

func (c *Coordinator) writeMove(index int) error {
	field, err := c.field.Write(index, c.turnOrder.Mark())
	if err != nil {
		return err
	}
	c.field = field
	c.turns++
	if occupied := c.field.Occupied(); occupied != c.turns {
		return fmt.Errorf("%w: %d cells occupied after %d turns", apperror.ErrDuplicateWrite, occupied, c.turns)
	}
	c.moves = append(c.moves, Move{Turn: c.turnOrder, Index: index})
	c.logger.OnTurnMade(c.turnOrder, index, c.turns)
	return nil
}

func (c *Coordinator) switchTurn() {
	c.turnOrder = c.turnOrder.Next()
}

func (c *Coordinator) continueOrEnd() interface{} {
	if c.field.HasEmpty() {
		return continueEvent{turnOrder: c.turnOrder}
	}
	return endEvent{}
}

func (c *Coordinator) enterFinale(context actor.Context) {
	c.state = Finale
	c.stopPlayers(context)
	c.logger.OnFinale(c.field, c.turns)
	c.settle()
	c.publish(nil)
}

func (c *Coordinator) halt(context actor.Context, err error) {
	c.state = Halted
	c.active = nil
	c.stopPlayers(context)
	c.logger.OnViolation(err)
	c.settle()
	c.publish(err)
}

func (c *Coordinator) stopPlayers(context actor.Context) {
	for _, pid := range c.players {
		if pid != nil {
			context.Stop(pid)
		}
	}
}

func (c *Coordinator) publish(err error) {
	if c.published || c.results == nil {
		return
	}
	c.published = true

	moves := make([]Move, len(c.moves))
	copy(moves, c.moves)
	result := &Result{
		Board: c.field,
		Turns: c.turns,
		Moves: moves,
		Err:   err,
	}

	select {
	case c.results <- result:
	default:
		c.logger.Logger().Warn("result dropped, nobody is listening")
	}
}

func (c *Coordinator) snapshot() Snapshot {
	outstanding := 0
	if c.active != nil {
		outstanding = 1
	}
	return Snapshot{
		State:       c.state,
		Board:       c.field,
		TurnOrder:   c.turnOrder,
		Turns:       c.turns,
		Outstanding: outstanding,
	}
}

func (c *Coordinator) settle() {
	c.renderer.Render(c.snapshot())
}
