package coordinator

import "actor-tictactoe/impl/board"

// State is a coordinator state. Nested states are dot separated, so every
// playing.* state is a sub-state of playing.
type State string

const (
	Setup          State = "setup"
	TurnForPlayerA State = "playing.turn.playerA"
	TurnForPlayerB State = "playing.turn.playerB"
	Evaluate       State = "playing.evaluate"
	Finale         State = "finale"
	// Halted is entered when a player or the board breaks an invariant.
	Halted State = "halted"
)

func turnState(turn board.TurnOrder) State {
	if turn == board.PlayerB {
		return TurnForPlayerB
	}
	return TurnForPlayerA
}

func (s State) InTurn() bool {
	return s == TurnForPlayerA || s == TurnForPlayerB
}

func (s State) Terminal() bool {
	return s == Finale || s == Halted
}

func (s State) String() string {
	return string(s)
}

// Snapshot is a read-only view of the coordinator, handed to renderers and
// returned for SnapshotRequest.
type Snapshot struct {
	State       State
	Board       board.Board
	TurnOrder   board.TurnOrder
	Turns       int
	Outstanding int
}

type Move struct {
	Turn  board.TurnOrder
	Index int
}

// Result is published once, when the coordinator reaches a terminal state.
type Result struct {
	Board board.Board
	Turns int
	Moves []Move
	Err   error
}

type Renderer interface {
	Render(snapshot Snapshot)
}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}

// internal events of the evaluate phase
type continueEvent struct {
	turnOrder board.TurnOrder
}

type endEvent struct{}
