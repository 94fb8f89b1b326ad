package messages

import (
	"fmt"
)

// Start moves the coordinator out of setup. It carries no payload.
type Start struct{}

// Play asks a player to pick one of Candidates. Build it with NewPlay.
type Play struct {
	Candidates []int
}

func NewPlay(candidates []int) *Play {
	return &Play{Candidates: copyIndices(candidates)}
}

// TurnMade is a player's answer to Play.
type TurnMade struct {
	SelectedIndex int
}

// Violation is sent instead of TurnMade when a player breaks its contract.
type Violation struct {
	Err error
}

// SnapshotRequest is answered by the coordinator with its current snapshot.
type SnapshotRequest struct{}

type Ping struct{}

type Pong struct{}

func (m *Start) String() string {
	return "Start{}"
}

func (m *Play) String() string {
	return fmt.Sprintf("Play{candidates: %v}", m.Candidates)
}

func (m *Play) Copy() *Play {
	if m == nil {
		return nil
	}
	return NewPlay(m.Candidates)
}

func (m *TurnMade) String() string {
	return fmt.Sprintf("TurnMade{selectedIndex: %d}", m.SelectedIndex)
}

func (m *Violation) String() string {
	return fmt.Sprintf("Violation{%v}", m.Err)
}

func (m *SnapshotRequest) String() string {
	return "SnapshotRequest{}"
}

func (m *Ping) String() string {
	return "Ping{}"
}

func (m *Pong) String() string {
	return "Pong{}"
}

func copyIndices(indices []int) []int {
	res := make([]int, len(indices))
	copy(res, indices)
	return res
}
