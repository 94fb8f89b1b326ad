package render

import (
	"actor-tictactoe/impl/board"
	"actor-tictactoe/impl/coordinator"
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestConsole_render(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(&out)

	console.Render(coordinator.Snapshot{
		State: coordinator.TurnForPlayerB,
		Board: board.Board{board.MarkA},
		Turns: 1,
	})

	assert.Equal(t, "[playing.turn.playerB] turns: 1\nX| | \n-+-+-\n | | \n-+-+-\n | | \n\n", out.String())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	_, ok := r.Last()
	assert.False(t, ok)

	r.Render(coordinator.Snapshot{State: coordinator.Setup})
	r.Render(coordinator.Snapshot{State: coordinator.Finale, Turns: 9})

	snapshots := r.Snapshots()
	assert.Len(t, snapshots, 2)
	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, coordinator.Finale, last.State)
}

func TestMulti(t *testing.T) {
	fst, snd := NewRecorder(), NewRecorder()

	Multi{fst, snd}.Render(coordinator.Snapshot{State: coordinator.Setup})

	assert.Len(t, fst.Snapshots(), 1)
	assert.Len(t, snd.Snapshots(), 1)
}
