package render

import (
	"actor-tictactoe/impl/coordinator"
	"fmt"
	"io"
	"sync"
)

// Console prints every settled coordinator state followed by the board.
type Console struct {
	mutex  *sync.Mutex
	writer io.Writer
}

func NewConsole(writer io.Writer) *Console {
	return &Console{
		mutex:  &sync.Mutex{},
		writer: writer,
	}
}

func (c *Console) Render(snapshot coordinator.Snapshot) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	_, _ = fmt.Fprintf(c.writer, "[%s] turns: %d\n%s\n\n", snapshot.State, snapshot.Turns, snapshot.Board)
}

// Recorder keeps every snapshot it is given.
type Recorder struct {
	mutex     *sync.Mutex
	snapshots []coordinator.Snapshot
}

func NewRecorder() *Recorder {
	return &Recorder{mutex: &sync.Mutex{}}
}

func (r *Recorder) Render(snapshot coordinator.Snapshot) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.snapshots = append(r.snapshots, snapshot)
}

func (r *Recorder) Snapshots() []coordinator.Snapshot {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	res := make([]coordinator.Snapshot, len(r.snapshots))
	copy(res, r.snapshots)
	return res
}

func (r *Recorder) Last() (coordinator.Snapshot, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if len(r.snapshots) == 0 {
		return coordinator.Snapshot{}, false
	}
	return r.snapshots[len(r.snapshots)-1], true
}

// Multi fans a snapshot out to several renderers in order.
type Multi []coordinator.Renderer

func (m Multi) Render(snapshot coordinator.Snapshot) {
	for _, r := range m {
		r.Render(snapshot)
	}
}
