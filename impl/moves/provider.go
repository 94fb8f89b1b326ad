package moves

import (
	"actor-tictactoe/impl/apperror"
	"fmt"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"sync"
	"time"
)

// Provider picks one of the offered board positions.
type Provider interface {
	Choose(candidates []int) (int, error)
}

// Func adapts a plain selection function. It is not checked against the
// candidates, the player does that.
type Func func(candidates []int) int

func (f Func) Choose(candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: no candidates", apperror.ErrInvalidMoveSelection)
	}
	return f(candidates), nil
}

type Lowest struct{}

func (Lowest) Choose(candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: no candidates", apperror.ErrInvalidMoveSelection)
	}
	lowest := candidates[0]
	for _, c := range candidates[1:] {
		if c < lowest {
			lowest = c
		}
	}
	return lowest, nil
}

// Random samples the candidates uniformly. It is shared by both players, each
// running on its own goroutine, so the source is guarded.
type Random struct {
	mutex *sync.Mutex
	src   xrand.Source
}

func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{
		mutex: &sync.Mutex{},
		src:   xrand.NewSource(seed),
	}
}

func (r *Random) Choose(candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: no candidates", apperror.ErrInvalidMoveSelection)
	}

	weights := make([]float64, len(candidates))
	for i := range weights {
		weights[i] = 1
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	categorical := distuv.NewCategorical(weights, r.src)
	return candidates[int(categorical.Rand())], nil
}

func New(name string, seed uint64) (Provider, error) {
	switch name {
	case "random":
		return NewRandom(seed), nil
	case "lowest":
		return Lowest{}, nil
	}
	return nil, fmt.Errorf("%w: unknown move provider %q", apperror.ErrInvalidParameters, name)
}
