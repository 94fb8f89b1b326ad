package apperror

import "errors"

var (
	// ErrInvalidMoveSelection is a player contract violation: the move provider was
	// called with no candidates or picked an index it was not offered.
	ErrInvalidMoveSelection = errors.New("invalid move selection")
	// ErrDuplicateWrite means a mark was written into an occupied cell.
	ErrDuplicateWrite = errors.New("cell is already occupied")
	// ErrOrphanMessage marks a turn result nobody was waiting for.
	ErrOrphanMessage = errors.New("orphan turn result")
	// ErrOutstandingPlay means a second play request was about to be sent
	// before the first one was answered.
	ErrOutstandingPlay = errors.New("play request already outstanding")

	ErrInvalidCell       = errors.New("invalid cell")
	ErrInvalidParameters = errors.New("invalid parameters")
)
