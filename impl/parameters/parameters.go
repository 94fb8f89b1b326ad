package parameters

import (
	"actor-tictactoe/impl/apperror"
	"actor-tictactoe/impl/board"
	"actor-tictactoe/impl/moves"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap/zapcore"
	"time"
)

type Parameters struct {
	// Player. A zero ThinkingTimeNs counts as unset and takes the default, use
	// SetThinkingTimeNs to answer without delay.
	ThinkingTimeNs int    `json:"thinking_time_ns" yaml:"thinking_time_ns" env:"TTT_THINKING_TIME_NS" env-default:"500000000"`
	MoveProvider   string `json:"move_provider" yaml:"move_provider" env:"TTT_MOVE_PROVIDER" env-default:"random"`
	Seed           uint64 `json:"seed" yaml:"seed" env:"TTT_SEED"`

	// Coordinator
	FirstPlayer string `json:"first_player" yaml:"first_player" env:"TTT_FIRST_PLAYER" env-default:"a"`

	// Logging
	LogLevel string `json:"log_level" yaml:"log_level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFile  string `json:"log_file" yaml:"log_file" env:"TTT_LOG_FILE"`
}

// Load reads parameters from path, or from the environment alone when path is
// empty. Values missing in both take their defaults.
func Load(path string) (*Parameters, error) {
	p := &Parameters{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(p)
	} else {
		err = cleanenv.ReadConfig(path, p)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load parameters: %w", err)
	}

	if err = p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parameters) Validate() error {
	if p.ThinkingTimeNs < 0 {
		return fmt.Errorf("%w: thinking time must be non-negative, got %d", apperror.ErrInvalidParameters, p.ThinkingTimeNs)
	}
	if _, err := board.ParseTurnOrder(p.FirstPlayer); err != nil {
		return err
	}
	if _, err := moves.New(p.MoveProvider, p.Seed); err != nil {
		return err
	}
	if _, err := p.Level(); err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidParameters, err)
	}
	return nil
}

func (p *Parameters) Level() (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(p.LogLevel))
	return level, err
}

// SetThinkingTimeNs overrides the loaded value, zero included.
func (p *Parameters) SetThinkingTimeNs(ns int) error {
	if ns < 0 {
		return fmt.Errorf("%w: thinking time must be non-negative, got %d", apperror.ErrInvalidParameters, ns)
	}
	p.ThinkingTimeNs = ns
	return nil
}

func (p *Parameters) ThinkingTime() time.Duration {
	return time.Duration(p.ThinkingTimeNs)
}

// First returns the configured first player, PlayerA when it does not parse.
func (p *Parameters) First() board.TurnOrder {
	turn, _ := board.ParseTurnOrder(p.FirstPlayer)
	return turn
}
