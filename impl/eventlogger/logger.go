package eventlogger

import (
	"actor-tictactoe/impl/board"
	"go.uber.org/zap"
)

type EventLogger struct {
	pid    string
	logger *zap.Logger
}

func InitEventLogger(pid string, logger *zap.Logger) *EventLogger {
	el := new(EventLogger)
	el.pid = pid
	el.logger = logger.With(zap.String("pid", pid))
	return el
}

func (el *EventLogger) Logger() *zap.Logger {
	return el.logger
}

func (el *EventLogger) OnSpawned(role string, child string) {
	el.logger.Info("spawned actor", zap.String("role", role), zap.String("child", child))
}

func (el *EventLogger) OnStateEntered(state string) {
	el.logger.Debug("entered state", zap.String("state", state))
}

func (el *EventLogger) OnPlaySent(turn board.TurnOrder, candidates []int) {
	el.logger.Debug("play sent", zap.Stringer("turn", turn), zap.Ints("candidates", candidates))
}

func (el *EventLogger) OnPlayReceived(candidates []int) {
	el.logger.Debug("play received", zap.Ints("candidates", candidates))
}

func (el *EventLogger) OnPlayQueued(candidates []int, queued int) {
	el.logger.Warn(
		"play received while computing a move, queued",
		zap.Ints("candidates", candidates), zap.Int("queued", queued))
}

func (el *EventLogger) OnMoveSelected(index int) {
	el.logger.Debug("move selected", zap.Int("index", index))
}

func (el *EventLogger) OnTurnMade(turn board.TurnOrder, index int, turns int) {
	el.logger.Info("turn is made", zap.Stringer("by", turn), zap.Int("index", index), zap.Int("turns", turns))
}

func (el *EventLogger) OnIgnoredStart(state string) {
	el.logger.Debug("start signal ignored", zap.String("state", state))
}

func (el *EventLogger) OnOrphan(err error, sender string, state string) {
	el.logger.Warn("turn result ignored", zap.Error(err), zap.String("sender", sender), zap.String("state", state))
}

func (el *EventLogger) OnViolation(err error) {
	el.logger.Error("contract violation", zap.Error(err))
}

func (el *EventLogger) OnFinale(field board.Board, turns int) {
	el.logger.Info(
		"game ended, did someone win?",
		zap.Strings("field", marks(field)), zap.Int("turns", turns))
}

func (el *EventLogger) OnPong() {
	el.logger.Info("pong received")
}

func (el *EventLogger) OnDeadLetter(to string, message interface{}) {
	el.logger.Warn("dead letter detected", zap.String("to", to), zap.Any("message", message))
}

func marks(field board.Board) []string {
	res := make([]string, board.Size)
	for i, cell := range field {
		res[i] = cell.String()
	}
	return res
}
