package pingpong

import (
	"actor-tictactoe/impl/eventlogger"
	"actor-tictactoe/impl/messages"
	"actor-tictactoe/impl/utils"
	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

// Reporter is called once for every Pong the parent receives.
type Reporter func()

// Parent spawns a single Child and forwards every Ping it gets to it.
type Parent struct {
	child  *actor.PID
	report Reporter

	baseLogger *zap.Logger
	logger     *eventlogger.EventLogger
}

func NewParent(report Reporter, logger *zap.Logger) *Parent {
	p := new(Parent)
	p.report = report
	p.baseLogger = logger
	return p
}

// Spawn starts a parent/child pair and returns the parent's address.
func Spawn(root *actor.RootContext, report Reporter, logger *zap.Logger) *actor.PID {
	return root.SpawnPrefix(Props(report, logger), "pingpong")
}

// Props builds a producer creating a fresh Parent per spawn.
func Props(report Reporter, logger *zap.Logger) *actor.Props {
	return actor.PropsFromProducer(
		func() actor.Actor {
			return NewParent(report, logger)
		})
}

func (p *Parent) Receive(context actor.Context) {
	switch context.Message().(type) {
	case *actor.Started:
		p.logger = eventlogger.InitEventLogger(utils.MakeCustomPid(context.Self()), p.baseLogger)
		p.child = context.SpawnPrefix(
			actor.PropsFromProducer(
				func() actor.Actor {
					return &Child{}
				}),
			"child")
		p.logger.OnSpawned("child", utils.MakeCustomPid(p.child))
	case *messages.Ping:
		if utils.SamePid(context.Sender(), p.child) {
			return
		}
		context.Request(p.child, &messages.Ping{})
	case *messages.Pong:
		p.logger.OnPong()
		if p.report != nil {
			p.report()
		}
	}
}

// Child replies to every Ping with a Pong to its parent.
type Child struct{}

func (c *Child) Receive(context actor.Context) {
	if _, ok := context.Message().(*messages.Ping); ok {
		context.Send(context.Parent(), &messages.Pong{})
	}
}
