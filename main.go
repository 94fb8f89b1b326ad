package main

import (
	"actor-tictactoe/impl/board"
	"actor-tictactoe/impl/eventlogger"
	"actor-tictactoe/impl/messages"
	"actor-tictactoe/impl/moves"
	"actor-tictactoe/impl/parameters"
	"actor-tictactoe/impl/pingpong"
	"actor-tictactoe/impl/render"
	"actor-tictactoe/impl/session"
	"actor-tictactoe/impl/utils"
	"context"
	"flag"
	"fmt"
	console "github.com/asynkron/goconsole"
	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
	"log"
	"os"
	"strings"
	"time"
)

var (
	configFile = flag.String("config", "", "Path to a yaml or json file with game parameters")
	logFile    = flag.String("log_file", "",
		"Path to the file where to save logs, overrides the log_file parameter")
	autoStart    = flag.Bool("start", false, "Start the game right away and exit once it is over")
	thinkingTime = flag.Int("thinking_time_ns", -1,
		"Delay in ns before a player answers, overrides the config. "+
			"A thinking_time_ns of 0 in the config file falls back to the 500ms default, use this flag for 0")
)

const usage = "commands: start, ping, board, history, quit"

func main() {
	flag.Parse()

	params, e := parameters.Load(*configFile)
	if e != nil {
		log.Fatalf("Could not load parameters: %s", e)
	}
	if *logFile != "" {
		params.LogFile = *logFile
	}
	if *thinkingTime >= 0 {
		if e = params.SetThinkingTimeNs(*thinkingTime); e != nil {
			log.Fatalf("Invalid thinking time: %s", e)
		}
	}

	level, _ := params.Level()
	logger, e := utils.NewLogger(level, params.LogFile)
	if e != nil {
		log.Fatalf("Could not create a logger: %s", e)
	}
	defer func() { _ = logger.Sync() }()

	provider, e := moves.New(params.MoveProvider, params.Seed)
	if e != nil {
		logger.Fatal("Could not create a move provider", zap.Error(e))
	}

	system := actor.NewActorSystem()
	systemLogger := eventlogger.InitEventLogger("system", logger.Named("system"))
	system.EventStream.Subscribe(
		func(event interface{}) {
			deadLetter, ok := event.(*actor.DeadLetterEvent)
			if ok {
				systemLogger.OnDeadLetter(utils.MakeCustomPid(deadLetter.PID), deadLetter.Message)
			}
		},
	)

	history := render.NewRecorder()
	game := session.New(
		system, params, provider, render.Multi{render.NewConsole(os.Stdout), history}, logger)
	pinger := pingpong.Spawn(
		system.Root,
		func() { fmt.Println("pong received!") },
		logger.Named("pingpong"))

	if *autoStart {
		game.Start()
		report(logger, game)
		_ = game.Close()
		return
	}

	fmt.Println(usage)
	started := false
	for {
		line, e := console.ReadLine()
		if e != nil {
			break
		}

		switch strings.TrimSpace(strings.ToLower(line)) {
		case "start":
			game.Start()
			if !started {
				started = true
				go report(logger, game)
			}
		case "ping":
			system.Root.Send(pinger, &messages.Ping{})
		case "board":
			snapshot, e := game.Snapshot(time.Second)
			if e != nil {
				logger.Warn("Could not get a snapshot", zap.Error(e))
				continue
			}
			fmt.Printf("[%s]\n%s\n", snapshot.State, snapshot.Board)
		case "history":
			for i, snapshot := range history.Snapshots() {
				fmt.Printf("%d. %s, %d/%d cells taken\n", i, snapshot.State, snapshot.Board.Occupied(), board.Size)
			}
		case "quit", "exit":
			_ = game.Close()
			return
		default:
			fmt.Println(usage)
		}
	}
	_ = game.Close()
}

// report waits for the game and exits the process when it halted on a
// broken invariant.
func report(logger *zap.Logger, game *session.Session) {
	result, e := game.Wait(context.Background())
	if e != nil {
		logger.Error("Game did not finish", zap.Error(e))
		return
	}
	if result.Err != nil {
		logger.Fatal("Game halted on a broken invariant",
			zap.String("session", game.ID()), zap.Error(result.Err))
	}
	fmt.Printf("Game over after %d turns\n%s\n", result.Turns, result.Board)
}
