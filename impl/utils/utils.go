package utils

import (
	"fmt"
	"github.com/asynkron/protoactor-go/actor"
	"os"
	"path/filepath"
)

func MakeCustomPid(pid *actor.PID) string {
	if pid == nil {
		return "nil"
	}
	return fmt.Sprintf("Address:%s Id:%s", pid.Address, pid.Id)
}

// SamePid compares actor addresses, ignoring everything but the address and id.
func SamePid(fst *actor.PID, snd *actor.PID) bool {
	if fst == nil || snd == nil {
		return fst == snd
	}
	return fst.Address == snd.Address && fst.Id == snd.Id
}

// EnsureParentDir creates the directories a file at path needs.
func EnsureParentDir(path string) error {
	dir, _ := filepath.Split(path)
	if dir == "" {
		return nil
	}
	if e := os.MkdirAll(dir, os.ModePerm); e != nil {
		return fmt.Errorf("could not create parent directories for %s: %w", path, e)
	}
	return nil
}
