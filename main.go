package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/gpt/internal"
	"github.com/baalimago/gpt/internal/utils"
)

func main() {
	ancli.SetupSlog()
	stop := startProfiling()
	code := run(os.Args[1:])
	stop()
	os.Exit(code)
}

// startProfiling writes a cpu profile if DEBUG_CPU is set. The returned func
// stops it.
func startProfiling() func() {
	if !misc.Truthy(os.Getenv("DEBUG_CPU")) {
		return func() {}
	}
	f, err := os.Create("cpu_profile.prof")
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to create profiler file: %v", err))
		return func() {}
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to start profiler : %v", err))
		f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}

// run the command with args and return the exit status
func run(args []string) int {
	v, err := utils.NewEnv()
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to setup environment: %v\n", err))
		return 1
	}
	cmd, err := internal.NewCommand(v)
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to setup: %v\n", err))
		return 1
	}
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		return 1
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("things seems to have worked out. Bye bye!\n")
	}
	return 0
}
