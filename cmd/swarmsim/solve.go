package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/swarmsim/binrouter"
	"github.com/katalvlaran/swarmsim/internal/metrics"
	"github.com/katalvlaran/swarmsim/internal/statusserver"
	"github.com/katalvlaran/swarmsim/internal/telemetry"
)

// SolveCommand loads a scenario file, solves it, and writes a CSV trace.
type SolveCommand struct {
	Scenario   string `name:"scenario" help:"Scenario YAML file" type:"path" required:""`
	Out        string `name:"out" help:"CSV trace output path" type:"path" required:""`
	Seed       int64  `name:"seed" help:"Override the scenario's map seed"`
	Threads    int    `name:"threads" help:"Override the scenario's planner n_threads"`
	StatusAddr string `name:"status-addr" help:"Serve /status and /metrics on this address"`
}

// Run executes the solve command.
func (cmd *SolveCommand) Run() error {
	log := telemetry.Named("swarmsim")

	sc, err := loadScenario(cmd.Scenario)
	if err != nil {
		return err
	}

	if cmd.Seed != 0 {
		sc.Map.Seed = cmd.Seed
	}
	if sc.Map.Seed == 0 {
		sc.Map.Seed = time.Now().UnixNano()
		log.Info("scenario omitted a seed, derived one", "seed", sc.Map.Seed)
	}
	if cmd.Threads != 0 {
		sc.Planner.NThreads = cmd.Threads
	}

	m := metrics.New()
	r := sc.buildRouter(m)

	var status *statusserver.Server
	if cmd.StatusAddr != "" {
		status = statusserver.New(cmd.StatusAddr, m)
		go func() {
			if err := status.Serve(); err != nil {
				log.Error("status server stopped", "error", err)
			}
		}()
	}

	start := time.Now()
	solveErr := r.Solve(sc.Requests, cmd.Out)
	m.SolveDuration.Observe(time.Since(start).Seconds())

	if status != nil {
		st := statusserver.Status{Done: true}
		if solveErr != nil {
			if berr, ok := unwrapBinrouterError(solveErr); ok && berr == binrouter.ErrGenerateRobotPathsFail {
				st.RobotPhaseError = solveErr.Error()
			} else {
				st.BinPhaseError = solveErr.Error()
			}
		}
		status.SetStatus(st)
	}

	if solveErr != nil {
		return fmt.Errorf("solve: %w", solveErr)
	}
	log.Info("wrote trace", "path", cmd.Out)
	return nil
}

// exitCode maps a returned error to a process exit status, using
// binrouter's Error enum value directly when that's what failed.
func exitCode(err error) int {
	if berr, ok := unwrapBinrouterError(err); ok {
		return int(berr)
	}
	return 1
}

func unwrapBinrouterError(err error) (binrouter.Error, bool) {
	for err != nil {
		if berr, ok := err.(binrouter.Error); ok {
			return berr, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0, false
		}
		err = u.Unwrap()
	}
	return 0, false
}
