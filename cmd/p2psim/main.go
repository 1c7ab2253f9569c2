package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/klaytn-labs/p2psim/internal/driver"
	"github.com/klaytn-labs/p2psim/internal/simlog"
)

var logger = simlog.NewModuleLogger(simlog.ModuleCLI)

var (
	numPeersFlag = cli.IntFlag{
		Name:  "n",
		Usage: "number of peers",
		Value: 15,
	}
	z0Flag = cli.Float64Flag{
		Name:  "z0",
		Usage: "percentage of slow peers",
		Value: 10,
	}
	z1Flag = cli.Float64Flag{
		Name:  "z1",
		Usage: "percentage of low-CPU peers",
		Value: 40,
	}
	txnMeanFlag = cli.Float64Flag{
		Name:  "txn-mean",
		Usage: "mean interarrival time between transactions",
		Value: 8,
	}
	simTimeFlag = cli.Float64Flag{
		Name:  "sim-time",
		Usage: "active-phase simulated time bound",
		Value: 10000,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "deterministic RNG seed",
		Value: 69,
	}
	outDirFlag = cli.StringFlag{
		Name:  "out-dir",
		Usage: "root directory under which logs/ and figures/ are (re)created",
		Value: ".",
	}
)

func run(ctx *cli.Context) error {
	cfg := driver.Config{
		NumPeers: ctx.Int(numPeersFlag.Name),
		Z0:       ctx.Float64(z0Flag.Name),
		Z1:       ctx.Float64(z1Flag.Name),
		TxnMean:  ctx.Float64(txnMeanFlag.Name),
		SimTime:  ctx.Float64(simTimeFlag.Name),
		Seed:     uint64(ctx.Int64(seedFlag.Name)),
		OutDir:   ctx.String(outDirFlag.Name),
	}

	result, err := driver.Run(cfg)
	if err != nil {
		return err
	}

	logger.Infow("simulation complete",
		"peers", cfg.NumPeers,
		"blocksMined", result.Report.TotalMined,
		"longestChain", result.Report.LongestChainLength,
	)
	result.Report.Print(os.Stdout)
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "p2psim"
	app.Usage = "discrete-event simulator for a proof-of-work peer-to-peer network"
	app.Flags = []cli.Flag{
		numPeersFlag,
		z0Flag,
		z1Flag,
		txnMeanFlag,
		simTimeFlag,
		seedFlag,
		outDirFlag,
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
