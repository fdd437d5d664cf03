// Command fovsim replays a zoom scenario headlessly and prints the camera FOV
// after every frame.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/milk9111/simplezoom/common"
)

type cli struct {
	Scenario string `arg:"" help:"Scenario yaml file." type:"existingfile"`
	Every    int    `help:"Only print every Nth tick." default:"1"`
	Debug    bool   `help:"Log system diagnostics to stderr."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("fovsim"),
		kong.Description("Replay a zoom scenario without a window."),
		kong.UsageOnError(),
	)

	if err := run(c); err != nil {
		fmt.Fprintf(os.Stderr, "fovsim: %v\n", err)
		os.Exit(1)
	}
}

func run(c cli) error {
	log := common.NopLogger()
	if c.Debug {
		l, err := common.NewLogger(true)
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()
		log = l
	}

	sc, err := LoadScenario(c.Scenario)
	if err != nil {
		return err
	}
	rows, err := Run(sc, log)
	if err != nil {
		return err
	}
	return WriteReport(os.Stdout, rows, c.Every)
}
