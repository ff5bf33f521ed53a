package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	log "github.com/sirupsen/logrus"
)

func main() {
	// only try dotenv if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.WithError(err).Fatal("could not load .env file")
		}
	}

	app := &cli.App{
		Name:  "setlab",
		Usage: "drive the tree, trie and probed table sets from the command line",
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "kind",
			Usage:   "set implementation: tree, trie, table or hash",
			Value:   KindTree,
			EnvVars: []string{"SETLAB_KIND"},
		},
		&cli.IntFlag{
			Name:    "bits",
			Usage:   "probed table capacity exponent, capacity is 2^bits",
			Value:   8,
			EnvVars: []string{"SETLAB_BITS"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity (debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"SETLAB_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:  "render",
			Usage: "draw the tree shape after the run (tree kind only)",
		},
	}
	app.Before = setupLogging
	app.Commands = []*cli.Command{
		{
			Name:      "apply",
			Usage:     "apply operations: +v adds, -v removes, ?v tests membership",
			ArgsUsage: "<op> [<op>...]",
			Action:    runApply,
		},
		{
			Name:      "load",
			Usage:     "add all words of a file, or stdin when no file is given",
			ArgsUsage: "[file]",
			Action:    runLoad,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("setlab failed")
	}
}

func setupLogging(cctx *cli.Context) error {
	level, err := log.ParseLevel(cctx.String("log-level"))
	if err != nil {
		return err
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(level)
	return nil
}

func newLogger(cctx *cli.Context) *log.Entry {
	return log.WithFields(log.Fields{"kind": cctx.String("kind")})
}

func runApply(cctx *cli.Context) error {
	s, err := newStringSet(cctx.String("kind"), cctx.Int("bits"))
	if err != nil {
		return err
	}
	ops := make([]operation, 0, cctx.NArg())
	for _, arg := range cctx.Args().Slice() {
		op, err := parseOperation(arg)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	results, err := apply(s, ops, newLogger(cctx))
	for _, r := range results {
		fmt.Fprintln(cctx.App.Writer, r)
	}
	if err != nil {
		return err
	}
	describe(s, cctx.App.Writer, cctx.Bool("render"))
	return nil
}

func runLoad(cctx *cli.Context) error {
	s, err := newStringSet(cctx.String("kind"), cctx.Int("bits"))
	if err != nil {
		return err
	}
	in := os.Stdin
	if cctx.NArg() > 0 {
		f, err := os.Open(cctx.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	logger := newLogger(cctx)
	added, err := load(s, in, logger)
	if err != nil {
		return err
	}
	logger.WithField("added", added).Info("words loaded")
	describe(s, cctx.App.Writer, cctx.Bool("render"))
	return nil
}
