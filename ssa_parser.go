package main

import (
	"fmt"
	"io"
	"os"

	"ssa_parser/cfg"
	"ssa_parser/cli"
	"ssa_parser/deps"
	"ssa_parser/ssa"
	"ssa_parser/util/logger"
	"ssa_parser/util/tw"

	"github.com/adampresley/sigint"
	"github.com/alitto/pond"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

func main() {
	// Init logger
	log := logger.New(logrus.InfoLevel)

	// Parse command line arguments
	log.Debug("Parsing command line arguments")
	flags, err := cli.Parse()
	if flags.Version {
		fmt.Println("v1.0.0")
		os.Exit(0)
	}
	if cli.IsErrOfType(err, goFlags.ErrHelp) {
		// Help message will be printed by go-flags
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(flags.LogLevel)

	// Read program config
	cfg, isNewCfg, err := cfg.Init(log, flags.ProgramCfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if isNewCfg {
		log.Infof("New config is written to %v, please verify it and start this program again", flags.ProgramCfgPath)
		os.Exit(0)
	}

	sigint.ListenForSIGINT(func() {
		log.Warn("Interrupted, exiting")
		os.Exit(130)
	})

	if err := run(log, flags, cfg); err != nil {
		log.Fatal(err)
	}
}

// result represents outcome of reading one input
type result struct {
	input string
	file  *ssa.File
	err   error
}

// run reads every input of <flags> concurrently, then rewrites or prints them in input order
func run(log *logrus.Logger, flags cli.Flags, cfg cfg.Root) error {
	repo := ssa.NewRepo(log, cfg)
	inputs := flags.Args.Inputs
	if len(inputs) == 0 {
		log.Warn("No input scripts given, nothing to do")
		return nil
	}

	results := make([]result, len(inputs))
	pool := pond.New(cfg.Output.Workers, 0, pond.MinWorkers(0))
	for idx, input := range inputs {
		idx, input := idx, input
		pool.Submit(func() {
			log.Infof("Reading %v", input)
			f, err := repo.Open(input)
			if err == nil && flags.InPlace {
				log.Infof("Rewriting %v", input)
				err = repo.Save(f, input)
			}
			results[idx] = result{input: input, file: f, err: err}
		})
	}
	pool.StopAndWait()

	failed := 0
	for _, res := range results {
		if res.err != nil {
			log.Error(res.err)
			failed++
		}
	}
	if !flags.InPlace {
		if err := output(repo, flags, results); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Newf("Failed to process %v of %v scripts", failed, len(inputs))
	}
	return nil
}

// scriptWriter renders read scripts
type scriptWriter interface {
	deps.Global
	Render(f *ssa.File) string
	WriteTables(w tw.Writer, f *ssa.File)
}

// output writes successfully read scripts of <results> in format of <flags>
func output(repo scriptWriter, flags cli.Flags, results []result) error {
	var out io.Writer = os.Stdout
	if flags.Output != "" {
		file, err := os.Create(flags.Output)
		if err != nil {
			return errors.Wrap(err, "Create output file")
		}
		defer file.Close()
		out = file
	}

	heading := color.New(color.FgCyan, color.Bold)
	for _, res := range results {
		if res.err != nil {
			continue
		}
		repo.Log().Debugf("Writing %v as %v", res.input, flags.Format)
		switch flags.Format {
		case cli.ASS:
			if _, err := io.WriteString(out, repo.Render(res.file)); err != nil {
				return errors.Wrap(err, "Write script")
			}
		case cli.JSON:
			snapshot, err := ssa.MarshalSnapshot(res.file)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, string(snapshot)); err != nil {
				return errors.Wrap(err, "Write snapshot")
			}
		case cli.Table:
			if _, err := heading.Fprintln(out, res.input); err != nil {
				return errors.Wrap(err, "Write heading")
			}
			repo.WriteTables(tw.New(out), res.file)
		}
	}
	return nil
}
