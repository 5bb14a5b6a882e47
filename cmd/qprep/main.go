package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/theapemachine/qprep"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "qprep"})
	app := newApp(os.Stdin, os.Stdout, os.Stderr, logger)

	if err := app.Run(os.Args); err != nil {
		logger.Error("failed to prepare state", "err", err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out, errOut io.Writer, logger *log.Logger) *cli.App {
	return &cli.App{
		Name:      "qprep",
		Usage:     "Prepare a normalized 2 or 3 qubit state vector",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a config file (yaml, toml or json)",
			},
			&cli.IntFlag{
				Name:    "qubits",
				Aliases: []string{"n"},
				Usage:   "Number of qubits, 2 or 3 (prompted when unset)",
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "Amplitude source: manual/m or test/t (prompted when unset)",
			},
			&cli.StringFlag{
				Name:    "amplitudes",
				Aliases: []string{"a"},
				Usage:   "Amplitudes for manual mode, e.g. \"1 1j 0 0\" (prompted when unset)",
			},
			&cli.IntFlag{
				Name:    "precision",
				Aliases: []string{"p"},
				Usage:   "Decimals printed per component, negative for full precision",
			},
			&cli.BoolFlag{
				Name:  "probabilities",
				Usage: "Also print the probability of each basis state",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "Dump the prepared vector for debugging",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
		},
		Action: func(c *cli.Context) error {
			return prepareCommand(c, logger)
		},
	}
}

func prepareCommand(c *cli.Context, logger *log.Logger) error {
	cfg, err := qprep.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	applyFlags(c, cfg)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", qprep.ErrInvalidInput, err)
	}
	logger.SetLevel(level)

	out := c.App.Writer
	prompt := &prompter{in: bufio.NewReader(c.App.Reader), out: out}

	qubits := cfg.Qubits
	if qubits == 0 {
		if qubits, err = prompt.qubits(); err != nil {
			return err
		}
	}

	if !qubits.Supported() {
		return fmt.Errorf("%w: only 2 or 3 qubits are supported, got %d", qprep.ErrInvalidInput, qubits)
	}

	modeText := cfg.Mode
	if modeText == "" {
		if modeText, err = prompt.line(
			"Type 'manual' / 'm' to enter amplitudes or 'test' / 't' for test state: ",
		); err != nil {
			return err
		}
	}

	mode, err := qprep.ParseMode(modeText)
	if err != nil {
		return err
	}

	logger.Debug("preparing state", "qubits", qubits, "mode", mode)

	var input string
	if mode == qprep.ModeManual {
		input = c.String("amplitudes")
		if !c.IsSet("amplitudes") {
			dim, _ := qprep.Dimension(qubits)
			if input, err = prompt.line(fmt.Sprintf(
				"Enter %d amplitudes (real or complex, e.g. 1 or 1j), separated by spaces:\n> ", dim,
			)); err != nil {
				return err
			}
		}
	}

	src, err := qprep.NewSource(mode, input)
	if err != nil {
		return err
	}

	if mode == qprep.ModeTest {
		basis, err := src.Amplitudes(qubits)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Using test state: %s\n", basis.Format(cfg.Precision))
	}

	state, err := qprep.Prepare(src, qubits)
	if err != nil {
		return err
	}

	if !state.IsNormalized(cfg.Tolerance) {
		return fmt.Errorf("%w: norm %v outside tolerance %v", qprep.ErrInvalidState, state.Norm(), cfg.Tolerance)
	}

	fmt.Fprintf(out, "Normalized state: %s\n", state.Format(cfg.Precision))

	if cfg.Probabilities {
		printProbabilities(out, state, qubits, cfg.Precision)
	}

	if c.Bool("dump") {
		spew.Fdump(out, state)
	}

	return nil
}

// applyFlags lets explicitly set flags win over file and environment values.
func applyFlags(c *cli.Context, cfg *qprep.Config) {
	if c.IsSet("qubits") {
		cfg.Qubits = qprep.QubitCount(c.Int("qubits"))
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("precision") {
		cfg.Precision = c.Int("precision")
	}
	if c.IsSet("probabilities") {
		cfg.Probabilities = c.Bool("probabilities")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
}

func printProbabilities(out io.Writer, state qprep.Amplitudes, qubits qprep.QubitCount, precision int) {
	for i, prob := range state.Probabilities() {
		fmt.Fprintf(out, "|%0*b⟩ %s\n", int(qubits), i, strconv.FormatFloat(prob, 'f', precision, 64))
	}
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) line(msg string) (string, error) {
	fmt.Fprint(p.out, msg)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: no answer to prompt: %v", qprep.ErrInvalidInput, err)
	}

	return strings.TrimSpace(line), nil
}

func (p *prompter) qubits() (qprep.QubitCount, error) {
	answer, err := p.line("How many qubits? Enter 2 or 3 only:\n> ")
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a qubit count", qprep.ErrInvalidInput, answer)
	}

	return qprep.QubitCount(n), nil
}
