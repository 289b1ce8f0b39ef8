package main

/******************************************************************************

File is structured as so:

	Top level commands:
		encode / decode
		text-encode / text-decode
		analyze
		demo
		version

	Helper functions

Each command that takes input reads it via -i/-f/stdin, and every command
writes its result via -o or stdout, following the same pipe-or-file-or-flag precedence throughout so a
caller doesn't need to remember per-command rules.

******************************************************************************/

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/helixdna/helix"
	"github.com/helixdna/helix/analyzer"
	"github.com/helixdna/helix/random"
	"github.com/helixdna/helix/textcodec"
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func paramsFromFlags(c *cli.Context) helix.Params {
	return helix.Params{
		Ell:       c.Int("ell"),
		Epsilon:   c.Float64("epsilon"),
		VTEnabled: !c.Bool("no-ec"),
	}
}

func encodeCommand(c *cli.Context) error {
	bits, err := readInput(c)
	if err != nil {
		return err
	}
	bits = strings.TrimSpace(bits)

	params := paramsFromFlags(c)
	dna, warning, err := helix.EncodeDetailed(bits, params)
	if err != nil {
		return err
	}
	if c.Bool("v") && warning != nil {
		fmt.Fprintln(c.App.ErrWriter, warning)
	}
	return writeOutput(c, dna)
}

func decodeCommand(c *cli.Context) error {
	dna, err := readInput(c)
	if err != nil {
		return err
	}
	dna = strings.TrimSpace(dna)

	params := paramsFromFlags(c)
	bits, detected, err := helix.DecodeDetailed(dna, params)
	if err != nil {
		return err
	}
	if c.Bool("v") && detected != nil {
		fmt.Fprintln(c.App.ErrWriter, detected)
	}
	return writeOutput(c, bits)
}

func textEncodeCommand(c *cli.Context) error {
	text, err := readInput(c)
	if err != nil {
		return err
	}
	bits, err := textcodec.TextToBits(text)
	if err != nil {
		return err
	}
	dna, err := helix.Encode(bits, paramsFromFlags(c))
	if err != nil {
		return err
	}
	return writeOutput(c, dna)
}

func textDecodeCommand(c *cli.Context) error {
	dna, err := readInput(c)
	if err != nil {
		return err
	}
	dna = strings.TrimSpace(dna)

	bits, err := helix.Decode(dna, paramsFromFlags(c))
	if err != nil {
		return err
	}
	text, err := textcodec.BitsToText(bits)
	if err != nil {
		return err
	}
	return writeOutput(c, text)
}

func analyzeCommand(c *cli.Context) error {
	dna, err := readInput(c)
	if err != nil {
		return err
	}
	dna = strings.TrimSpace(dna)

	params := paramsFromFlags(c)
	a := analyzer.New(params.Ell, params.Epsilon)
	report := a.AnalyzeDNA(dna)
	return writeOutput(c, analyzer.PrintAnalysis(report))
}

// demoCommand runs a fixed battery of sample payloads through
// encode -> analyze -> decode -> verify and reports the outcome of each.
func demoCommand(c *cli.Context) error {
	params := paramsFromFlags(c)
	a := analyzer.New(params.Ell, params.Epsilon)

	payloads := []string{
		"11010011",
		"00000000",
		random.BitString(64, 42),
		random.BitString(128, 7),
	}

	var out strings.Builder
	failures := 0
	for _, bits := range payloads {
		dna, err := helix.Encode(bits, params)
		if err != nil {
			fmt.Fprintf(&out, "encode(%q) failed: %v\n", bits, err)
			failures++
			continue
		}
		report := a.AnalyzeDNA(dna)
		decoded, err := helix.Decode(dna, params)
		ok := err == nil && decoded == bits
		if !ok {
			failures++
		}
		fmt.Fprintf(&out, "bits=%d dna=%d gc=%.2f%% max_run=%d round_trip=%v\n",
			len(bits), report.Length, report.GCContent*100, report.MaxRunlength, ok)
	}

	if err := writeOutput(c, out.String()); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("demo: %d of %d payloads failed", failures, len(payloads))
	}
	return nil
}

func versionCommand(c *cli.Context) error {
	return writeOutput(c, version)
}

// readInput honors -f (file path) over -i (literal string) over stdin, in
// that order, mirroring the CLI's documented flag precedence.
func readInput(c *cli.Context) (string, error) {
	if path := c.String("f"); path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if s := c.String("i"); s != "" {
		return s, nil
	}
	if isPipe(c) {
		return string(stdinToBytes(c.App.Reader)), nil
	}
	return "", errors.New("helix: no input given; use -i, -f, or a pipe")
}

func writeOutput(c *cli.Context, s string) error {
	if path := c.String("o"); path != "" {
		return ioutil.WriteFile(path, []byte(s+"\n"), 0644)
	}
	fmt.Fprintln(c.App.Writer, s)
	return nil
}

// isPipe reports whether input is arriving from stdin rather than a
// terminal, so commands called as `cat payload | helix encode` work without
// an explicit -i/-f flag.
func isPipe(c *cli.Context) bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeNamedPipe != 0 {
		return true
	}
	return c.App.Reader != os.Stdin
}

func stdinToBytes(file io.Reader) []byte {
	var buf bytes.Buffer
	reader := bufio.NewReader(file)
	for {
		r, _, err := reader.ReadRune()
		if err != nil {
			break
		}
		buf.WriteRune(r)
	}
	return buf.Bytes()
}
