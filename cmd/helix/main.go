package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// main is separated from application() to help with testing.
func main() {
	run(os.Args)
}

// run is separated from main for debugging's sake.
func run(args []string) {
	app := application()
	err := app.Run(args)
	if err != nil {
		log.Fatal(err)
	}
}

// application defines the command line app: global flags and subcommands.
// The subcommands define no flags of their own; all of them read the global
// ones.
func application() *cli.App {
	app := &cli.App{
		Name:  "helix",
		Usage: "encode arbitrary binary payloads as synthesizable, sequenceable DNA",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "i",
				Usage: "input string (bits, text, or DNA depending on subcommand)",
			},
			&cli.StringFlag{
				Name:  "f",
				Usage: "input file path, read instead of -i or stdin",
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "output file path; defaults to stdout",
			},
			&cli.IntFlag{
				Name:  "ell",
				Value: 3,
				Usage: "maximum homopolymer runlength",
			},
			&cli.Float64Flag{
				Name:  "epsilon",
				Value: 0.05,
				Usage: "GC-content tolerance around 0.5",
			},
			&cli.BoolFlag{
				Name:  "no-ec",
				Usage: "disable the VT error-detection footer",
			},
			&cli.BoolFlag{
				Name:    "v",
				Aliases: []string{"verbose"},
				Usage:   "print encode/decode warnings (GC infeasibility, VT error detection) to stderr",
			},
		},

		Commands: []*cli.Command{
			{
				Name:   "encode",
				Usage:  "encode a bit string into DNA",
				Action: encodeCommand,
			},
			{
				Name:   "decode",
				Usage:  "decode DNA back into a bit string",
				Action: decodeCommand,
			},
			{
				Name:   "text-encode",
				Usage:  "encode ASCII text into DNA",
				Action: textEncodeCommand,
			},
			{
				Name:   "text-decode",
				Usage:  "decode DNA back into ASCII text",
				Action: textDecodeCommand,
			},
			{
				Name:   "analyze",
				Usage:  "report constraint satisfaction and composition of a DNA string",
				Action: analyzeCommand,
			},
			{
				Name:   "demo",
				Usage:  "run a battery of sample payloads through encode/analyze/decode",
				Action: demoCommand,
			},
			{
				Name:   "version",
				Usage:  "print the helix version",
				Action: versionCommand,
			},
		},
	}

	return app
}
