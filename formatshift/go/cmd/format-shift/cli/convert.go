package cli

import (
	"io"
	"path/filepath"

	"github.com/formatshift/formatshift/formatshift/go/convert"
	"github.com/formatshift/formatshift/go/fileutil"
	"github.com/formatshift/formatshift/go/sklog"
	"github.com/formatshift/formatshift/go/urfavecli"
	"github.com/urfave/cli/v2"
)

// flag names
const (
	inputFlagName  = "input"
	outputFlagName = "output"
	typeFlagName   = "type"
)

// ConvertFlags are the flags of the convert subcommand.
type ConvertFlags struct {
	Input  string
	Output string
	Type   string
}

// AsCliFlags returns the flags bound to the fields of flags.
func (flags *ConvertFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        inputFlagName,
			Aliases:     []string{"i"},
			Usage:       "Path to the input file",
			Required:    true,
			Destination: &flags.Input,
		},
		&cli.StringFlag{
			Name:        outputFlagName,
			Aliases:     []string{"o"},
			Usage:       "Path to the output file (optional)",
			Destination: &flags.Output,
		},
		&cli.StringFlag{
			Name:        typeFlagName,
			Aliases:     []string{"t"},
			Usage:       `Conversion type: "json2csv" or "csv2json"`,
			Required:    true,
			Destination: &flags.Type,
		},
	}
}

// convertCmd holds the flag values and output streams of one run of the
// convert subcommand.
type convertCmd struct {
	flags   ConvertFlags
	console console
}

// ConvertCommand returns a [*cli.Command] that converts a file between JSON
// and CSV. Status lines and results are printed to stdout.
func ConvertCommand(stdout, stderr io.Writer) *cli.Command {
	cmd := &convertCmd{console: console{out: stdout, err: stderr}}
	return &cli.Command{
		Name:        "convert",
		Usage:       "Convert a file between JSON and CSV formats",
		Description: "convert reads --input and writes it in the other format to --output, or next to the input file when --output is not given.",
		Flags:       cmd.flags.AsCliFlags(),
		Action:      cmd.action,
	}
}

func (cmd *convertCmd) action(c *cli.Context) error {
	if c.Bool(verboseFlagName) {
		urfavecli.LogFlags(c)
	}

	t, err := convert.ParseType(cmd.flags.Type)
	if err != nil {
		return err
	}
	if err := convert.CheckInput(cmd.flags.Input); err != nil {
		return err
	}

	outputPath := cmd.flags.Output
	if outputPath == "" {
		outputPath = convert.DefaultOutputPath(cmd.flags.Input, t.Extension())
		cmd.console.info("No output file specified. Using: %s", outputPath)
	}
	if _, err := fileutil.EnsureDirExists(filepath.Dir(outputPath)); err != nil {
		return &convert.Error{
			Kind: convert.IoError,
			Path: outputPath,
			Msg:  "failed to create output directory for " + outputPath,
			Err:  err,
		}
	}

	cmd.console.progress("Converting %s to %s...", cmd.flags.Input, t.Format())
	sklog.Debugf("Converting %s to %s as %s", cmd.flags.Input, outputPath, t)
	result, err := convert.Convert(c.Context, t, cmd.flags.Input, outputPath)
	if err != nil {
		return err
	}

	if cmd.flags.Output == "" {
		cmd.console.heading("Converted content")
		cmd.console.text(result)
	}
	cmd.console.success("Conversion completed successfully")
	return nil
}
