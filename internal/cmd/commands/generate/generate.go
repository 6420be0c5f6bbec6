package generate

import (
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/teamwork-proxy/internal/cmd/base"
	"github.com/hashicorp-forge/teamwork-proxy/pkg/schema"
)

type Command struct {
	*base.Command

	// Fs is where samples are read from and the output is written to.
	Fs afero.Fs

	flagSamples string
	flagOut     string
	flagPackage string
}

func (c *Command) Synopsis() string {
	return "Generate record types from sample payloads"
}

func (c *Command) Help() string {
	return `Usage: teamwork-proxy generate [options]

  Reads every *.json sample in the samples directory, synthesizes one record
  type per sample (plus its nested records) and writes the Go source to the
  output file. Samples are processed in file name order so the output is
  deterministic.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("generate", flag.ContinueOnError))

	f.StringVar(
		&c.flagSamples, "samples", "samples",
		"Directory containing the JSON sample payloads",
	)
	f.StringVar(
		&c.flagOut, "out", "records_gen.go",
		"File to write the generated Go source to",
	)
	f.StringVar(
		&c.flagPackage, "package", "teamwork",
		"Package name of the generated file",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() > 0 {
		c.UI.Error(fmt.Sprintf("unexpected arguments: %v", f.Args()))
		return 1
	}

	samples, err := schema.ReadSamples(c.Fs, c.flagSamples)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading samples: %v", err))
		return 1
	}

	records, err := schema.Build(samples)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error synthesizing records: %v", err))
		return 1
	}

	src, err := schema.Render(c.flagPackage, records)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error rendering records: %v", err))
		return 1
	}

	if err := afero.WriteFile(c.Fs, c.flagOut, src, 0o644); err != nil {
		c.UI.Error(fmt.Sprintf("error writing %s: %v", c.flagOut, err))
		return 1
	}

	c.Log.Named("generate").Info("generated records",
		"samples", len(samples),
		"records", len(records),
		"out", c.flagOut,
	)
	return 0
}
