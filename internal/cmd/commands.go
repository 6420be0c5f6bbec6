package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/teamwork-proxy/internal/cmd/base"
	"github.com/hashicorp-forge/teamwork-proxy/internal/cmd/commands/generate"
	"github.com/hashicorp-forge/teamwork-proxy/internal/cmd/commands/server"
	"github.com/hashicorp-forge/teamwork-proxy/internal/cmd/commands/version"
)

// Commands is the mapping of all available teamwork-proxy commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return &generate.Command{
				Command: b,
				Fs:      afero.NewOsFs(),
			}, nil
		},
		"server": func() (cli.Command, error) {
			return &server.Command{
				Command: b,
			}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{
				Command: b,
			}, nil
		},
	}
}
