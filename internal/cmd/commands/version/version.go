package version

import (
	"github.com/hashicorp-forge/teamwork-proxy/internal/cmd/base"
	"github.com/hashicorp-forge/teamwork-proxy/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version of teamwork-proxy"
}

func (c *Command) Help() string {
	return "Usage: teamwork-proxy version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
