package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/ethns-dev/ens-go/cli/fuse"
	"github.com/ethns-dev/ens-go/cli/name"
	"github.com/ethns-dev/ens-go/cli/record"
	"github.com/ethns-dev/ens-go/cli/resolve"
	"github.com/ethns-dev/ens-go/cli/subname"
	"github.com/ethns-dev/ens-go/pkg/config"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "ens-go\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates an ens-go instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "ens-go"
	ctl.Version = config.Version
	ctl.Usage = "ENS registration and management client"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, name.NewCommands()...)
	ctl.Commands = append(ctl.Commands, record.NewCommands()...)
	ctl.Commands = append(ctl.Commands, subname.NewCommands()...)
	ctl.Commands = append(ctl.Commands, fuse.NewCommands()...)
	ctl.Commands = append(ctl.Commands, resolve.NewCommands()...)
	return ctl
}
