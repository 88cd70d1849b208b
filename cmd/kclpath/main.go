package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/kclpath/internal/cli"
)

const (
	cmdName = "kclpath"

	shortDesc = "Lexical path manipulation for KCL and the command line."
	longDesc  = `Lexical path manipulation for KCL and the command line.

kclpath splits paths into a prefix (a scheme such as "vfs://", a drive such
as "C:/", or the root "/") and a hierarchy of segments, and normalizes,
joins and relates them without touching the filesystem. Backslashes are
always treated as forward slashes.

The same operations are available to KCL programs run with "kclpath run"
through the "path" plugin:

  import kcl_plugin.path

  parent = path.dirname("/srv/app/config.yaml")
`
)

func main() {
	cli.RegisterEnabledPlugins()

	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
