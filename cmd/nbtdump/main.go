// Command nbtdump inspects NBT files from the command line. It is a
// development aid, not part of the library's public API surface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/qexk/libnbt/nbt"
)

func main() {
	app := &cli.App{
		Name:  "nbtdump",
		Usage: "inspect NBT files",
		Commands: []*cli.Command{
			dumpCommand(),
			getCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("nbtdump: %v", err)
	}
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "print the whole tree of an NBT file (auto-detects gzip/zlib/raw framing)",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one <path> argument", 1)
			}
			root, err := nbt.ParseFile(c.Args().Get(0))
			if err != nil {
				return cli.Exit(err, 1)
			}
			nbt.Dump(os.Stdout, root)
			return nil
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print a single value found by a /-separated compound path",
		ArgsUsage: "<path> <compound-path>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("expected <path> <compound-path>", 1)
			}
			root, err := nbt.ParseFile(c.Args().Get(0))
			if err != nil {
				return cli.Exit(err, 1)
			}
			found, err := nbt.Lookup(root, c.Args().Get(1))
			if err != nil {
				return cli.Exit(err, 1)
			}
			fmt.Println(found.String())
			return nil
		},
	}
}
