package page

import (
	"github.com/urfave/cli/v2"
)

const (
	flagPageID = "id"
	flagPath   = "path"
	flagBody   = "body"
	flagFile   = "file"
	flagJSON   = "json"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "pages",
		Usage: "List, read, create and update wiki pages",
		Subcommands: []*cli.Command{
			listCommand(),
			getCommand(),
			fetchCommand(),
			createCommand(),
			updateCommand(),
		},
	}
}

func pageIDFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     flagPageID,
		Aliases:  []string{"i"},
		Usage:    "Identifier of the page",
		Required: true,
	}
}

func bodyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagBody,
			Aliases: []string{"b"},
			Usage:   "Page content",
		},
		&cli.StringFlag{
			Name:    flagFile,
			Aliases: []string{"f"},
			Usage:   "Path to a file holding the page content (use '-' for stdin)",
		},
	}
}
