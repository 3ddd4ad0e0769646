package page

import (
	"fmt"
	"text/tabwriter"

	"github.com/bornholm/growi-editor/internal/command/common"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the pages under a path",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:    flagPath,
				Aliases: []string{"p"},
				Value:   "/",
				Usage:   "Path prefix of the listed pages",
			},
			&cli.BoolFlag{
				Name:  flagJSON,
				Usage: "Print the raw JSON response",
			},
		),
		Action: func(cCtx *cli.Context) error {
			growi, _, err := common.GetClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := growi.ListPages(cCtx.Context, cCtx.String(flagPath))
			if err != nil {
				return errors.WithStack(err)
			}

			if cCtx.Bool(flagJSON) {
				return writeJSON(cCtx.App.Writer, res.Raw())
			}

			tw := tabwriter.NewWriter(cCtx.App.Writer, 0, 0, 2, ' ', 0)

			fmt.Fprintln(tw, "ID\tREVISION\tUPDATED\tPATH")

			for _, p := range res.Pages {
				revisionID := "-"
				if p.Revision != nil && p.Revision.ID != "" {
					revisionID = p.Revision.ID
				}

				updatedAt := "-"
				if !p.UpdatedAt.IsZero() {
					updatedAt = humanize.Time(p.UpdatedAt)
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, revisionID, updatedAt, p.Path)
			}

			if err := tw.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
