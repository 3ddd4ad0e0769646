package page

import (
	"fmt"

	"github.com/bornholm/growi-editor/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func getCommand() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Print a page as JSON",
		Flags: common.WithCommonFlags(pageIDFlag()),
		Action: func(cCtx *cli.Context) error {
			growi, _, err := common.GetClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := growi.GetPage(cCtx.Context, cCtx.String(flagPageID))
			if err != nil {
				return errors.WithStack(err)
			}

			return writeJSON(cCtx.App.Writer, res.Raw())
		},
	}
}

func fetchCommand() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Print the current content of a page",
		Flags: common.WithCommonFlags(pageIDFlag()),
		Action: func(cCtx *cli.Context) error {
			ed, err := common.GetEditor(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			content, err := ed.FetchCurrentContent(cCtx.Context, cCtx.String(flagPageID), withProgress(cCtx))
			if err != nil {
				return errors.WithStack(err)
			}

			if _, err := fmt.Fprint(cCtx.App.Writer, content.Body); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
