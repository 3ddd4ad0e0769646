package page

import (
	"context"
	"fmt"

	"github.com/bornholm/growi-editor/internal/command/common"
	"github.com/bornholm/growi-editor/internal/editor"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new page",
		Flags: common.WithCommonFlags(append(
			[]cli.Flag{
				&cli.StringFlag{
					Name:     flagPath,
					Aliases:  []string{"p"},
					Usage:    "Path of the new page",
					Required: true,
				},
			},
			bodyFlags()...,
		)...),
		Action: func(cCtx *cli.Context) error {
			growi, _, err := common.GetClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			body, err := readBody(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := growi.CreatePage(cCtx.Context, cCtx.String(flagPath), body)
			if err != nil {
				return errors.WithStack(err)
			}

			if res.Page == nil {
				return writeJSON(cCtx.App.Writer, res.Raw())
			}

			fmt.Fprintf(cCtx.App.Writer, "page '%s' created (id %s)\n", res.Page.Path, res.Page.ID)

			return nil
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Replace the content of a page, using its current revision",
		Flags: common.WithCommonFlags(append([]cli.Flag{pageIDFlag()}, bodyFlags()...)...),
		Action: func(cCtx *cli.Context) error {
			ed, err := common.GetEditor(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			body, err := readBody(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := ed.SubmitUpdate(cCtx.Context, cCtx.String(flagPageID), body, withProgress(cCtx))
			if err != nil {
				if editor.IsConflict(err) {
					return errors.Wrap(err, "page was modified since its revision was fetched")
				}

				return errors.WithStack(err)
			}

			if res.Revision != nil {
				fmt.Fprintf(cCtx.App.Writer, "page updated (revision %s)\n", res.Revision.ID)
			} else {
				fmt.Fprintln(cCtx.App.Writer, "page updated")
			}

			return nil
		},
	}
}

func withProgress(cCtx *cli.Context) editor.OptionFunc {
	return editor.WithProgress(func(ctx context.Context, message string) {
		fmt.Fprintln(cCtx.App.ErrWriter, message)
	})
}
