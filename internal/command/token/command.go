package token

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bornholm/growi-editor/internal/command/common"
	"github.com/bornholm/growi-editor/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Manage the access token stored in the OS keyring",
		Subcommands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Store the access token for the configured url (read from stdin unless --access-token is given)",
				Flags: common.WithCommonFlags(),
				Action: func(cCtx *cli.Context) error {
					baseURL, err := getBaseURL(cCtx)
					if err != nil {
						return errors.WithStack(err)
					}

					token := cCtx.String(common.ParamAccessToken)
					if token == "" {
						token, err = readToken(cCtx)
						if err != nil {
							return errors.WithStack(err)
						}
					}

					if token == "" {
						return errors.New("access token is empty")
					}

					if err := config.SaveToken(baseURL, token); err != nil {
						return errors.Wrap(err, "could not save access token")
					}

					fmt.Fprintf(cCtx.App.Writer, "access token saved for '%s'\n", baseURL)

					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "Remove the access token stored for the configured url",
				Flags: common.WithCommonFlags(),
				Action: func(cCtx *cli.Context) error {
					baseURL, err := getBaseURL(cCtx)
					if err != nil {
						return errors.WithStack(err)
					}

					if err := config.DeleteToken(baseURL); err != nil {
						return errors.Wrap(err, "could not delete access token")
					}

					fmt.Fprintf(cCtx.App.Writer, "access token deleted for '%s'\n", baseURL)

					return nil
				},
			},
		},
	}
}

func getBaseURL(cCtx *cli.Context) (string, error) {
	conf, err := common.GetConfig(cCtx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if _, err := conf.BaseURL(); err != nil {
		return "", errors.WithStack(err)
	}

	return conf.URL, nil
}

func readToken(cCtx *cli.Context) (string, error) {
	reader := bufio.NewReader(cCtx.App.Reader)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "could not read access token")
	}

	return strings.TrimSpace(line), nil
}
