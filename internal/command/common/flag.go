package common

import (
	"io/fs"

	"github.com/bornholm/growi-editor/internal/config"
	"github.com/bornholm/growi-editor/internal/editor"
	"github.com/bornholm/growi-editor/internal/setup"
	"github.com/bornholm/growi-editor/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	ParamConfig      = "config"
	ParamURL         = "url"
	ParamAccessToken = "access-token"
)

var (
	flagConfig = &cli.StringFlag{
		Name:    ParamConfig,
		Aliases: []string{"c"},
		Value:   config.DefaultFilename,
		EnvVars: []string{"GROWI_CLI_CONFIG"},
		Usage:   "Path to the JSON configuration file",
	}
	flagURL = &cli.StringFlag{
		Name:    ParamURL,
		Aliases: []string{"u"},
		Usage:   "Growi base url, overrides the configuration file",
	}
	flagAccessToken = &cli.StringFlag{
		Name:    ParamAccessToken,
		Aliases: []string{"t"},
		Usage:   "Growi API access token, overrides the configuration file",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagConfig,
		flagURL,
		flagAccessToken,
	}, flags...)
}

// GetConfig loads the configuration file and applies flag overrides. The
// default configuration file may be absent when the url and the token are
// given through flags, environment or keyring.
func GetConfig(ctx *cli.Context) (*config.Config, error) {
	conf, err := config.Load(ctx.String(ParamConfig))
	if err != nil {
		if ctx.IsSet(ParamConfig) || !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithStack(err)
		}

		conf, err = config.FromEnv()
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if ctx.IsSet(ParamURL) {
		if conf.URL != ctx.String(ParamURL) && !ctx.IsSet(ParamAccessToken) {
			// The stored token belongs to another instance
			conf.AccessToken = ""
		}

		conf.URL = ctx.String(ParamURL)
	}

	if ctx.IsSet(ParamAccessToken) {
		conf.AccessToken = ctx.String(ParamAccessToken)
	}

	conf.ResolveAccessToken()

	return conf, nil
}

func GetClient(ctx *cli.Context) (*client.Client, *config.Config, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if err := checkConfig(conf); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	growi, err := setup.NewClientFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not create growi client")
	}

	return growi, conf, nil
}

func GetEditor(ctx *cli.Context) (*editor.Editor, error) {
	growi, conf, err := GetClient(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return editor.New(growi, conf), nil
}

func checkConfig(conf *config.Config) error {
	missing := make([]string, 0)

	if conf.URL == "" {
		missing = append(missing, editor.FieldURL)
	}

	if conf.AccessToken == "" {
		missing = append(missing, editor.FieldAccessToken)
	}

	if len(missing) > 0 {
		return editor.NewValidationError(missing...)
	}

	return nil
}
