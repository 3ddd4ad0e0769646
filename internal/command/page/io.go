package page

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// readBody returns the page content from --body, --file or stdin, in that
// order of precedence.
func readBody(cCtx *cli.Context) (string, error) {
	if cCtx.IsSet(flagBody) {
		return cCtx.String(flagBody), nil
	}

	path := cCtx.String(flagFile)

	var (
		data []byte
		err  error
	)

	switch path {
	case "", "-":
		data, err = io.ReadAll(cCtx.App.Reader)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(err, "could not read page content")
	}

	return string(data), nil
}

func writeJSON(w io.Writer, raw []byte) error {
	var buff bytes.Buffer

	if err := json.Indent(&buff, raw, "", "  "); err != nil {
		return errors.WithStack(err)
	}

	buff.WriteString("\n")

	if _, err := buff.WriteTo(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
