package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphbridge/pkg/convert"
	errs "github.com/matzehuels/graphbridge/pkg/errors"
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

// readGraph imports the document named by arg. An explicit format name wins
// over the file extension; standard input requires one.
func readGraph(cmd *cobra.Command, runner *convert.Runner, arg, format string) (*convert.Graph, convert.Format, error) {
	from, err := inputFormat(arg, format)
	if err != nil {
		return nil, "", err
	}

	var g *convert.Graph
	if arg == stdinArg {
		g, err = runner.Read(cmd.Context(), cmd.InOrStdin(), from)
	} else {
		g, err = runner.ReadFile(cmd.Context(), arg, from)
	}
	if err != nil {
		return nil, "", fmt.Errorf("import %s: %w", from, err)
	}
	return g, from, nil
}

func inputFormat(arg, format string) (convert.Format, error) {
	if format != "" {
		return convert.ParseFormat(format)
	}
	if arg == stdinArg {
		return "", errs.New(errs.ErrCodeInvalidInput, "--from is required when reading stdin")
	}
	return convert.DetectFormat(arg)
}
