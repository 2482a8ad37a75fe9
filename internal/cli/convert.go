package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphbridge/pkg/convert"
	errs "github.com/matzehuels/graphbridge/pkg/errors"
	"github.com/matzehuels/graphbridge/pkg/graph"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output   string // output file path; stdout when empty
	from     string // input format; detected from the extension when empty
	to       string // output format; detected from output, then config
	id       string // graph id override
	edgeType string // graph edge type override
	mode     string // graph mode override
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert a graph document to another format",
		Long: `Convert a graph document to another format.

The input format is taken from --from or the file extension. The output
format is taken from --to, then the --output extension, then the
configured default.

Examples:
  graphbridge convert network.gexf -o network.graphml
  graphbridge convert data.json --to gexf > data.gexf
  cat g.graphml | graphbridge convert - --from graphml --to graphology`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.from, "from", "f", "", "input format: json, graphology, gexf, graphml")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "output format: json, graphology, gexf, graphml")
	cmd.Flags().StringVar(&opts.id, "id", "", "override the graph id")
	cmd.Flags().StringVar(&opts.edgeType, "edge-type", "", "override the edge type: directed, undirected, mutual")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "override the graph mode: static, dynamic")

	return cmd
}

func (c *CLI) runConvert(cmd *cobra.Command, input string, opts convertOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	to, err := c.outputFormat(opts)
	if err != nil {
		return err
	}
	runner := c.newRunner()
	g, from, err := readGraph(cmd, runner, input, opts.from)
	if err != nil {
		return err
	}

	if from == to && opts.id == "" && opts.edgeType == "" && opts.mode == "" {
		printWarning(cmd.ErrOrStderr(), "input and output are both %s; output is normalized only", to)
	}
	if err := applyOverrides(g.Model(), opts); err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := runner.Write(ctx, cmd.OutOrStdout(), g, to); err != nil {
			return fmt.Errorf("export %s: %w", to, err)
		}
		return nil
	}
	n, err := runner.WriteFile(ctx, g, opts.output, to)
	if err != nil {
		return fmt.Errorf("export %s: %w", to, err)
	}
	prog.done(fmt.Sprintf("Converted %s to %s", from, to))
	w := cmd.ErrOrStderr()
	printSuccess(w, "Wrote %s", to)
	printFile(w, opts.output)
	printStats(w, g.NodeCount(), g.EdgeCount(), fmt.Sprintf("%d bytes", n))
	return nil
}

// outputFormat resolves --to, then the output extension, then the config.
func (c *CLI) outputFormat(opts convertOpts) (convert.Format, error) {
	if opts.to != "" {
		return convert.ParseFormat(opts.to)
	}
	if opts.output != "" {
		if f, err := convert.DetectFormat(opts.output); err == nil {
			return f, nil
		}
	}
	def := c.Config.Convert.DefaultTo
	if def == "" {
		def = string(convert.JSON)
	}
	return convert.ParseFormat(def)
}

func applyOverrides(g *graph.Graph, opts convertOpts) error {
	if opts.id != "" {
		g.SetID(opts.id)
	}
	if opts.edgeType != "" {
		t, ok := graph.ParseEdgeType(opts.edgeType)
		if !ok {
			return errs.New(errs.ErrCodeInvalidInput, "invalid edge type %q (want directed, undirected or mutual)", opts.edgeType)
		}
		g.SetEdgeType(t)
	}
	if opts.mode != "" {
		m, ok := graph.ParseMode(opts.mode)
		if !ok {
			return errs.New(errs.ErrCodeInvalidInput, "invalid mode %q (want static or dynamic)", opts.mode)
		}
		g.SetMode(m)
	}
	return nil
}
