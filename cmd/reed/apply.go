package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ramsey-B/reed/config"
	"github.com/Ramsey-B/reed/pkg/definitions"
	"github.com/Ramsey-B/reed/pkg/utils"
)

type applyOptions struct {
	definition string
	input      string
	context    string
	field      string
	indent     bool
}

func newApplyCmd() *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run a chain definition against a JSON document",
		Long: `Reads a JSON document, runs it through the compiled chain and writes the
result as JSON. Refs resolve against the input unless --context names
another document. With --field only the value at that path is transformed
and the whole document is written back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFiles(cmd)...)
			if err != nil {
				return err
			}
			return runApply(cmd, cfg, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.definition, "definition", "d", "", "Path to the YAML chain definition")
	flags.StringVarP(&opts.input, "input", "i", "-", "Path to the JSON input, - for stdin")
	flags.StringVarP(&opts.context, "context", "c", "", "Path to the JSON document refs resolve against (default the input)")
	flags.StringVarP(&opts.field, "field", "f", "", "Transform only the value at this path")
	flags.BoolVar(&opts.indent, "indent", false, "Indent the JSON output")
	_ = cmd.MarkFlagRequired("definition")

	return cmd
}

func runApply(cmd *cobra.Command, cfg config.Config, opts *applyOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.input == "-" && opts.context == "-" {
		return fmt.Errorf("--input and --context cannot both read stdin")
	}

	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close(ctx)

	definition, err := definitions.ParseFile(opts.definition)
	if err != nil {
		return err
	}
	chain, err := definitions.Compile(definition)
	if err != nil {
		return err
	}
	chain = rt.Instrument(chain)

	input, err := readJSON(cmd.InOrStdin(), opts.input)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}

	raw := input
	if opts.context != "" {
		if raw, err = readJSON(cmd.InOrStdin(), opts.context); err != nil {
			return fmt.Errorf("context: %w", err)
		}
	}

	var document map[string]any
	value := input
	if opts.field != "" {
		var ok bool
		if document, ok = input.(map[string]any); !ok {
			return fmt.Errorf("--field requires an object input")
		}
		value = utils.Ref(opts.field, document)
	}

	out, err := chain.Compile()(ctx, value, raw)
	if err != nil {
		return err
	}
	if document != nil {
		out = utils.AssignMapValue(document, opts.field, out)
	}

	if err := rt.Report(); err != nil {
		return err
	}
	if err := rt.Close(ctx); err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), out, opts.indent)
}

func readJSON(stdin io.Reader, path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func writeJSON(w io.Writer, value any, indent bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(finite(value))
}

// finite replaces NaN and infinities, which JSON cannot carry, with null.
func finite(value any) any {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	case []any:
		for i, item := range v {
			v[i] = finite(item)
		}
	case map[string]any:
		for key, item := range v {
			v[key] = finite(item)
		}
	}
	return value
}
