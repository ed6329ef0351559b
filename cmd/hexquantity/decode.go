package main

import (
	"fmt"
	"io"

	"hexquantity/pkg/hexquantity"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

const (
	formatList = "list"
	formatJSON = "json"
)

func newDecodeCmd(configFile *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "decode <hex> [hex...]",
		Short: "Decode one or more hex quantities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatList && format != formatJSON {
				return fmt.Errorf("unsupported format %q, must be one of: %s, %s", format, formatList, formatJSON)
			}

			_, _, service, err := buildService(*configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			results := make([]hexquantity.Result, 0, len(args))
			for _, arg := range args {
				res, err := service.Decode(cmd.Context(), arg)
				if err != nil {
					return fmt.Errorf("decode %q: %w", arg, err)
				}
				results = append(results, res)
			}
			return printResults(cmd.OutOrStdout(), format, results)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatList, "Output format: list or json")
	return cmd
}

func printResults(w io.Writer, format string, results []hexquantity.Result) error {
	if format == formatJSON {
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%s: %v\n", res.Input, res.Bytes); err != nil {
			return err
		}
	}
	return nil
}
