package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planora/localekit/i18n"
)

// newKeysCmd generates a Go source file with one constant per
// translation key in the reference locale's dictionary, giving call
// sites compile-time key safety.
func newKeysCmd() *cobra.Command {
	var (
		pkgName string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "keys <reference-dictionary>",
		Short: "Generate typed key constants from the reference dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := readDictionary(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			src := generateKeys(pkgName, args[0], dict.Flatten())
			if output == "" || output == "-" {
				cmd.OutOrStdout().Write(src) //nolint:errcheck
				return nil
			}
			return os.WriteFile(output, src, 0o644)
		},
	}

	cmd.Flags().StringVarP(&pkgName, "package", "p", "i18nkeys", "package name for the generated file")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file ('-' for stdout)")
	return cmd
}

func generateKeys(pkgName, source string, keys []string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by localekit keys from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	buf.WriteString("const (\n")
	for _, key := range keys {
		fmt.Fprintf(&buf, "\tKey%s = %q\n", constName(key), key)
	}
	buf.WriteString(")\n")
	return buf.Bytes()
}

// constName turns "dashboard.open_tasks" into "DashboardOpenTasks".
func constName(key string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(key, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	}) {
		runes := []rune(part)
		if len(runes) == 0 {
			continue
		}
		b.WriteString(strings.ToUpper(string(runes[0])))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

func readDictionary(ctx context.Context, path string) (i18n.Dictionary, error) {
	parser := i18n.ParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported dictionary format: %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parser.Parse(ctx, content)
}
