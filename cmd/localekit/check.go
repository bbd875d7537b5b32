package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planora/localekit/i18n"
)

// newCheckCmd verifies that every locale dictionary in a directory
// carries the same key set as the reference locale, reporting missing
// and extra keys. Exits non-zero on drift so CI can gate on it.
func newCheckCmd() *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "check <dictionary-dir>",
		Short: "Check locale dictionaries for parity with the reference locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			refDict, refName, err := findReference(cmd, dir, reference)
			if err != nil {
				return err
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				return err
			}

			drift := false
			for _, entry := range entries {
				if entry.IsDir() || localeOf(entry.Name()) == "" {
					continue
				}
				locale := localeOf(entry.Name())
				if locale == refName {
					continue
				}

				dict, err := readDictionary(cmd.Context(), filepath.Join(dir, entry.Name()))
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", entry.Name(), err)
					drift = true
					continue
				}

				missing := dict.Diff(refDict)
				extra := refDict.Diff(dict)
				if len(missing) == 0 && len(extra) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d keys)\n", locale, len(refDict.Flatten()))
					continue
				}
				drift = true
				sort.Strings(missing)
				sort.Strings(extra)
				for _, key := range missing {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: missing %s\n", locale, key)
				}
				for _, key := range extra {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: extra %s\n", locale, key)
				}
			}

			if drift {
				return fmt.Errorf("dictionaries have drifted from reference locale %q", refName)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&reference, "reference", "r", "en", "reference locale code")
	return cmd
}

func findReference(cmd *cobra.Command, dir, locale string) (i18n.Dictionary, string, error) {
	for _, ext := range []string{"json", "yaml", "yml", "toml"} {
		path := filepath.Join(dir, locale+"."+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		dict, err := readDictionary(cmd.Context(), path)
		if err != nil {
			return nil, "", err
		}
		return dict, locale, nil
	}
	return nil, "", fmt.Errorf("reference dictionary for locale %q not found in %s", locale, dir)
}

// localeOf extracts the locale code from a dictionary filename, or ""
// for files that are not dictionaries.
func localeOf(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	switch strings.ToLower(ext) {
	case "json", "yaml", "yml", "toml":
		return strings.TrimSuffix(filename, filepath.Ext(filename))
	default:
		return ""
	}
}
