package main

import (
	"flight-parser/domain"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type keychainCache interface {
	Entries() (map[domain.Fingerprint]domain.CacheEntry, error)
	Purge() error
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached keychain entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(cache keychainCache) error {
			entries, err := cache.Entries()
			if err != nil {
				return err
			}
			renderEntries(os.Stdout, entries, !noColour)
			return nil
		})
	},
}

func renderEntries(w io.Writer, entries map[domain.Fingerprint]domain.CacheEntry, colours bool) {
	fingerprints := make([]domain.Fingerprint, 0, len(entries))
	for fp := range entries {
		fingerprints = append(fingerprints, fp)
	}
	sort.Slice(fingerprints, func(i, j int) bool { return fingerprints[i] < fingerprints[j] })

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Fingerprint", "Type", "Size"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, fp := range fingerprints {
		entry := entries[fp]
		kind := string(entry.Type)
		if colours {
			kind = encodingColour(entry.Type).Render(kind)
		}
		table.Append([]string{string(fp), kind, fmt.Sprintf("%d B", len(entry.Value))})
	}
	table.Render()

	summary := fmt.Sprintf("%d cached keychain entries", len(entries))
	if colours {
		summary = color.New(color.FgGreen, color.OpBold).Render(summary)
	}
	fmt.Fprintln(w, summary)
}

func encodingColour(encoding domain.EntryEncoding) color.Style {
	if encoding == domain.EncodingCBOR {
		return color.New(color.FgYellow)
	}
	return color.New(color.FgCyan)
}
