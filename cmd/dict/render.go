package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/pior/dict"
	"golang.org/x/term"
)

const defaultWidth = 72

// terminalWidth returns the width of f when it is a terminal.
func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// writeDatabases prints one database per line, sorted by name.
func writeDatabases(w io.Writer, databases map[string]dict.Database) error {
	names := make([]string, 0, len(databases))
	for name := range databases {
		names = append(names, name)
	}
	slices.Sort(names)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%s\n", name, databases[name].Description)
	}
	return tw.Flush()
}

// writeStrategies prints the strategies in server order.
func writeStrategies(w io.Writer, strategies []dict.MatchingStrategy) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, strategy := range strategies {
		fmt.Fprintf(tw, "%s\t%s\n", strategy.Name, strategy.Description)
	}
	return tw.Flush()
}

func writeWords(w io.Writer, words []string) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "No matches found")
		return err
	}
	return writeLines(w, words)
}

// writeDefinitions prints each definition under a header naming its
// database, separated by a rule as wide as the terminal.
func writeDefinitions(w io.Writer, word string, definitions []*dict.Definition, width int) error {
	if len(definitions) == 0 {
		_, err := fmt.Fprintf(w, "No definitions found for %q\n", word)
		return err
	}

	rule := strings.Repeat("-", min(width, 80))
	for i, d := range definitions {
		if i > 0 {
			fmt.Fprintln(w)
		}
		source := d.Database
		if d.DatabaseDescription != "" {
			source = d.DatabaseDescription + " [" + d.Database + "]"
		}
		fmt.Fprintf(w, "From %s:\n%s\n", source, rule)
		if _, err := fmt.Fprintln(w, d.Text()); err != nil {
			return err
		}
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeStats(w io.Writer, stats dict.ClientStats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "databases\t%d\n", stats.Databases)
	fmt.Fprintf(tw, "strategies\t%d\n", stats.Strategies)
	fmt.Fprintf(tw, "matches\t%d\n", stats.Matches)
	fmt.Fprintf(tw, "defines\t%d (%d hits, %d definitions)\n", stats.Defines, stats.DefineHits, stats.Definitions)
	fmt.Fprintf(tw, "errors\t%d (%d rejected)\n", stats.Errors, stats.Rejected)
	fmt.Fprintf(tw, "circuit breaker\t%s\n", stats.CircuitBreakerState)
	return tw.Flush()
}
