package main

import (
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// table renders rows of pre-formatted cells under a header. On a TTY it
// pads columns with a visible separator; piped to a file or another
// process it falls back to plain tab-separated output, which is easier
// for scripts to parse with cut/awk.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(row ...string) {
	t.rows = append(t.rows, row)
}

func (t *table) fprint(w io.Writer) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		io.WriteString(w, strings.Join(t.header, "\t")+"\n")
		for _, row := range t.rows {
			io.WriteString(w, strings.Join(row, "\t")+"\n")
		}
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.Debug)

	io.WriteString(tw, strings.Join(t.header, "\t")+"\n")
	for _, row := range t.rows {
		io.WriteString(tw, strings.Join(row, "\t")+"\n")
	}
	tw.Flush()
}

// relativeTime renders t relative to now, e.g. "3 seconds ago" or
// "2 minutes from now".
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, time.Now(), "ago", "from now")
}
