package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/me/glamgiant/internal/table"
)

// listOptions are the search, sort and page flags shared by list commands.
type listOptions struct {
	search string
	sort   string
	desc   bool
	page   int
}

func (o *listOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.search, "search", "s", "", "Case-insensitive search term")
	cmd.Flags().StringVar(&o.sort, "sort", "", "Column to sort by")
	cmd.Flags().BoolVar(&o.desc, "desc", false, "Sort descending")
	cmd.Flags().IntVarP(&o.page, "page", "p", 1, "Page number")
}

func (o listOptions) query() table.Query {
	dir := table.Ascending
	if o.desc {
		dir = table.Descending
	}
	return table.Query{Search: o.search, SortKey: o.sort, Direction: dir, Page: o.page}
}

// renderResult prints one page of res as a table followed by a page summary.
func renderResult[T any](cmd *cobra.Command, res table.Result[T], header []string, row func(T) []string) error {
	out := cmd.OutOrStdout()
	if res.Total == 0 {
		fmt.Fprintln(out, pterm.Info.Sprint("No records found."))
		return nil
	}
	data := pterm.TableData{header}
	for _, item := range res.Items {
		data = append(data, row(item))
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(out, s)
	fmt.Fprintf(out, "Page %d of %d (%s %s)\n", res.Page, res.TotalPages,
		humanize.Comma(int64(res.Total)), english.PluralWord(res.Total, "record", ""))
	return nil
}

func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf(format, args...))
}

func money(f float64) string {
	return "$" + humanize.FormatFloat("#,###.##", f)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// checkSort rejects a --sort key the engine does not know.
func checkSort[T any](e *table.Engine[T], key string) error {
	if key == "" || e.Sortable(key) {
		return nil
	}
	return fmt.Errorf("unknown sort column %q (one of: %s)", key, strings.Join(e.Keys(), ", "))
}
