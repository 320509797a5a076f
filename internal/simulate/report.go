package simulate

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Format selects how results are rendered.
type Format string

// Supported report formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// WriteReport renders results in the given format.
func WriteReport(w io.Writer, format Format, capacity int, results []*Result) error {
	switch format {
	case FormatText:
		return writeText(w, capacity, results)
	case FormatMarkdown:
		return writeMarkdown(w, capacity, results)
	default:
		return fmt.Errorf("simulate: unknown report format %q", format)
	}
}

func writeText(w io.Writer, capacity int, results []*Result) error {
	fmt.Fprintf(w, "Capacity: %d\n\n", capacity)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POLICY\tACCESSES\tHITS\tMISSES\tEVICTIONS\tHIT RATE\tWINDOW MEAN\tWINDOW STDDEV")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.1f%%\t%.3f\t%.3f\n",
			r.Policy, r.Accesses, r.Hits, r.Misses, r.Evictions, r.HitRate, r.WindowMean, r.WindowStdDev)
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, capacity int, results []*Result) error {
	fmt.Fprintln(w, "## Policy comparison")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- **Capacity:** %d\n", capacity)
	if len(results) > 0 {
		fmt.Fprintf(w, "- **Accesses:** %d\n", results[0].Accesses)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Policy | Hits | Misses | Evictions | Hit Rate | Window Mean | Window Std Dev |")
	fmt.Fprintln(w, "|--------|------|--------|-----------|----------|-------------|----------------|")
	for _, r := range results {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %.1f%% | %.3f | %.3f |\n",
			r.Policy, r.Hits, r.Misses, r.Evictions, r.HitRate, r.WindowMean, r.WindowStdDev)
	}
	_, err := fmt.Fprintln(w)
	return err
}
