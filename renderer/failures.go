package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fifo"
)

// FailuresMarkdown renders the transactions that could not be processed.
// Returns the empty string when there are none, so it can be appended to
// any report unconditionally.
func FailuresMarkdown(failures []fifo.Failure) string {
	if len(failures) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprint(&b, "\n## Failed Transactions\n\n")
	fmt.Fprintln(&b, "| Row | Transaction | Error |")
	fmt.Fprintln(&b, "|---:|:---|:---|")
	for _, f := range failures {
		fmt.Fprintf(&b, "| %d | %s | %s |\n",
			f.Transaction.Row,
			f.Transaction,
			f.Err,
		)
	}
	return b.String()
}
