package printer

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/buddykit/buddy/alloc"
)

const (
	listBanner  = "==================== bm_list ===================="
	statsBanner = "===================== stats ====================="
	ruler       = "================================================="
)

// printText prints the registry table and the totals. Each row reads
// index:address:used order capacity:lead bytes.
func (p *Printer) printText(r alloc.Report) error {
	w := bufio.NewWriter(p.writer)

	fmt.Fprintln(w, listBanner)
	for _, b := range r.Blocks {
		used := 0
		if b.Used {
			used = 1
		}
		fmt.Fprintf(w, "%3d:%v:%1d %8d %8d:", b.Index, b.Addr, used, b.Order, b.Capacity)

		lead := p.lead(b)
		for _, c := range lead {
			fmt.Fprintf(w, "%02x ", c)
		}
		if p.opts.ShowASCII {
			fmt.Fprintf(w, "|%s|", printable(lead))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, ruler)

	if p.opts.ShowStats {
		t := r.Totals
		fmt.Fprintln(w, statsBanner)
		fmt.Fprintf(w, "policy:                         %s\n", r.Policy)
		fmt.Fprintf(w, "arenas:                         %d\n", t.Arenas)
		fmt.Fprintf(w, "total given memory:             %d\n", t.ArenaBytes)
		fmt.Fprintf(w, "total given memory to user:     %d\n", t.UserBytes)
		fmt.Fprintf(w, "total requested memory:         %d\n", t.RequestedBytes)
		fmt.Fprintf(w, "total available memory:         %d\n", t.FreeBytes)
		fmt.Fprintf(w, "total internal fragmentation:   %d\n", t.InternalFragmentation)
		fmt.Fprintln(w, ruler)
	}

	return w.Flush()
}

// printable decodes b as Windows-1252 and masks anything non-printable with '.'.
func printable(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		r := charmap.Windows1252.DecodeByte(c)
		if c < 0x20 || !unicode.IsPrint(r) {
			r = '.'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
