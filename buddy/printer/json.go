package printer

import (
	"encoding/hex"
	"encoding/json"

	"github.com/joshuapare/buddykit/buddy/alloc"
)

// jsonBlock represents a registry entry in JSON format.
type jsonBlock struct {
	Index    int    `json:"index"`
	Addr     string `json:"addr"`
	Used     bool   `json:"used"`
	Order    int    `json:"order"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
	Length   int    `json:"length"`
	Lead     string `json:"lead,omitempty"`
}

// jsonReport represents a report in JSON format.
type jsonReport struct {
	Policy   string        `json:"policy"`
	MinOrder int           `json:"min_order"`
	MaxOrder int           `json:"max_order"`
	Blocks   []jsonBlock   `json:"blocks"`
	Totals   *alloc.Totals `json:"totals,omitempty"`
}

// printJSON prints the report as one indented JSON document.
func (p *Printer) printJSON(r alloc.Report) error {
	out := jsonReport{
		Policy:   r.Policy,
		MinOrder: r.MinOrder,
		MaxOrder: r.MaxOrder,
		Blocks:   make([]jsonBlock, 0, len(r.Blocks)),
	}
	for _, b := range r.Blocks {
		out.Blocks = append(out.Blocks, jsonBlock{
			Index:    b.Index,
			Addr:     b.Addr.String(),
			Used:     b.Used,
			Order:    b.Order,
			Size:     b.Size,
			Capacity: b.Capacity,
			Length:   b.Length,
			Lead:     hex.EncodeToString(p.lead(b)),
		})
	}
	if p.opts.ShowStats {
		t := r.Totals
		out.Totals = &t
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
