package alloc

// DefaultLeadBytes is how many leading payload bytes Dump captures per block.
const DefaultLeadBytes = 8

// BlockInfo describes one registry entry.
type BlockInfo struct {
	Index    int    `json:"index"`
	Addr     Ptr    `json:"addr"` // Payload address
	Used     bool   `json:"used"`
	Order    int    `json:"order"`
	Size     int    `json:"size"`     // Block size including header
	Capacity int    `json:"capacity"` // Payload capacity
	Length   int    `json:"length"`   // Requested bytes, 0 when free
	Lead     []byte `json:"lead"`     // Copy of the first payload bytes
}

// Totals aggregates a Report.
type Totals struct {
	Arenas                int `json:"arenas"`
	ArenaBytes            int `json:"arena_bytes"`            // Mapped bytes
	UserBytes             int `json:"user_bytes"`             // Size of used blocks
	RequestedBytes        int `json:"requested_bytes"`        // Sum of requested lengths
	FreeBytes             int `json:"free_bytes"`             // Size of free blocks
	InternalFragmentation int `json:"internal_fragmentation"` // Payload capacity of used blocks - RequestedBytes
}

// Report is a point-in-time snapshot of the registry.
type Report struct {
	Policy   string      `json:"policy"`
	MinOrder int         `json:"min_order"`
	MaxOrder int         `json:"max_order"`
	Blocks   []BlockInfo `json:"blocks"`
	Totals   Totals      `json:"totals"`
}

// Dump snapshots every block in registry order. Lead bytes are copied, so
// the report stays valid after the allocator changes or is closed.
func (a *Allocator) Dump() Report {
	r := Report{
		Policy:   a.policy.String(),
		MinOrder: a.cfg.MinOrder,
		MaxOrder: a.cfg.MaxOrder,
		Blocks:   []BlockInfo{},
	}

	i, usedCapacity := 0, 0
	a.each(func(b block) bool {
		info := BlockInfo{
			Index:    i,
			Addr:     b.ptr(),
			Used:     b.hdr.Used,
			Order:    b.hdr.Order,
			Size:     b.hdr.Capacity(),
			Capacity: b.hdr.Payload(),
			Length:   int(b.hdr.Length),
			Lead:     append([]byte(nil), b.payload(min(DefaultLeadBytes, b.hdr.Payload()))...),
		}
		r.Blocks = append(r.Blocks, info)

		if info.Used {
			r.Totals.UserBytes += info.Size
			usedCapacity += info.Capacity
			r.Totals.RequestedBytes += info.Length
		} else {
			r.Totals.FreeBytes += info.Size
		}
		i++
		return true
	})

	r.Totals.Arenas = a.arenas.Len()
	r.Totals.ArenaBytes = r.Totals.Arenas * a.cfg.ArenaSize()
	r.Totals.InternalFragmentation = usedCapacity - r.Totals.RequestedBytes
	return r
}

// Used returns the blocks currently handed out.
func (r Report) Used() []BlockInfo {
	var out []BlockInfo
	for _, b := range r.Blocks {
		if b.Used {
			out = append(out, b)
		}
	}
	return out
}
