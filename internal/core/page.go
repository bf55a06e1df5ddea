package core

// Page describes the slice of a list visible on one 1-based page.
type Page struct {
	Current    int `json:"page"`
	Size       int `json:"pageSize"`
	Start      int `json:"start"` // inclusive index into the list
	End        int `json:"end"`   // exclusive index into the list
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate computes the visible index range [(current-1)*size,
// current*size) clipped to [0, total). Requests outside
// [1, TotalPages] are clamped back into range rather than producing an
// empty window, so out-of-range page changes behave as no-ops.
func Paginate(current, size, total int) Page {
	if size <= 0 {
		size = 1
	}
	totalPages := (total + size - 1) / size
	if current < 1 {
		current = 1
	}
	if totalPages > 0 && current > totalPages {
		current = totalPages
	}
	start := (current - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return Page{
		Current:    current,
		Size:       size,
		Start:      start,
		End:        end,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Slice applies the page window to the list.
func (p Page) Slice(txs []Transaction) []Transaction {
	if p.Start >= len(txs) {
		return nil
	}
	end := p.End
	if end > len(txs) {
		end = len(txs)
	}
	return txs[p.Start:end]
}
