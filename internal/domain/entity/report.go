package entity

// FileResult represents the outcome of processing a single export file.
type FileResult struct {
	File      string `json:"file"`
	ItemCount int    `json:"item_count"`
	Error     string `json:"error,omitempty"`
}

// DuplicateGroup representa um identificador que apareceu mais de uma vez,
// na ordem em que foi visto pela primeira vez.
type DuplicateGroup struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// UnitTotal is the aggregated cost and item count for one cost unit.
type UnitTotal struct {
	Unit      string  `json:"cost_unit"`
	ItemCount int     `json:"item_count"`
	TotalCost float64 `json:"total_cost"`
}

// AggregateReport contains everything computed in one run across all files.
type AggregateReport struct {
	Directory  string           `json:"directory"`
	Pattern    string           `json:"pattern"`
	Files      []FileResult     `json:"files"`
	TotalItems int              `json:"total_items"`
	UniqueIDs  int              `json:"unique_ids"`
	CheckedIDs int              `json:"checked_ids"`
	Duplicates []DuplicateGroup `json:"duplicates,omitempty"`
	GrandTotal float64          `json:"grand_total"`
	UnitTotals []UnitTotal      `json:"unit_totals"`
	Currency   string           `json:"currency"`
}

// HasDuplicates informa se a verificação de unicidade encontrou repetições.
func (r *AggregateReport) HasDuplicates() bool {
	return len(r.Duplicates) > 0
}
