package pvc

// Claim is a validated PersistentVolumeClaim taken from a manifest.
type Claim struct {
	Kind           string
	Name           string
	StorageRequest string
}

// Row holds the estimate for a single claim.
type Row struct {
	Kind           string
	Name           string
	StorageRequest string // raw quantity as written in the manifest
	SizeGB         float64
	Cost           float64
}

// Report is the ordered set of rows produced from one manifest.
type Report struct {
	Config *Config
	Rows   []Row
	// Total is the sum of every row cost, accumulated in row order.
	Total float64
}

// Add appends a row and accounts for its cost.
func (r *Report) Add(row Row) {
	r.Rows = append(r.Rows, row)
	r.Total += row.Cost
}

// Empty reports whether no claim was priced.
func (r *Report) Empty() bool {
	return len(r.Rows) == 0
}
