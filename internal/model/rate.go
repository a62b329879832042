package model

// Rate is a reference price for a recyclable material. The table is
// read-only for the API and populated out of band.
type Rate struct {
	ID       int64  `json:"id"`
	Material string `json:"material"`
	Price    string `json:"price"`
}
