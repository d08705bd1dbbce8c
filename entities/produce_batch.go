package entities

// ProduceBatch is a harvested lot of a single crop type tracked through the supply chain.
type ProduceBatch struct {
	ID           string     `json:"id"`
	CropType     string     `json:"crop_type"`
	HarvestDate  string     `json:"harvest_date"`
	Quantity     float64    `json:"quantity"` // kg
	Price        float64    `json:"price"`    // per kg
	FarmerID     string     `json:"farmer_id"`
	FarmerName   string     `json:"farmer_name"`
	Status       string     `json:"status"` // harvested, distributed, retail, sold
	CurrentOwner string     `json:"current_owner"`
	Location     string     `json:"location"`
	Transfers    []Transfer `json:"transfers"`
}

// Transfer is a recorded custody change. Never modified once appended.
type Transfer struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Timestamp string `json:"timestamp"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

// Clone returns a copy whose transfer history does not alias the receiver's.
func (b ProduceBatch) Clone() ProduceBatch {
	out := b
	out.Transfers = make([]Transfer, len(b.Transfers))
	copy(out.Transfers, b.Transfers)
	return out
}
