package domain

// CartLine is one product instance inside the cart. Display metadata is
// copied from the catalog at add-time and never re-fetched.
type CartLine struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Image          string `json:"image,omitempty"`
	Quantity       int    `json:"quantity"`
}

// CartState is the aggregate the store owns. TotalCents is derived and must
// equal the sum over lines of UnitPriceCents*Quantity at all times.
type CartState struct {
	Lines       []CartLine `json:"items"`
	TotalCents  int64      `json:"total"`
	TableNumber string     `json:"tableNumber"`
}

// Clone returns a deep copy so readers never share line slices with the
// live state.
func (s CartState) Clone() CartState {
	out := CartState{
		TotalCents:  s.TotalCents,
		TableNumber: s.TableNumber,
	}
	if len(s.Lines) > 0 {
		out.Lines = make([]CartLine, len(s.Lines))
		copy(out.Lines, s.Lines)
	}
	return out
}

// IsEmpty reports whether the cart has no lines.
func (s CartState) IsEmpty() bool {
	return len(s.Lines) == 0
}
