package equipment

// Record is one parsed equipment entry. Empty text fields mean the key was absent.
type Record struct {
	Name        string  `json:"name"`
	Index       string  `json:"index"`
	Weight      float64 `json:"weight"`
	URL         string  `json:"url"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Cost        string  `json:"cost"`
}

// Field keys recognized inside an equipment object.
const (
	KeyName        = "name"
	KeyIndex       = "index"
	KeyWeight      = "weight"
	KeyURL         = "url"
	KeyQuantity    = "quantity"
	KeyDescription = "description"
	KeyCost        = "cost"
)

// set assigns raw to the field named by key. Unknown keys are ignored.
func (r *Record) set(key, raw string) {
	switch key {
	case KeyName:
		r.Name = raw
	case KeyIndex:
		r.Index = raw
	case KeyURL:
		r.URL = raw
	case KeyDescription:
		r.Description = raw
	case KeyCost:
		r.Cost = raw
	case KeyWeight:
		r.Weight = ParseWeight(raw)
	case KeyQuantity:
		r.Quantity = ParseCount(raw)
	}
}
