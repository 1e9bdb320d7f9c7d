package model

const (
	EntityName = "property"

	// IDPrefix is used when a seed entry ships without an id.
	IDPrefix = "property-"
)

// Address locates a property; location filters match against any of its parts.
type Address struct {
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Offers describes the bed/shower/occupant counts shown on listing cards.
type Offers struct {
	Bed       string `json:"bed"`
	Shower    string `json:"shower"`
	Occupants string `json:"occupants"`
}

type Host struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// Property is a bookable listing. Records are seeded once at process start
// and never mutated afterwards.
type Property struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     Address  `json:"address"`
	Rating      float64  `json:"rating"`
	Category    []string `json:"category"`
	Price       float64  `json:"price"`
	Offers      Offers   `json:"offers"`
	Image       string   `json:"image"`
	Discount    string   `json:"discount"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Host        *Host    `json:"host,omitempty"`
}
