package domain

// AddOn is an optional paid extra attached to an activity
type AddOn struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Activity represents a bookable service (court rental or class)
type Activity struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	BasePrice   int     `json:"base_price"`
	OpeningTime string  `json:"opening_time"`
	ClosingTime string  `json:"closing_time"`
	AddOns      []AddOn `json:"add_ons"`
	IsArchived  bool    `json:"is_archived"`
}

// AddOnByName returns the add-on with the given name, if the activity defines it
func (a *Activity) AddOnByName(name string) (AddOn, bool) {
	for _, addOn := range a.AddOns {
		if addOn.Name == name {
			return addOn, true
		}
	}
	return AddOn{}, false
}

// AddOnSelection maps add-on names to chosen quantities.
// A zero or absent quantity means not selected.
type AddOnSelection map[string]int
