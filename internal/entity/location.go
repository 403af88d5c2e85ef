package entity

type Location struct {
	Id      string   `json:"id" db:"id"`
	Name    string   `json:"name" db:"name"`
	Address string   `json:"address" db:"address"`
	City    string   `json:"city" db:"city"`
	State   string   `json:"state" db:"state"`
	Pincode string   `json:"pincode" db:"pincode"`
	Lat     *float64 `json:"lat,omitempty" db:"lat"`
	Lng     *float64 `json:"lng,omitempty" db:"lng"`
}

func (l Location) Clone() Location {
	if l.Lat != nil {
		lat := *l.Lat
		l.Lat = &lat
	}
	if l.Lng != nil {
		lng := *l.Lng
		l.Lng = &lng
	}

	return l
}
