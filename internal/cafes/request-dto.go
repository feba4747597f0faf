package cafes

// ListCafesQuery binds the catalog filter query string. Absent parameters
// keep their "don't care" zero values.
type ListCafesQuery struct {
	Quietness     string `form:"quietness" binding:"omitempty,quietness_level"`
	Busyness      string `form:"busyness" binding:"omitempty,busyness_level"`
	Wifi          bool   `form:"wifi"`
	Outlets       bool   `form:"outlets"`
	Laptops       bool   `form:"laptops"`
	PayItForward  bool   `form:"pay_it_forward"`
	BookableSeats bool   `form:"bookable"`
}

// ToCriteria maps the query onto the filter predicate's input.
func (q ListCafesQuery) ToCriteria() FilterCriteria {
	return FilterCriteria{
		QuietnessLevel:       q.Quietness,
		BusynessLevel:        q.Busyness,
		HasWifi:              q.Wifi,
		HasOutlets:           q.Outlets,
		AllowsLaptops:        q.Laptops,
		HasPayItForwardSeats: q.PayItForward,
		HasBookableSeats:     q.BookableSeats,
	}
}
