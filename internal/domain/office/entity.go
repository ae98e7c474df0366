package office

import "time"

const DefaultRadiusMeters = 300

// Office is a branch location with a circular geo-fence. Inactive offices are
// kept for historical display but never match a check-in.
type Office struct {
	OfficeID     string
	OfficeName   string
	Lat          float64
	Lng          float64
	RadiusMeters float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Active returns the active offices of list, preserving order.
func Active(list []Office) []Office {
	active := make([]Office, 0, len(list))
	for _, o := range list {
		if o.IsActive {
			active = append(active, o)
		}
	}
	return active
}
