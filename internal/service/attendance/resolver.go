package attendance

import (
	"math"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/geo"
)

// Resolve decides whether coord may record attendance. With geo-fencing disabled
// every call is admitted without an office. Otherwise the coordinate must fall
// inside the radius of officeHint when one is given, or of some active office when
// it is empty; among several covering offices the nearest wins. Inactive offices
// in offices are ignored.
func Resolve(coord *attendance.Coordinate, officeHint string, offices []office.Office, enabled bool) (attendance.Admission, error) {
	if !enabled {
		return attendance.Admission{}, nil
	}

	if coord == nil {
		return attendance.Admission{}, &attendance.LocationUnavailableError{}
	}
	point := geo.Point{Lat: coord.Lat, Lng: coord.Lng}
	if !point.Valid() {
		return attendance.Admission{}, &attendance.LocationUnavailableError{Reason: "coordinate is out of range"}
	}

	active := office.Active(offices)
	if len(active) == 0 {
		return attendance.Admission{}, attendance.ErrNoActiveOffices
	}

	if officeHint != "" {
		for _, o := range active {
			if o.OfficeID != officeHint {
				continue
			}
			distance := geo.Distance(point, geo.Point{Lat: o.Lat, Lng: o.Lng})
			if distance > o.RadiusMeters {
				return attendance.Admission{}, &attendance.OutOfRangeError{
					OfficeID:       o.OfficeID,
					OfficeName:     o.OfficeName,
					DistanceMeters: geo.Round2(distance),
					RadiusMeters:   o.RadiusMeters,
				}
			}
			return admit(o, distance), nil
		}
		return attendance.Admission{}, attendance.ErrSelectedOfficeNotFound
	}

	nearest, nearestDistance := -1, math.Inf(1)
	covering, coveringDistance := -1, math.Inf(1)
	for i, o := range active {
		distance := geo.Distance(point, geo.Point{Lat: o.Lat, Lng: o.Lng})
		if distance < nearestDistance {
			nearest, nearestDistance = i, distance
		}
		if distance <= o.RadiusMeters && distance < coveringDistance {
			covering, coveringDistance = i, distance
		}
	}

	if covering < 0 {
		o := active[nearest]
		return attendance.Admission{}, &attendance.NoOfficeInRangeError{
			NearestOfficeID:       o.OfficeID,
			NearestOfficeName:     o.OfficeName,
			NearestDistanceMeters: geo.Round2(nearestDistance),
			RadiusMeters:          o.RadiusMeters,
		}
	}

	return admit(active[covering], coveringDistance), nil
}

func admit(o office.Office, distance float64) attendance.Admission {
	return attendance.Admission{
		Matched:        true,
		OfficeID:       o.OfficeID,
		OfficeName:     o.OfficeName,
		DistanceMeters: geo.Round2(distance),
		RadiusMeters:   o.RadiusMeters,
	}
}
