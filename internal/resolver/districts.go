package resolver

import (
	"strings"

	"github.com/leegyver/land-sub002/internal/models"
)

// districtCentroids maps each Incheon sub-region the site lists under to a
// representative coordinate, used when a listing has no stored position and
// geocoding comes up empty.
var districtCentroids = map[string]models.Coordinate{
	"중구":   {Lat: 37.4738, Lng: 126.6216},
	"동구":   {Lat: 37.4739, Lng: 126.6432},
	"미추홀구": {Lat: 37.4635, Lng: 126.6502},
	"연수구":  {Lat: 37.4102, Lng: 126.6788},
	"남동구":  {Lat: 37.4475, Lng: 126.7312},
	"부평구":  {Lat: 37.5070, Lng: 126.7219},
	"계양구":  {Lat: 37.5374, Lng: 126.7376},
	"서구":   {Lat: 37.5456, Lng: 126.6760},
	"강화군":  {Lat: 37.7464, Lng: 126.4880},
	"옹진군":  {Lat: 37.4465, Lng: 126.6368},
	"송도":   {Lat: 37.3895, Lng: 126.6435},
	"청라":   {Lat: 37.5343, Lng: 126.6320},
	"영종":   {Lat: 37.4918, Lng: 126.5294},
}

// districtKeys fixes the lookup order. Longer names come first so 남동구
// cannot be captured by the 동구 entry.
var districtKeys = []string{
	"미추홀구",
	"남동구",
	"연수구",
	"부평구",
	"계양구",
	"강화군",
	"옹진군",
	"중구",
	"동구",
	"서구",
	"송도",
	"청라",
	"영종",
}

// defaultCentroid is Incheon city hall, the fallback when no sub-region key
// matches the listing's district field.
var defaultCentroid = models.Coordinate{Lat: 37.4563, Lng: 126.7052}

// centroidFor picks the fallback coordinate for a district string. Matching
// is by substring because the field is free text ("인천 남동구", "남동구 구월동").
func centroidFor(district string) models.Coordinate {
	if district == "" {
		return defaultCentroid
	}
	for _, key := range districtKeys {
		if strings.Contains(district, key) {
			return districtCentroids[key]
		}
	}
	return defaultCentroid
}
