package domain

import "strconv"

// Coordinate - пара широта/долгота, полученная от геокодера
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the coordinate as "lat,lng", the form the Directions and
// Embed APIs expect for origin and destination.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}
