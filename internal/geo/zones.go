package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// TransitLine is a bus line serving a zone.
type TransitLine struct {
	Number  string `json:"number"`
	Name    string `json:"name"`
	Company string `json:"company"`
}

// Zone is a named geographic bounding box with the transit lines serving it.
type Zone struct {
	Name  string        `json:"name"`
	Bound orb.Bound     `json:"-"`
	Lines []TransitLine `json:"lines"`
}

// ZoneMatch is the result of a zone lookup. Approximate is set when the point
// fell outside every box and the nearest centroid was used instead.
type ZoneMatch struct {
	Name        string        `json:"name"`
	Approximate bool          `json:"approximate"`
	Lines       []TransitLine `json:"lines"`
}

func bound(latMin, latMax, lngMin, lngMax float64) orb.Bound {
	return orb.Bound{Min: orb.Point{lngMin, latMin}, Max: orb.Point{lngMax, latMax}}
}

// montevideoZones covers the neighborhoods where the marketplace operates.
// Line data follows real STM (Sistema de Transporte Metropolitano) routes.
var montevideoZones = []Zone{
	{
		Name:  "Ciudad Vieja",
		Bound: bound(-34.915, -34.900, -56.220, -56.195),
		Lines: []TransitLine{
			{Number: "21", Name: "Aduana - Cerro", Company: "CUTCSA"},
			{Number: "64", Name: "Ciudad Vieja - Paso de la Arena", Company: "CUTCSA"},
			{Number: "124", Name: "Ciudad Vieja - Portones", Company: "CUTCSA"},
			{Number: "141", Name: "Aduana - Pocitos", Company: "CUTCSA"},
			{Number: "148", Name: "Ciudad Vieja - Tres Cruces", Company: "CUTCSA"},
		},
	},
	{
		Name:  "Centro",
		Bound: bound(-34.912, -34.898, -56.198, -56.175),
		Lines: []TransitLine{
			{Number: "103", Name: "18 de Julio - Malvín", Company: "CUTCSA"},
			{Number: "104", Name: "18 de Julio - Carrasco", Company: "CUTCSA"},
			{Number: "110", Name: "Centro - Tres Cruces", Company: "CUTCSA"},
			{Number: "121", Name: "Centro - Pocitos", Company: "CUTCSA"},
			{Number: "199", Name: "Centro - Tres Cruces", Company: "UCOT"},
		},
	},
	{
		Name:  "Cordón",
		Bound: bound(-34.910, -34.897, -56.185, -56.168),
		Lines: []TransitLine{
			{Number: "109", Name: "Cordón - Goes", Company: "CUTCSA"},
			{Number: "117", Name: "Cordón - Punta Carretas", Company: "CUTCSA"},
			{Number: "145", Name: "Cordón - Parque Rodó", Company: "CUTCSA"},
			{Number: "181", Name: "Cordón - La Blanqueada", Company: "CUTCSA"},
		},
	},
	{
		Name:  "Pocitos",
		Bound: bound(-34.930, -34.910, -56.165, -56.140),
		Lines: []TransitLine{
			{Number: "104", Name: "Pocitos - Ciudad Vieja", Company: "CUTCSA"},
			{Number: "117", Name: "Pocitos - Centro", Company: "CUTCSA"},
			{Number: "141", Name: "Pocitos - Aduana", Company: "CUTCSA"},
			{Number: "300", Name: "Pocitos - Tres Cruces", Company: "COETC"},
		},
	},
	{
		Name:  "Buceo",
		Bound: bound(-34.920, -34.905, -56.145, -56.125),
		Lines: []TransitLine{
			{Number: "142", Name: "Buceo - Ciudad Vieja", Company: "CUTCSA"},
			{Number: "174", Name: "Buceo - Centro", Company: "CUTCSA"},
			{Number: "D1", Name: "Diferencial Buceo", Company: "CUTCSA"},
		},
	},
	{
		Name:  "Punta Carretas",
		Bound: bound(-34.935, -34.920, -56.170, -56.150),
		Lines: []TransitLine{
			{Number: "116", Name: "Punta Carretas - Parque Rodó", Company: "CUTCSA"},
			{Number: "121", Name: "Punta Carretas - Centro", Company: "CUTCSA"},
			{Number: "174", Name: "Punta Carretas - Centro", Company: "CUTCSA"},
		},
	},
	{
		Name:  "Parque Rodó",
		Bound: bound(-34.925, -34.912, -56.175, -56.155),
		Lines: []TransitLine{
			{Number: "60", Name: "Parque Rodó - Paso Molino", Company: "CUTCSA"},
			{Number: "62", Name: "Parque Rodó - La Teja", Company: "CUTCSA"},
			{Number: "116", Name: "Parque Rodó - Punta Carretas", Company: "CUTCSA"},
		},
	},
	{
		Name:  "Tres Cruces",
		Bound: bound(-34.900, -34.888, -56.180, -56.160),
		Lines: []TransitLine{
			{Number: "148", Name: "Tres Cruces - Ciudad Vieja", Company: "CUTCSA"},
			{Number: "199", Name: "Tres Cruces - Centro", Company: "UCOT"},
			{Number: "L1", Name: "Línea 1 Interdepartamental", Company: "COT"},
		},
	},
	{
		Name:  "Carrasco",
		Bound: bound(-34.900, -34.878, -56.080, -56.050),
		Lines: []TransitLine{
			{Number: "104", Name: "Carrasco - Centro", Company: "CUTCSA"},
			{Number: "710", Name: "Carrasco - Aeropuerto", Company: "CUTCSA"},
			{Number: "D10", Name: "Diferencial Carrasco", Company: "CUTCSA"},
		},
	},
	{
		Name:  "Malvín",
		Bound: bound(-34.915, -34.900, -56.120, -56.095),
		Lines: []TransitLine{
			{Number: "103", Name: "Malvín - Centro", Company: "CUTCSA"},
			{Number: "117", Name: "Malvín - Pocitos", Company: "CUTCSA"},
		},
	},
}

// NearestZone returns the zone whose bounding box contains the point, or the
// zone with the nearest centroid (by Euclidean degree distance) tagged as
// approximate when no box contains it.
func NearestZone(lat, lng float64) ZoneMatch {
	point := orb.Point{lng, lat}

	for _, zone := range montevideoZones {
		if zone.Bound.Contains(point) {
			return ZoneMatch{Name: zone.Name, Lines: zone.Lines}
		}
	}

	closest := montevideoZones[0]
	minDist := math.Inf(1)
	for _, zone := range montevideoZones {
		center := zone.Bound.Center()
		dLat := lat - center.Lat()
		dLng := lng - center.Lon()
		if dist := math.Sqrt(dLat*dLat + dLng*dLng); dist < minDist {
			minDist = dist
			closest = zone
		}
	}

	return ZoneMatch{Name: closest.Name, Approximate: true, Lines: closest.Lines}
}

// Zones exposes the zone table for discovery surfaces.
func Zones() []Zone {
	return montevideoZones
}
