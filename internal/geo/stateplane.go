package geo

// WGS-84 → Washington North (EPSG:2285) Lambert Conformal Conic, US-feet.
// The county GIS shapefiles (park boundaries, school sites) are published in
// this CRS; we convert sale lat/long for point-in-polygon testing.

import "math"

const (
	spFalseEasting  = 1640416.666666667
	spFalseNorthing = 0.0
	phi0Deg         = 47.0              // latitude of origin
	phi1Deg         = 47.5              // standard parallel 1
	phi2Deg         = 48.73333333333333 // standard parallel 2
	lon0Deg         = -120.8333333333333333 // central meridian

	ftPerMeter = 3.2808333333333334 // US survey foot
	semiMajorM = 6378137.0          // NAD83 semi-major axis (metres)
)

var (
	lccN    float64
	lccF    float64
	lccRho0 float64
)

func init() {
	phi1 := phi1Deg * math.Pi / 180
	phi2 := phi2Deg * math.Pi / 180
	phi0 := phi0Deg * math.Pi / 180

	const e2 = 0.00669438002290 // NAD83 eccentricity squared

	m := func(phi float64) float64 {
		return math.Cos(phi) / math.Sqrt(1-e2*math.Sin(phi)*math.Sin(phi))
	}

	t := func(phi float64) float64 {
		e := math.Sqrt(e2)
		return math.Tan(math.Pi/4-phi/2) / math.Pow((1-e*math.Sin(phi))/(1+e*math.Sin(phi)), e/2)
	}

	m1 := m(phi1)
	m2 := m(phi2)
	t1 := t(phi1)
	t2 := t(phi2)
	t0 := t(phi0)

	lccN = math.Log(m1/m2) / math.Log(t1/t2)

	aFt := semiMajorM * ftPerMeter
	lccF = aFt * m1 / (lccN * math.Pow(t1, lccN))
	lccRho0 = lccF * math.Pow(t0, lccN)
}

// wgs84ToWaNorth converts latitude/longitude in decimal degrees (WGS-84) to
// State-Plane Washington North Lambert feet. It returns (northingFt,
// eastingFt) matching the (lat, lon) ordering used in feature rings.
func wgs84ToWaNorth(latDeg, lonDeg float64) (northingFt, eastingFt float64) {
	phi := latDeg * math.Pi / 180
	lambda := lonDeg * math.Pi / 180
	lambda0 := lon0Deg * math.Pi / 180

	t := math.Tan(math.Pi/4 - phi/2)
	rho := lccF * math.Pow(t, lccN)
	theta := lccN * (lambda - lambda0)

	xFt := rho*math.Sin(theta) + spFalseEasting
	yFt := lccRho0 - rho*math.Cos(theta) + spFalseNorthing

	eastingFt = xFt
	northingFt = yFt
	return
}

// DistanceMiles returns the haversine great-circle distance between two
// lat/long points.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusMiles = 3958.8
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}
