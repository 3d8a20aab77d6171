// Package coord converts geographic coordinates between the WGS-84, GCJ-02,
// and BD-09 reference systems.
//
// WGS-84 is the GPS-native global datum.
// GCJ-02 ("Mars coordinates") is the obfuscated variant mandated for public
// mapping in mainland China, and BD-09 is Baidu's further-obfuscated variant
// of GCJ-02.
// All conversions are closed-form and deterministic; coordinates are
// (longitude, latitude) pairs in degrees.
//
// The WGS-84 correction formulas are calibrated for mainland China only, so
// [WGS84ToGCJ02] and [GCJ02ToWGS84] return their input unchanged for points
// outside the [OutOfChina] bounding box, where the two systems coincide by
// convention.
// The BD-09 conversions apply no such guard.
package coord

import "math"

const (
	// xPi scales the BD-09 polar correction terms.
	xPi = math.Pi * 3000.0 / 180.0
	// Semi-major axis and squared eccentricity of the GCJ-02 reference
	// ellipsoid (Krasovsky 1940).
	axis = 6378245.0
	ee   = 0.00669342162296594323
)

// OutOfChina reports whether the point lies outside the approximate
// bounding rectangle of mainland China, lng in (73.66, 135.05) and
// lat in (3.86, 53.55).
// The GCJ-02 correction formulas are only calibrated inside this region.
func OutOfChina(lng, lat float64) bool {
	return !(lng > 73.66 && lng < 135.05 && lat > 3.86 && lat < 53.55)
}

// transformLat computes the latitude correction polynomial at an offset
// relative to the calibration origin (105°E, 35°N).
func transformLat(lng, lat float64) float64 {
	ret := -100.0 + 2.0*lng + 3.0*lat + 0.2*lat*lat +
		0.1*lng*lat + 0.2*math.Sqrt(math.Abs(lng))
	ret += (20.0*math.Sin(6.0*lng*math.Pi) + 20.0*math.Sin(2.0*lng*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(lat*math.Pi) + 40.0*math.Sin(lat/3.0*math.Pi)) * 2.0 / 3.0
	ret += (160.0*math.Sin(lat/12.0*math.Pi) + 320.0*math.Sin(lat*math.Pi/30.0)) * 2.0 / 3.0
	return ret
}

// transformLng computes the longitude correction polynomial at an offset
// relative to the calibration origin (105°E, 35°N).
func transformLng(lng, lat float64) float64 {
	ret := 300.0 + lng + 2.0*lat + 0.1*lng*lng +
		0.1*lng*lat + 0.1*math.Sqrt(math.Abs(lng))
	ret += (20.0*math.Sin(6.0*lng*math.Pi) + 20.0*math.Sin(2.0*lng*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(lng*math.Pi) + 40.0*math.Sin(lng/3.0*math.Pi)) * 2.0 / 3.0
	ret += (150.0*math.Sin(lng/12.0*math.Pi) + 300.0*math.Sin(lng/30.0*math.Pi)) * 2.0 / 3.0
	return ret
}

// delta computes the GCJ-02 correction for a point inside China, scaled by
// the local curvature of the reference ellipsoid.
func delta(lng, lat float64) (dLng, dLat float64) {
	dLat = transformLat(lng-105.0, lat-35.0)
	dLng = transformLng(lng-105.0, lat-35.0)
	radLat := lat / 180.0 * math.Pi
	magic := math.Sin(radLat)
	magic = 1 - ee*magic*magic
	sqrtMagic := math.Sqrt(magic)
	dLat = (dLat * 180.0) / ((axis * (1 - ee)) / (magic * sqrtMagic) * math.Pi)
	dLng = (dLng * 180.0) / (axis / sqrtMagic * math.Cos(radLat) * math.Pi)
	return dLng, dLat
}

// WGS84ToGCJ02 converts a WGS-84 coordinate to GCJ-02.
// Points outside China are returned unchanged.
func WGS84ToGCJ02(lng, lat float64) (float64, float64) {
	if OutOfChina(lng, lat) {
		return lng, lat
	}
	dLng, dLat := delta(lng, lat)
	return lng + dLng, lat + dLat
}

// GCJ02ToWGS84 converts a GCJ-02 coordinate to WGS-84.
// Points outside China are returned unchanged.
//
// The result is an approximation: it applies the forward correction at the
// input point and reflects through it, rather than inverting the forward
// transform.
// The residual error is below a meter, which is the accepted trade-off for
// this family of transforms.
func GCJ02ToWGS84(lng, lat float64) (float64, float64) {
	if OutOfChina(lng, lat) {
		return lng, lat
	}
	dLng, dLat := delta(lng, lat)
	return lng*2 - (lng + dLng), lat*2 - (lat + dLat)
}

// BD09ToGCJ02 converts a BD-09 (Baidu) coordinate to GCJ-02 by removing
// Baidu's polar offset.
func BD09ToGCJ02(lng, lat float64) (float64, float64) {
	x := lng - 0.0065
	y := lat - 0.006
	z := math.Sqrt(x*x+y*y) - 0.00002*math.Sin(y*xPi)
	theta := math.Atan2(y, x) - 0.000003*math.Cos(x*xPi)
	return z * math.Cos(theta), z * math.Sin(theta)
}

// GCJ02ToBD09 converts a GCJ-02 coordinate to BD-09 (Baidu) by applying
// Baidu's polar offset.
func GCJ02ToBD09(lng, lat float64) (float64, float64) {
	z := math.Sqrt(lng*lng+lat*lat) + 0.00002*math.Sin(lat*xPi)
	theta := math.Atan2(lat, lng) + 0.000003*math.Cos(lng*xPi)
	return z*math.Cos(theta) + 0.0065, z*math.Sin(theta) + 0.006
}

// WGS84ToBD09 converts a WGS-84 coordinate to BD-09 via GCJ-02.
func WGS84ToBD09(lng, lat float64) (float64, float64) {
	return GCJ02ToBD09(WGS84ToGCJ02(lng, lat))
}

// BD09ToWGS84 converts a BD-09 coordinate to WGS-84 via GCJ-02.
func BD09ToWGS84(lng, lat float64) (float64, float64) {
	return GCJ02ToWGS84(BD09ToGCJ02(lng, lat))
}
