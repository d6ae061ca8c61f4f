// Package probe reads the environmental signals consumed by smart
// selection: solar elevation for a location and display brightness. Probes
// degrade to "unavailable" instead of failing; smart selection then gives
// the missing signal zero weight.
package probe

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/prism/internal/calc"
)

// Sun supplies a normalized solar elevation for a point in time: 0 at solar
// midnight, 0.5 at sunrise/sunset, 1 at solar noon. The boolean result is
// false when the signal is unavailable.
type Sun interface {
	Elevation(t time.Time) (float64, bool)
}

// SolarPosition computes solar elevation for a fixed latitude/longitude
// using the NOAA low-accuracy solar equations. It is always available.
type SolarPosition struct {
	Latitude  float64
	Longitude float64
}

// Elevation returns the normalized solar elevation at time t.
func (s SolarPosition) Elevation(t time.Time) (float64, bool) {
	return normalizedElevation(s.Latitude, s.Longitude, t.UTC()), true
}

const degToRad = math.Pi / 180

// solarAngles returns the solar declination (radians) and the equation of
// time (minutes) for a UTC instant.
func solarAngles(t time.Time) (decl, eqtime float64) {
	hour := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	gamma := 2 * math.Pi / 365 * (float64(t.YearDay()) - 1 + (hour-12)/24)

	eqtime = 229.18 * (0.000075 +
		0.001868*math.Cos(gamma) - 0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) - 0.040849*math.Sin(2*gamma))
	decl = 0.006918 -
		0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) + 0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) + 0.00148*math.Sin(3*gamma)
	return decl, eqtime
}

// elevationDegrees returns the solar elevation angle in degrees for a UTC
// instant at the given location. Longitude is positive east.
func elevationDegrees(latitude, longitude float64, t time.Time) float64 {
	decl, eqtime := solarAngles(t)
	minutes := float64(t.Hour())*60 + float64(t.Minute()) + float64(t.Second())/60
	trueSolarTime := minutes + eqtime + 4*longitude
	hourAngle := trueSolarTime/4 - 180
	for hourAngle < -180 {
		hourAngle += 360
	}
	for hourAngle > 180 {
		hourAngle -= 360
	}
	lat := latitude * degToRad
	sinEl := math.Sin(lat)*math.Sin(decl) +
		math.Cos(lat)*math.Cos(decl)*math.Cos(hourAngle*degToRad)
	return math.Asin(calc.Clamp(sinEl, -1, 1)) / degToRad
}

// normalizedElevation maps the solar elevation to [0, 1]: the day's lowest
// elevation (solar midnight) maps to 0, the horizon to 0.5, and the day's
// highest elevation (solar noon) to 1.
func normalizedElevation(latitude, longitude float64, t time.Time) float64 {
	decl, _ := solarAngles(t)
	declDeg := decl / degToRad
	highest := 90 - math.Abs(latitude-declDeg)
	lowest := math.Abs(latitude+declDeg) - 90
	actual := elevationDegrees(latitude, longitude, t)
	if actual > 0 {
		return calc.MapNumber(actual, 0, highest, 0.5, 1)
	}
	return calc.MapNumber(actual, lowest, 0, 0, 0.5)
}

// LocatedSun resolves the location with a locateme-style command before
// computing solar elevation. A missing or failing location tool makes the
// signal unavailable rather than failing the selection.
type LocatedSun struct {
	logger  hclog.Logger
	command []string
	timeout time.Duration
}

// NewLocatedSun creates a sun probe that obtains coordinates by running
// command, which must print "LAT LON" on stdout. The default command is
// locateme with a matching format string.
func NewLocatedSun(logger hclog.Logger, command []string) *LocatedSun {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if len(command) == 0 {
		command = []string{"locateme", "-f", "{LAT} {LON}"}
	}
	return &LocatedSun{logger: logger, command: command, timeout: 5 * time.Second}
}

// Elevation locates the machine and returns the normalized solar elevation.
func (s *LocatedSun) Elevation(t time.Time) (float64, bool) {
	lat, lon, err := s.locate()
	if err != nil {
		s.logger.Warn("sun signal unavailable", "error", err)
		return 0, false
	}
	return normalizedElevation(lat, lon, t.UTC()), true
}

func (s *LocatedSun) locate() (lat, lon float64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, s.command[0], s.command[1:]...).Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to run %s: %w", s.command[0], err)
	}
	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("failed to parse %s output %q", s.command[0], strings.TrimSpace(string(out)))
	}
	if _, err := fmt.Sscanf(fields[0]+" "+fields[1], "%f %f", &lat, &lon); err != nil {
		return 0, 0, fmt.Errorf("failed to parse %s output %q", s.command[0], strings.TrimSpace(string(out)))
	}
	return lat, lon, nil
}
