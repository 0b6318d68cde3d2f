package timezone

import (
	"fmt"
	"os"
	"time"

	"chrono/config"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Info describes a zone at a given instant.
type Info struct {
	Zone          string `json:"zone"`
	Offset        string `json:"offset"`
	OffsetSeconds int    `json:"offset_seconds"`
	Abbreviation  string `json:"abbreviation"`
	ObservesDST   bool   `json:"observes_dst"`
}

// LocalZone resolves the IANA name of the runtime's local timezone.
// Resolution order: the TZ environment variable when it names a loadable
// zone, the local location when it carries a real IANA name, UTC otherwise.
func LocalZone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}

		log.Warn().Str("timezone", tz).Msg("TZ names an unknown zone, ignoring it")
	}

	if name := time.Local.String(); name != "Local" {
		return name
	}

	return "UTC"
}

// ZoneInfo returns offset, abbreviation and DST observance for the named
// zone at the given instant.
func ZoneInfo(name string, at time.Time) (Info, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Info{}, fmt.Errorf("unknown timezone %q: %w", name, err)
	}

	local := at.In(loc)
	abbreviation, offsetSeconds := local.Zone()

	return Info{
		Zone:          loc.String(),
		Offset:        formatOffset(offsetSeconds),
		OffsetSeconds: offsetSeconds,
		Abbreviation:  abbreviation,
		ObservesDST:   observesDST(loc, at.Year()),
	}, nil
}

// observesDST probes January and July of the given year. A zone observes
// daylight saving when the two offsets differ.
func observesDST(loc *time.Location, year int) bool {
	_, january := time.Date(year, time.January, 1, 12, 0, 0, 0, loc).Zone()
	_, july := time.Date(year, time.July, 1, 12, 0, 0, 0, loc).Zone()

	return january != july
}

func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, seconds%3600/60)
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}
