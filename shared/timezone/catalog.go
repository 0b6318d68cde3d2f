package timezone

import (
	"time"

	"github.com/rs/zerolog/log"
)

// CatalogEntry is one zone in the curated picker list.
type CatalogEntry struct {
	Region string `json:"region"`
	Info
}

// Curated list of common IANA zones, grouped by region. Offsets and DST
// flags are computed live, so the list survives tzdata updates.
var catalogZones = []struct {
	region string
	zone   string
}{
	{"Universal", "UTC"},
	{"Europe", "Europe/London"},
	{"Europe", "Europe/Paris"},
	{"Europe", "Europe/Berlin"},
	{"Europe", "Europe/Madrid"},
	{"Europe", "Europe/Rome"},
	{"Europe", "Europe/Amsterdam"},
	{"Europe", "Europe/Stockholm"},
	{"Europe", "Europe/Warsaw"},
	{"Europe", "Europe/Athens"},
	{"Europe", "Europe/Istanbul"},
	{"Europe", "Europe/Moscow"},
	{"America", "America/New_York"},
	{"America", "America/Chicago"},
	{"America", "America/Denver"},
	{"America", "America/Los_Angeles"},
	{"America", "America/Toronto"},
	{"America", "America/Mexico_City"},
	{"America", "America/Sao_Paulo"},
	{"America", "America/Argentina/Buenos_Aires"},
	{"Asia", "Asia/Kuala_Lumpur"},
	{"Asia", "Asia/Jakarta"},
	{"Asia", "Asia/Singapore"},
	{"Asia", "Asia/Bangkok"},
	{"Asia", "Asia/Hong_Kong"},
	{"Asia", "Asia/Shanghai"},
	{"Asia", "Asia/Tokyo"},
	{"Asia", "Asia/Seoul"},
	{"Asia", "Asia/Kolkata"},
	{"Asia", "Asia/Dubai"},
	{"Africa", "Africa/Cairo"},
	{"Africa", "Africa/Lagos"},
	{"Africa", "Africa/Johannesburg"},
	{"Africa", "Africa/Nairobi"},
	{"Oceania", "Australia/Sydney"},
	{"Oceania", "Australia/Perth"},
	{"Oceania", "Pacific/Auckland"},
}

// Catalog returns the curated zone list with live zone metadata at the
// given instant. Zones missing from the host tzdata are skipped.
func Catalog(at time.Time) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(catalogZones))

	for _, candidate := range catalogZones {
		info, err := ZoneInfo(candidate.zone, at)
		if err != nil {
			log.Warn().Err(err).Str("timezone", candidate.zone).Msg("Skipping catalog zone missing from tzdata")

			continue
		}

		entries = append(entries, CatalogEntry{Region: candidate.region, Info: info})
	}

	return entries
}
