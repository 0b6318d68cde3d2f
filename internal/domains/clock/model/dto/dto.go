package dto

import (
	"fmt"
	"time"

	"chrono/shared/constant"
	"chrono/shared/timezone"
)

type ConvertRequest struct {
	Timestamp string `json:"timestamp" validate:"required"`
	Timezone  string `json:"timezone"  validate:"omitempty,iana_tz"`
	Format    string `json:"format"    validate:"omitempty,max=64"`
}

// Instant parses the request timestamp. RFC 3339 is preferred; a bare
// wall-clock string is accepted and read as UTC.
func (r *ConvertRequest) Instant() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, r.Timestamp); err == nil {
		return t, nil
	}

	if t, err := time.Parse(constant.DateTimeFormat, r.Timestamp); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q", r.Timestamp)
}

type ConvertResponse struct {
	Result   string `json:"result"`
	Timezone string `json:"timezone"`
	Format   string `json:"format"`
}

type LocalToUTCRequest struct {
	DateTime string `json:"datetime" validate:"required"`
	Timezone string `json:"timezone" validate:"omitempty,iana_tz"`
	Micros   bool   `json:"micros"`
}

type LocalToUTCResponse struct {
	Result   string `json:"result"`
	Timezone string `json:"timezone"`
}

type FormatISORequest struct {
	DateTime string `json:"datetime" validate:"required"`
}

type FormatISOResponse struct {
	Result string `json:"result"`
}

type ZoneInfoResponse struct {
	timezone.Info
}

type LocalZoneResponse struct {
	Zone string        `json:"zone"`
	Info timezone.Info `json:"info"`
}

type CatalogResponse struct {
	Zones []timezone.CatalogEntry `json:"zones"`
	Total int                     `json:"total"`
}

func (r *CatalogResponse) FromEntries(entries []timezone.CatalogEntry) {
	r.Zones = entries
	r.Total = len(entries)
}
