package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chrono/config"
	"chrono/infras/otel"
	"chrono/internal/domains/clock/model/dto"
	"chrono/shared"
	"chrono/shared/cache"
	"chrono/shared/constant"
	"chrono/shared/datetime"
	"chrono/shared/failure"
	"chrono/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyZoneInfo = "zoneinfo"
)

type Clock interface {
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
	LocalToUTC(ctx context.Context, req dto.LocalToUTCRequest) (dto.LocalToUTCResponse, error)
	FormatISO(ctx context.Context, req dto.FormatISORequest) (dto.FormatISOResponse, error)
	LocalZone(ctx context.Context) (dto.LocalZoneResponse, error)
	ZoneInfo(ctx context.Context, zone string, at time.Time) (dto.ZoneInfoResponse, error)
	Catalog(ctx context.Context, at time.Time) (dto.CatalogResponse, error)
}

type serviceImpl struct {
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Clock {
	return &serviceImpl{
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.ConvertResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer scope.TraceIfError(err)

	instant, err := req.Instant()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse convert timestamp")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	zone := req.Timezone
	if zone == "" {
		zone = constant.DefaultZone
	}

	format := req.Format
	if format == "" {
		format = constant.DefaultConvertFormat
	}

	result, err := datetime.ConvertToTimezone(instant, zone, format)
	if err != nil {
		log.Error().Err(err).Str("timezone", zone).Msg("failed to convert timestamp")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Result = result
	res.Timezone = zone
	res.Format = format

	return res, nil
}

func (s *serviceImpl) LocalToUTC(ctx context.Context, req dto.LocalToUTCRequest) (res dto.LocalToUTCResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LocalToUTC")
	defer scope.End()
	defer scope.TraceIfError(err)

	zone := req.Timezone
	if zone == "" {
		zone = constant.DefaultZone
	}

	convert := datetime.LocalToUTC
	if req.Micros {
		convert = datetime.LocalToUTCMicros
	}

	result, err := convert(req.DateTime, zone)
	if err != nil {
		log.Error().Err(err).Str("timezone", zone).Msg("failed to convert local datetime to UTC")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Result = result
	res.Timezone = zone

	return res, nil
}

func (s *serviceImpl) FormatISO(ctx context.Context, req dto.FormatISORequest) (res dto.FormatISOResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FormatISO")
	defer scope.End()
	defer scope.TraceIfError(err)

	result, err := datetime.FormatISO(req.DateTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to reformat datetime to ISO")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Result = result

	return res, nil
}

func (s *serviceImpl) LocalZone(ctx context.Context) (res dto.LocalZoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LocalZone")
	defer scope.End()
	defer scope.TraceIfError(err)

	zone := timezone.LocalZone()

	info, err := s.zoneInfoCached(ctx, zone, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("timezone", zone).Msg("failed to describe local zone")

		return res, fmt.Errorf("failed to describe local zone: %w", err)
	}

	res.Zone = zone
	res.Info = info

	return res, nil
}

func (s *serviceImpl) ZoneInfo(ctx context.Context, zone string, at time.Time) (res dto.ZoneInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ZoneInfo")
	defer scope.End()
	defer scope.TraceIfError(err)

	info, err := s.zoneInfoCached(ctx, zone, at)
	if err != nil {
		log.Error().Err(err).Str("timezone", zone).Msg("failed to get zone info")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Info = info

	return res, nil
}

func (s *serviceImpl) Catalog(ctx context.Context, at time.Time) (res dto.CatalogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.FromEntries(timezone.Catalog(at))

	return res, nil
}

// zoneInfoCached keeps zone metadata in the cache for the configured TTL.
// The key carries the calendar date so DST transitions invalidate naturally.
// Cache failures fall through to computation.
func (s *serviceImpl) zoneInfoCached(ctx context.Context, zone string, at time.Time) (timezone.Info, error) {
	key := shared.BuildCacheKey(cacheKeyZoneInfo, zone, at.UTC().Format("2006-01-02"))

	var info timezone.Info

	cacheErr := s.cache.Get(ctx, key, &info)
	if cacheErr == nil {
		return info, nil
	}

	if !errors.Is(cacheErr, cache.Nil) {
		log.Warn().Err(cacheErr).Str("key", key).Msg("zone info cache lookup failed")
	}

	info, err := timezone.ZoneInfo(zone, at)
	if err != nil {
		return timezone.Info{}, err // nolint:wrapcheck
	}

	if err := s.cache.Save(ctx, key, info, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache zone info")
	}

	return info, nil
}
