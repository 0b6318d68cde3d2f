package clock

import (
	"net/http"
	"time"

	"chrono/infras/otel"
	"chrono/internal/domains/clock/model/dto"
	"chrono/internal/domains/clock/service"
	"chrono/shared/constant"
	"chrono/shared/failure"
	"chrono/shared/timezone"
	"chrono/shared/validator"
	"chrono/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Clock
	otel    otel.Otel
}

func New(service service.Clock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/zones", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetZones)
		routerGroup.Get("/local", handler.GetLocalZone)
		routerGroup.Get("/info", handler.GetZoneInfo)
	})

	router.Route("/convert", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Convert)
		routerGroup.Post("/utc", handler.ConvertLocalToUTC)
	})

	router.Route("/format", func(routerGroup chi.Router) {
		routerGroup.Post("/iso", handler.FormatISO)
	})
}

// GetZones lists the supported timezone catalog.
// @Summary List supported timezones
// @Description Retrieve the curated timezone catalog with live offsets.
// @Tags Clock
// @Produce json
// @Param at query string false "Reference instant in RFC 3339, defaults to now"
// @Success 200 {object} dto.CatalogResponse "Timezone catalog"
// @Failure 400 {object} response.Error
// @Router /v1/zones [get]
func (handler *Handler) GetZones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetZones")
	defer scope.End()

	at, err := referenceInstant(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse reference instant")

		response.WithError(w, err)

		return
	}

	catalog, err := handler.service.Catalog(ctx, at)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build timezone catalog")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, catalog)
}

// GetLocalZone reports the zone the service itself runs in.
// @Summary Get the local timezone
// @Description Resolve the host timezone together with its current offset and DST status.
// @Tags Clock
// @Produce json
// @Success 200 {object} dto.LocalZoneResponse "Local timezone"
// @Failure 500 {object} response.Error
// @Router /v1/zones/local [get]
func (handler *Handler) GetLocalZone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocalZone")
	defer scope.End()

	res, err := handler.service.LocalZone(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve local zone")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetZoneInfo describes a single timezone.
// @Summary Describe a timezone
// @Description Return offset, abbreviation and DST observance for an IANA timezone.
// @Tags Clock
// @Produce json
// @Param tz query string true "IANA timezone name"
// @Param at query string false "Reference instant in RFC 3339, defaults to now"
// @Success 200 {object} dto.ZoneInfoResponse "Timezone details"
// @Failure 400 {object} response.Error
// @Router /v1/zones/info [get]
func (handler *Handler) GetZoneInfo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetZoneInfo")
	defer scope.End()

	zone := r.URL.Query().Get(constant.RequestParamTimezone)
	if err := validator.ValidateVar(zone, "required,iana_tz"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("timezone", zone).Msg("invalid timezone parameter")

		response.WithError(w, failure.InvalidTimezoneParam)

		return
	}

	at, err := referenceInstant(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse reference instant")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ZoneInfo(ctx, zone, at)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("timezone", zone).Msg("failed to describe zone")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Zone described successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Convert renders an instant in a target timezone.
// @Summary Convert a timestamp into a timezone
// @Description Render the given instant as a wall-clock string in the requested timezone and format template.
// @Tags Clock
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} dto.ConvertResponse "Converted timestamp"
// @Failure 400 {object} response.Error
// @Router /v1/convert [post]
func (handler *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert timestamp")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Timestamp converted successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ConvertLocalToUTC turns a local wall-clock date into a UTC timestamp.
// @Summary Convert a local date to UTC
// @Description Interpret the wall-clock date in its timezone and return the UTC instant with fixed-width fractional seconds.
// @Tags Clock
// @Accept json
// @Produce json
// @Param request body dto.LocalToUTCRequest true "Local to UTC Request"
// @Success 200 {object} dto.LocalToUTCResponse "UTC timestamp"
// @Failure 400 {object} response.Error
// @Router /v1/convert/utc [post]
func (handler *Handler) ConvertLocalToUTC(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertLocalToUTC")
	defer scope.End()

	req := dto.LocalToUTCRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.LocalToUTC(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert local date to UTC")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// FormatISO normalizes a date-time string into ISO 8601.
// @Summary Format a date-time as ISO 8601
// @Description Rewrite a space-separated date-time string with the T separator.
// @Tags Clock
// @Accept json
// @Produce json
// @Param request body dto.FormatISORequest true "Format ISO Request"
// @Success 200 {object} dto.FormatISOResponse "ISO formatted date-time"
// @Failure 400 {object} response.Error
// @Router /v1/format/iso [post]
func (handler *Handler) FormatISO(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FormatISO")
	defer scope.End()

	req := dto.FormatISORequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.FormatISO(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to format date-time")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// referenceInstant reads the optional "at" query parameter. An absent
// parameter means now, in the application timezone.
func referenceInstant(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get(constant.RequestParamAt)
	if raw == "" {
		return timezone.Now(), nil
	}

	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, failure.InvalidDateTimeParam
	}

	return timezone.ToAppTime(at), nil
}
