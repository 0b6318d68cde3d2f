package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"chrono/config"
	"chrono/infras/otel/mocks"
	"chrono/internal/domains/clock/model/dto"
	"chrono/internal/domains/clock/service"
	"chrono/shared/cache"
	cacheMocks "chrono/shared/cache/mocks"
	"chrono/shared/failure"
	"chrono/shared/timezone"
)

func newService(t *testing.T) (service.Clock, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(cfg, mockCache, mockOtel), mockCache
}

func TestClockService_Convert(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name       string
		req        dto.ConvertRequest
		wantErr    bool
		wantResult string
		wantZone   string
	}{
		{
			name: "utc instant into kuala lumpur",
			req: dto.ConvertRequest{
				Timestamp: "2024-11-08T16:30:45Z",
				Timezone:  "Asia/Kuala_Lumpur",
				Format:    "YYYY-MM-DD HH:mm:ss",
			},
			wantResult: "2024-11-09 00:30:45",
			wantZone:   "Asia/Kuala_Lumpur",
		},
		{
			name: "defaults applied",
			req: dto.ConvertRequest{
				Timestamp: "2024-11-08T16:30:45Z",
			},
			wantResult: "2024-11-08 16:30:45",
			wantZone:   "UTC",
		},
		{
			name: "custom template",
			req: dto.ConvertRequest{
				Timestamp: "2024-11-08T16:30:45Z",
				Timezone:  "Asia/Tokyo",
				Format:    "DD/MM/YYYY HH:mm",
			},
			wantResult: "09/11/2024 01:30",
			wantZone:   "Asia/Tokyo",
		},
		{
			name: "bad timestamp",
			req: dto.ConvertRequest{
				Timestamp: "not a timestamp",
				Timezone:  "UTC",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Convert(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantResult, res.Result)
			assert.Equal(t, tt.wantZone, res.Timezone)
		})
	}
}

func TestClockService_LocalToUTC(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name       string
		req        dto.LocalToUTCRequest
		wantErr    bool
		wantResult string
	}{
		{
			name: "millisecond padding",
			req: dto.LocalToUTCRequest{
				DateTime: "2024-11-09 00:30:45",
				Timezone: "Asia/Kuala_Lumpur",
			},
			wantResult: "2024-11-08T16:30:45.000Z",
		},
		{
			name: "microsecond precision preserved",
			req: dto.LocalToUTCRequest{
				DateTime: "2024-11-09 00:30:45.123456",
				Timezone: "Asia/Kuala_Lumpur",
				Micros:   true,
			},
			wantResult: "2024-11-08T16:30:45.123456Z",
		},
		{
			name: "empty zone means utc",
			req: dto.LocalToUTCRequest{
				DateTime: "2024-01-01 00:00:00",
			},
			wantResult: "2024-01-01T00:00:00.000Z",
		},
		{
			name: "bad datetime",
			req: dto.LocalToUTCRequest{
				DateTime: "tomorrow",
				Timezone: "UTC",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.LocalToUTC(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantResult, res.Result)
		})
	}
}

func TestClockService_FormatISO(t *testing.T) {
	svc, _ := newService(t)

	res, err := svc.FormatISO(context.Background(), dto.FormatISORequest{DateTime: "2024-11-08 16:30:45"})
	assert.NoError(t, err)
	assert.Equal(t, "2024-11-08T16:30:45", res.Result)

	_, err = svc.FormatISO(context.Background(), dto.FormatISORequest{DateTime: "16:30:45"})
	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestClockService_ZoneInfo(t *testing.T) {
	at := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		zone      string
		setupMock func(mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
		check     func(t *testing.T, res dto.ZoneInfoResponse)
	}{
		{
			name: "cache miss computes and saves",
			zone: "Asia/Kuala_Lumpur",
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), "zoneinfo:Asia/Kuala_Lumpur:2024-07-15", gomock.Any()).
					Return(cache.Nil)
				mockCache.EXPECT().
					Save(gomock.Any(), "zoneinfo:Asia/Kuala_Lumpur:2024-07-15", gomock.Any(), 3600).
					Return(nil)
			},
			check: func(t *testing.T, res dto.ZoneInfoResponse) {
				assert.Equal(t, "Asia/Kuala_Lumpur", res.Zone)
				assert.Equal(t, "+08:00", res.Offset)
				assert.False(t, res.ObservesDST)
			},
		},
		{
			name: "cache outage falls through",
			zone: "America/New_York",
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("redis down"))
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("redis down"))
			},
			check: func(t *testing.T, res dto.ZoneInfoResponse) {
				assert.Equal(t, "America/New_York", res.Zone)
				assert.Equal(t, "-04:00", res.Offset)
				assert.True(t, res.ObservesDST)
			},
		},
		{
			name: "unknown zone",
			zone: "Mars/Olympus_Mons",
			setupMock: func(mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockCache := newService(t)
			tt.setupMock(mockCache)

			res, err := svc.ZoneInfo(context.Background(), tt.zone, at)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestClockService_ZoneInfoCacheHit(t *testing.T) {
	svc, mockCache := newService(t)
	at := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	mockCache.EXPECT().
		Get(gomock.Any(), "zoneinfo:UTC:2024-07-15", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			info, ok := value.(*timezone.Info)
			if !ok {
				t.Fatal("expected *timezone.Info cache target")
			}
			info.Zone = "UTC"
			info.Offset = "+00:00"

			return nil
		})

	res, err := svc.ZoneInfo(context.Background(), "UTC", at)
	assert.NoError(t, err)
	assert.Equal(t, "UTC", res.Zone)
	assert.Equal(t, "+00:00", res.Offset)
}

func TestClockService_LocalZone(t *testing.T) {
	svc, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.LocalZone(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Zone)
	assert.Equal(t, res.Zone, res.Info.Zone)
}

func TestClockService_Catalog(t *testing.T) {
	svc, _ := newService(t)

	res, err := svc.Catalog(context.Background(), time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, len(res.Zones), res.Total)
	assert.NotEmpty(t, res.Zones)
}
