package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/service"
	stay "frontdesk/internal/domains/stay/model"
	storeMocks "frontdesk/internal/domains/store/mocks"
	"frontdesk/internal/domains/store/repository"
	snapshotMocks "frontdesk/internal/domains/store/snapshot/mocks"
	"frontdesk/shared/events"
	eventMocks "frontdesk/shared/events/mocks"
	"frontdesk/shared/failure"
	"frontdesk/shared/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seed() []stay.StayRecord {
	return []stay.StayRecord{
		{ID: "1", Room: 101, CheckIn: "2026-03-10", CheckOut: "2026-03-12", Name: "Ana"},
		{ID: "2", Room: 101, CheckIn: "2026-03-10", CheckOut: "2026-03-12", Name: "Luis"},
		{ID: "3", Room: 102, CheckIn: "2026-03-10", CheckOut: "2026-03-11", Name: "Eva"},
		{ID: "4", Room: 103, CheckIn: "2026-03-01", CheckOut: "2026-03-04", Name: "Old"},
		{ID: "5", Room: 104, CheckIn: "sometime", CheckOut: "", Name: "Legacy"},
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Hotel.ImportDateLayout = "02/01/2006"

	return cfg
}

type fixture struct {
	store     repository.Store
	snapshots *snapshotMocks.MockSnapshotter
	publisher *eventMocks.MockPublisher
	svc       service.Reservation
}

func newFixture(t *testing.T, ctrl *gomock.Controller) fixture {
	t.Helper()

	f := fixture{
		store:     repository.NewMemory(seed(), nil),
		snapshots: snapshotMocks.NewMockSnapshotter(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}
	f.svc = service.New(f.store, f.snapshots, lock.NewLocalLocker(), f.publisher, testConfig(), mocks.NewOtel())

	return f
}

func TestReservationService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	res, err := f.svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, res.Total)
	assert.Equal(t, []dto.SummaryLine{
		{CheckIn: "2026-03-01", Records: 1, Rooms: 1},
		{CheckIn: "2026-03-10", Records: 3, Rooms: 2},
		{CheckIn: "sometime", Records: 1, Rooms: 1},
	}, res.Dates)
}

func TestReservationService_PurgeByCheckIn(t *testing.T) {
	tests := []struct {
		name      string
		checkIn   time.Time
		setupMock func(f fixture)
		expected  dto.PurgeResponse
		remaining int
		expectErr bool
	}{
		{
			name:    "removes every record of the date",
			checkIn: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			setupMock: func(f fixture) {
				f.snapshots.EXPECT().Stays(gomock.Any(), gomock.Len(5), gomock.Any()).Return("s3://b/snapshots/x.json", nil)
				f.publisher.EXPECT().Publish(gomock.Any(), events.KeyReservationsPurged, events.ReservationsPurged{
					CheckIn: "2026-03-10", Removed: 3, Snapshot: "s3://b/snapshots/x.json",
				})
			},
			expected:  dto.PurgeResponse{CheckIn: "2026-03-10", Before: 5, Removed: 3, Snapshot: "s3://b/snapshots/x.json"},
			remaining: 2,
		},
		{
			name:      "nothing to purge skips the snapshot",
			checkIn:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			setupMock: func(_ fixture) {},
			expected:  dto.PurgeResponse{CheckIn: "2026-04-01", Before: 5},
			remaining: 5,
		},
		{
			name:    "snapshot failure keeps the store",
			checkIn: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			setupMock: func(f fixture) {
				f.snapshots.EXPECT().Stays(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket missing"))
			},
			remaining: 5,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(t, ctrl)
			tt.setupMock(f)

			res, err := f.svc.PurgeByCheckIn(context.Background(), tt.checkIn)

			stays, _ := f.store.ReadStays(context.Background())
			assert.Len(t, stays, tt.remaining)

			if tt.expectErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestReservationService_Import(t *testing.T) {
	const csv = "room,check_in,check_out,party_size,name,age,group_key,services,notes\n" +
		"110,20/03/2026,22/03/2026,2,Ana Diaz,41,V9,BREAKFAST,\n" +
		"111,20/03/2026,22/03/2026,1,Luis Diaz,12,V9,BREAKFAST,\n"

	tests := []struct {
		name      string
		input     string
		setupMock func(f fixture)
		added     int
		total     int
		errCheck  func(err error) bool
	}{
		{
			name:  "appends decoded rows",
			input: csv,
			setupMock: func(f fixture) {
				f.snapshots.EXPECT().Stays(gomock.Any(), gomock.Len(5), gomock.Any()).Return("", nil)
				f.publisher.EXPECT().Publish(gomock.Any(), events.KeyReservationsImported, events.ReservationsImported{Added: 2})
			},
			added: 2,
			total: 7,
		},
		{
			name:      "header only",
			input:     "room,check_in,check_out\n",
			setupMock: func(_ fixture) {},
			total:     5,
		},
		{
			name:      "invalid file",
			input:     "room,check_in\n101,10/03/2026\n",
			setupMock: func(_ fixture) {},
			total:     5,
			errCheck:  failure.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(t, ctrl)
			tt.setupMock(f)

			res, err := f.svc.Import(context.Background(), dto.FormatCSV, strings.NewReader(tt.input))

			stays, _ := f.store.ReadStays(context.Background())
			assert.Len(t, stays, tt.total)

			if tt.errCheck != nil {
				assert.True(t, tt.errCheck(err), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.added, res.Added)

			if tt.added > 0 {
				assert.Equal(t, "2026-03-20", stays[5].CheckIn)
				assert.Equal(t, 6, stays[6].Position)
			}
		})
	}
}

func TestReservationService_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storeMocks.NewMockStore(ctrl)
	unavailable := failure.StoreUnavailable(errors.New("no such table"))
	store.EXPECT().ReadStays(gomock.Any()).Return(nil, unavailable).Times(3)

	svc := service.New(store, snapshotMocks.NewMockSnapshotter(ctrl), lock.NewLocalLocker(),
		eventMocks.NewMockPublisher(ctrl), testConfig(), mocks.NewOtel())

	_, err := svc.Summary(context.Background())
	assert.True(t, failure.IsStoreUnavailable(err))

	_, err = svc.PurgeByCheckIn(context.Background(), time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, failure.IsStoreUnavailable(err))

	_, err = svc.Import(context.Background(), dto.FormatCSV, strings.NewReader("room,check_in,check_out\n101,10/03/2026,12/03/2026\n"))
	assert.True(t, failure.IsStoreUnavailable(err))
}
