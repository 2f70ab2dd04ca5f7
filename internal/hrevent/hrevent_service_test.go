package hrevent_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Pavan812100/jml-hybrid/internal/config"
	"github.com/Pavan812100/jml-hybrid/internal/employee"
	employeeMock "github.com/Pavan812100/jml-hybrid/internal/employee/mock"
	"github.com/Pavan812100/jml-hybrid/internal/hrevent"
	hreventerrors "github.com/Pavan812100/jml-hybrid/internal/hrevent/errors"
	hreventMock "github.com/Pavan812100/jml-hybrid/internal/hrevent/mock"
	"github.com/Pavan812100/jml-hybrid/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	employees *employeeMock.MockRepository
	events    *hreventMock.MockRepository
	service   hrevent.Service
	redismock redismock.ClientMock
}

func testConfig() config.Config {
	return config.Config{
		DefaultRole:    "WORKER",
		EventListLimit: 200,
	}
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &serviceDeps{
		employees: employeeMock.NewMockRepository(ctrl),
		events:    hreventMock.NewMockRepository(ctrl),
	}
	deps.service = hrevent.NewService(deps.employees, deps.events, testConfig(), nil)
	return deps
}

func setupServiceTestWithRedis(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	deps := &serviceDeps{
		employees: employeeMock.NewMockRepository(ctrl),
		events:    hreventMock.NewMockRepository(ctrl),
		redismock: redisMock,
	}
	deps.service = hrevent.NewService(deps.employees, deps.events, testConfig(), rdb)
	return deps
}

func TestHrEventService_Process_Joiner(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	upsert := deps.employees.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, emp *employee.Employee) error {
			assert.Equal(t, "E1", emp.EmployeeID)
			assert.Equal(t, "Ada", emp.GivenName)
			assert.Equal(t, "", emp.FamilyName)
			assert.Equal(t, "ENG", emp.Role)
			assert.Equal(t, employee.StatusActive, emp.Status)
			return nil
		})

	appendEvt := deps.events.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt *hrevent.HrEvent) error {
			assert.Equal(t, "joiner", evt.EventType)
			assert.Equal(t, "E1", evt.EmployeeID)

			var payload hrevent.HrEventRequest
			assert.NoError(t, json.Unmarshal([]byte(evt.PayloadJSON), &payload))
			assert.Equal(t, "joiner", payload.EventType)
			assert.Equal(t, "E1", payload.EmployeeID)
			assert.Equal(t, "Ada", payload.GivenName)
			assert.Equal(t, "ENG", payload.Role)
			return nil
		})

	// upsert harus commit sebelum append (jaminan FK)
	gomock.InOrder(upsert, appendEvt)

	resp, err := deps.service.Process(ctx, hrevent.HrEventRequest{
		EventType:  " Joiner ",
		EmployeeID: " E1 ",
		GivenName:  "Ada",
		Role:       "eng",
	})

	assert.NoError(t, err)
	assert.Equal(t, "processed", resp.Status)
	assert.Equal(t, "E1", resp.EmployeeID)
	assert.Equal(t, "joiner", resp.EventType)
}

func TestHrEventService_Process_Leaver(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	// Leaver tetap upsert dengan status active dulu; baru di-set inactive.
	upsert := deps.employees.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, emp *employee.Employee) error {
			assert.Equal(t, "E1", emp.EmployeeID)
			assert.Equal(t, employee.StatusActive, emp.Status)
			// full overwrite: field yang tidak dikirim jadi kosong/default
			assert.Equal(t, "", emp.GivenName)
			assert.Equal(t, "WORKER", emp.Role)
			return nil
		})

	setStatus := deps.employees.EXPECT().
		SetStatus(ctx, "E1", employee.StatusInactive).
		Return(nil)

	appendEvt := deps.events.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt *hrevent.HrEvent) error {
			assert.Equal(t, "leaver", evt.EventType)
			return nil
		})

	gomock.InOrder(upsert, setStatus, appendEvt)

	resp, err := deps.service.Process(ctx, hrevent.HrEventRequest{
		EventType:  "LEAVER ",
		EmployeeID: "E1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "processed", resp.Status)
	assert.Equal(t, "leaver", resp.EventType)
}

func TestHrEventService_Process_Mover_NoStatusEffect(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.employees.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, emp *employee.Employee) error {
			assert.Equal(t, employee.StatusActive, emp.Status)
			assert.Equal(t, "MGR-7", emp.Manager)
			return nil
		})

	deps.events.EXPECT().
		Append(ctx, gomock.Any()).
		Return(nil)

	// SetStatus tidak boleh terpanggil untuk mover (tanpa EXPECT = fail)
	_, err := deps.service.Process(ctx, hrevent.HrEventRequest{
		EventType:  "mover",
		EmployeeID: "E1",
		Manager:    " MGR-7 ",
	})

	assert.NoError(t, err)
}

func TestHrEventService_Process_InvalidEventType(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	// validasi gagal sebelum mutation apa pun: tidak ada EXPECT sama sekali
	_, err := deps.service.Process(ctx, hrevent.HrEventRequest{
		EventType:  "promotion",
		EmployeeID: "E1",
	})

	assert.ErrorIs(t, err, hreventerrors.ErrInvalidEventType)
}

func TestHrEventService_Process_MissingEmployeeID(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	for _, id := range []string{"", "   ", "\t"} {
		_, err := deps.service.Process(ctx, hrevent.HrEventRequest{
			EventType:  "joiner",
			EmployeeID: id,
		})
		assert.ErrorIs(t, err, hreventerrors.ErrMissingEmployeeID)
	}
}

func TestHrEventService_Process_AppendFailurePropagates(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.employees.EXPECT().
		Upsert(ctx, gomock.Any()).
		Return(nil)

	deps.events.EXPECT().
		Append(ctx, gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := deps.service.Process(ctx, hrevent.HrEventRequest{
		EventType:  "joiner",
		EmployeeID: "E1",
	})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
}

func TestHrEventService_Process_InvalidatesEmployeeCache(t *testing.T) {
	deps := setupServiceTestWithRedis(t)
	ctx := context.Background()

	deps.employees.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	deps.events.EXPECT().Append(ctx, gomock.Any()).Return(nil)
	deps.redismock.ExpectDel(employee.ListCacheKey).SetVal(1)

	_, err := deps.service.Process(ctx, hrevent.HrEventRequest{
		EventType:  "joiner",
		EmployeeID: "E1",
	})

	assert.NoError(t, err)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestHrEventService_List(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	t.Run("uses configured default when limit is non-positive", func(t *testing.T) {
		deps.events.EXPECT().
			FindRecent(ctx, 200).
			Return([]hrevent.HrEvent{}, nil)

		resp, err := deps.service.List(ctx, 0)
		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("maps rows newest first", func(t *testing.T) {
		deps.events.EXPECT().
			FindRecent(ctx, 2).
			Return([]hrevent.HrEvent{
				{ID: 3, EventType: "leaver", EmployeeID: "E1", PayloadJSON: `{"event_type":"leaver"}`},
				{ID: 2, EventType: "mover", EmployeeID: "E1", PayloadJSON: `{"event_type":"mover"}`},
			}, nil)

		resp, err := deps.service.List(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, int64(3), resp[0].ID)
		assert.Equal(t, "leaver", resp[0].EventType)
		assert.Equal(t, int64(2), resp[1].ID)
		assert.JSONEq(t, `{"event_type":"mover"}`, string(resp[1].PayloadJSON))
	})
}
