package hrevent

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Pavan812100/jml-hybrid/internal/config"
	"github.com/Pavan812100/jml-hybrid/internal/employee"
	hreventerrors "github.com/Pavan812100/jml-hybrid/internal/hrevent/errors"
	"github.com/Pavan812100/jml-hybrid/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service interface {
	Process(ctx context.Context, req HrEventRequest) (ProcessEventResponse, error)
	List(ctx context.Context, limit int) ([]HrEventResponse, error)
}

type service struct {
	employees employee.Repository
	events    Repository
	cfg       config.Config
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewService(
	employees employee.Repository,
	events Repository,
	cfg config.Config,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("hrevent.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hrevent.service")
	}
	return &service{
		employees: employees,
		events:    events,
		cfg:       cfg,
		rdb:       rdb,
		logger:    l,
	}
}

// Process menjalankan event-application protocol:
//
//  1. validasi event_type (closed set) dan employee_id
//  2. normalisasi field opsional (trim; role di-uppercase, kosong -> default)
//  3. upsert employee dengan status active — SELALU, termasuk untuk leaver,
//     supaya FK hr_events terjamin sebelum append
//  4. khusus leaver: set status inactive (menimpa active dari langkah 3)
//  5. append snapshot event yang sudah dinormalisasi ke audit log
//
// Tiga write di atas adalah tiga commit terpisah (autocommit per statement),
// urutannya yang menjaga invariant "tidak ada event yatim".
func (s *service) Process(ctx context.Context, req HrEventRequest) (ProcessEventResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	eventType, err := ParseEventType(req.EventType)
	if err != nil {
		s.logger.Warn("hr event rejected: invalid event_type",
			zap.String("request_id", rid),
			zap.String("event_type", req.EventType),
		)
		return ProcessEventResponse{}, err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		s.logger.Warn("hr event rejected: missing employee_id",
			zap.String("request_id", rid),
			zap.String("event_type", eventType.String()),
		)
		return ProcessEventResponse{}, hreventerrors.ErrMissingEmployeeID
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = s.cfg.DefaultRole
	}

	normalized := HrEventRequest{
		EventType:  eventType.String(),
		EmployeeID: employeeID,
		GivenName:  strings.TrimSpace(req.GivenName),
		FamilyName: strings.TrimSpace(req.FamilyName),
		Role:       role,
		Manager:    strings.TrimSpace(req.Manager),
	}

	s.logger.Debug("hr event accepted for processing",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("event_type", eventType.String()),
	)

	// Upsert dulu agar FK hr_events selalu terpenuhi. Untuk leaver status
	// sempat active sesaat; langsung dikoreksi di langkah berikutnya.
	emp := &employee.Employee{
		EmployeeID: employeeID,
		GivenName:  normalized.GivenName,
		FamilyName: normalized.FamilyName,
		Role:       normalized.Role,
		Manager:    normalized.Manager,
		Status:     employee.StatusActive,
	}
	if err := s.employees.Upsert(ctx, emp); err != nil {
		s.logger.Error("hr event upsert failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return ProcessEventResponse{}, mapRepositoryError(err)
	}

	if eventType == EventTypeLeaver {
		if err := s.employees.SetStatus(ctx, employeeID, employee.StatusInactive); err != nil {
			s.logger.Error("hr event leaver status update failed",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			return ProcessEventResponse{}, mapRepositoryError(err)
		}
	}

	payload, err := json.Marshal(normalized)
	if err != nil {
		s.logger.Error("hr event payload marshal failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return ProcessEventResponse{}, err
	}

	evt := &HrEvent{
		EventType:   eventType.String(),
		EmployeeID:  employeeID,
		PayloadJSON: string(payload),
	}
	if err := s.events.Append(ctx, evt); err != nil {
		// Upsert di atas sudah commit; tidak ada compensating rollback.
		s.logger.Error("hr event append failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return ProcessEventResponse{}, mapRepositoryError(err)
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, employee.ListCacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate employee list cache",
				zap.Error(err),
				zap.String("key", employee.ListCacheKey),
			)
		}
	}

	s.logger.Info("hr event processed",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("event_type", eventType.String()),
	)

	return ProcessEventResponse{
		Status:     "processed",
		EmployeeID: employeeID,
		EventType:  eventType.String(),
	}, nil
}

func (s *service) List(ctx context.Context, limit int) ([]HrEventResponse, error) {
	if limit <= 0 {
		limit = s.cfg.EventListLimit
	}

	s.logger.Debug("list hr events requested", zap.Int("limit", limit))

	evts, err := s.events.FindRecent(ctx, limit)
	if err != nil {
		s.logger.Error("list hr events failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(evts), nil
}

func mapToResponse(evt HrEvent) HrEventResponse {
	return HrEventResponse{
		ID:          evt.ID,
		Ts:          evt.Ts.UTC().Format(time.RFC3339),
		EventType:   evt.EventType,
		EmployeeID:  evt.EmployeeID,
		PayloadJSON: json.RawMessage(evt.PayloadJSON),
	}
}

func mapToListResponse(evts []HrEvent) []HrEventResponse {
	res := make([]HrEventResponse, len(evts))
	for i, e := range evts {
		res[i] = mapToResponse(e)
	}
	return res
}
