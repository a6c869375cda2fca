package vacation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/EddieMjiyakho/Vacation-API/internal/employee"
	employeeerrors "github.com/EddieMjiyakho/Vacation-API/internal/employee/errors"
	"github.com/EddieMjiyakho/Vacation-API/internal/events"
	"github.com/EddieMjiyakho/Vacation-API/internal/messaging/kafka"
	"github.com/EddieMjiyakho/Vacation-API/internal/shared/contextutil"
	vacationerrors "github.com/EddieMjiyakho/Vacation-API/internal/vacation/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=vacation_service.go -destination=mock/vacation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, authorID string, req CreateVacationRequest) (VacationResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (VacationResponse, error)
	GetByID(ctx context.Context, id string) (VacationResponse, error)
	GetByEmployee(ctx context.Context, employeeID, status string) ([]VacationResponse, error)
	GetAll(ctx context.Context, status string) ([]VacationResponse, error)
	GetPendingForManager(ctx context.Context, managerID string) ([]VacationResponse, error)
	FindOverlapping(ctx context.Context, startDate, endDate string) ([]VacationResponse, error)
	RemainingDays(ctx context.Context, employeeID string) (RemainingDaysResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, employees, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("vacation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacation.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		logger:    l,
	}
}

// Create validates the candidate range, the author's balance and the
// author's calendar, then persists a pending request. The balance is
// not debited here; only approval spends days.
func (s *service) Create(ctx context.Context, authorID string, req CreateVacationRequest) (VacationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create vacation request",
		zap.String("request_id", rid),
		zap.String("author_id", authorID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if _, err := uuid.Parse(authorID); err != nil {
		return VacationResponse{}, vacationerrors.ErrInvalidEmployeeID
	}

	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create vacation request date parse failed", zap.Error(err))
		return VacationResponse{}, err
	}
	if err := ValidateRange(startDate, endDate, today()); err != nil {
		s.logger.Warn("create vacation request validation failed", zap.Error(err))
		return VacationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create vacation request begin tx failed", zap.Error(err))
		return VacationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qEmployees := s.employees.WithTx(tx)

	author, err := qEmployees.FindByID(ctx, authorID)
	if err != nil {
		return VacationResponse{}, mapEmployeeLookupError(err)
	}

	duration, err := DurationDays(startDate, endDate)
	if err != nil {
		return VacationResponse{}, err
	}

	if author.RemainingVacationDays < duration {
		s.logger.Warn("create vacation request insufficient balance",
			zap.String("author_id", authorID),
			zap.Int("remaining_days", author.RemainingVacationDays),
			zap.Int("requested_days", duration),
		)
		return VacationResponse{}, vacationerrors.ErrInsufficientDays
	}

	active, err := qtx.FindActiveByAuthor(ctx, authorID)
	if err != nil {
		s.logger.Error("create vacation request overlap lookup failed", zap.Error(err))
		return VacationResponse{}, err
	}
	for _, existing := range active {
		if RangesOverlap(startDate, endDate, existing.StartDate, existing.EndDate) {
			s.logger.Warn("create vacation request overlap detected",
				zap.String("author_id", authorID),
				zap.String("conflicting_id", existing.ID.String()),
			)
			return VacationResponse{}, vacationerrors.ErrRequestOverlap
		}
	}

	vr := &VacationRequest{
		ID:        uuid.New(),
		AuthorID:  author.ID,
		StartDate: startDate,
		EndDate:   endDate,
		TotalDays: duration,
		Status:    StatusPending,
	}

	if err := qtx.Create(ctx, vr); err != nil {
		s.logger.Error("create vacation request persist failed", zap.Error(err))
		return VacationResponse{}, err
	}

	if err := s.queueCreatedEvent(ctx, tx, rid, vr); err != nil {
		return VacationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create vacation request commit failed", zap.Error(err))
		return VacationResponse{}, err
	}

	s.logger.Info("create vacation request success",
		zap.String("request_id", rid),
		zap.String("vacation_id", vr.ID.String()),
		zap.String("author_id", authorID),
		zap.Int("total_days", duration),
	)

	return mapToResponse(*vr), nil
}

// UpdateStatus moves a pending request to APPROVED or REJECTED.
// Approval re-checks the author's balance against the request's own
// dates and debits it; the debit and the status change share one
// transaction. Rejection applies from any status and never refunds a
// debited balance.
func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (VacationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update vacation status",
		zap.String("request_id", rid),
		zap.String("vacation_id", id),
		zap.String("manager_id", req.ManagerID),
		zap.String("target_status", req.Status),
	)

	if req.Status != StatusApproved && req.Status != StatusRejected {
		return VacationResponse{}, vacationerrors.ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return VacationResponse{}, vacationerrors.ErrInvalidRequestID
	}
	if _, err := uuid.Parse(req.ManagerID); err != nil {
		return VacationResponse{}, vacationerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update vacation status begin tx failed", zap.Error(err))
		return VacationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qEmployees := s.employees.WithTx(tx)

	vr, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VacationResponse{}, vacationerrors.ErrRequestNotFound
		}
		return VacationResponse{}, err
	}

	manager, err := qEmployees.FindByID(ctx, req.ManagerID)
	if err != nil {
		return VacationResponse{}, mapEmployeeLookupError(err)
	}
	if !manager.IsManager {
		s.logger.Warn("update vacation status by non-manager",
			zap.String("vacation_id", id),
			zap.String("actor_id", req.ManagerID),
		)
		return VacationResponse{}, vacationerrors.ErrNotManager
	}

	if req.Status == StatusApproved {
		if vr.Status != StatusPending {
			s.logger.Warn("update vacation status invalid transition",
				zap.String("vacation_id", id),
				zap.String("from_status", vr.Status),
			)
			return VacationResponse{}, vacationerrors.ErrOnlyPendingApprovable
		}

		duration, err := DurationDays(vr.StartDate, vr.EndDate)
		if err != nil {
			return VacationResponse{}, err
		}

		author, err := qEmployees.FindByID(ctx, vr.AuthorID.String())
		if err != nil {
			return VacationResponse{}, mapEmployeeLookupError(err)
		}
		if author.RemainingVacationDays < duration {
			s.logger.Warn("update vacation status insufficient balance at approval",
				zap.String("vacation_id", id),
				zap.Int("remaining_days", author.RemainingVacationDays),
				zap.Int("required_days", duration),
			)
			return VacationResponse{}, vacationerrors.ErrInsufficientDays
		}

		author.RemainingVacationDays -= duration
		if err := qEmployees.Update(ctx, author); err != nil {
			s.logger.Error("update vacation status debit failed",
				zap.String("vacation_id", id),
				zap.Error(err),
			)
			return VacationResponse{}, err
		}
	}

	vr.Status = req.Status
	vr.ResolvedByID = &manager.ID
	now := time.Now().UTC()
	vr.ResolvedAt = &now

	if err := qtx.Update(ctx, vr); err != nil {
		s.logger.Error("update vacation status persist failed",
			zap.String("vacation_id", id),
			zap.Error(err),
		)
		return VacationResponse{}, err
	}

	if err := s.queueDecidedEvent(ctx, tx, rid, vr); err != nil {
		return VacationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update vacation status commit failed",
			zap.String("vacation_id", id),
			zap.Error(err),
		)
		return VacationResponse{}, err
	}

	s.logger.Info("update vacation status success",
		zap.String("request_id", rid),
		zap.String("vacation_id", id),
		zap.String("status", vr.Status),
	)

	return mapToResponse(*vr), nil
}

func (s *service) GetByID(ctx context.Context, id string) (VacationResponse, error) {
	vr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VacationResponse{}, vacationerrors.ErrRequestNotFound
		}
		return VacationResponse{}, err
	}
	return mapToResponse(*vr), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID, status string) ([]VacationResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, vacationerrors.ErrInvalidEmployeeID
	}
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, mapEmployeeLookupError(err)
	}

	var (
		vrs []VacationRequest
		err error
	)
	if status == "" {
		vrs, err = s.repo.FindByAuthor(ctx, employeeID)
	} else {
		vrs, err = s.repo.FindByAuthorAndStatus(ctx, employeeID, status)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(vrs), nil
}

func (s *service) GetAll(ctx context.Context, status string) ([]VacationResponse, error) {
	var (
		vrs []VacationRequest
		err error
	)
	if status == "" {
		vrs, err = s.repo.FindAll(ctx)
	} else {
		vrs, err = s.repo.FindByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(vrs), nil
}

// GetPendingForManager returns the global pending queue: every
// manager sees the same set, there is no per-manager assignment.
func (s *service) GetPendingForManager(ctx context.Context, managerID string) ([]VacationResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, vacationerrors.ErrInvalidEmployeeID
	}

	manager, err := s.employees.FindByID(ctx, managerID)
	if err != nil {
		return nil, mapEmployeeLookupError(err)
	}
	if !manager.IsManager {
		return nil, vacationerrors.ErrNotManager
	}

	vrs, err := s.repo.FindByStatus(ctx, StatusPending)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(vrs), nil
}

// FindOverlapping lists approved requests touching the given range,
// for calendar and headcount views.
func (s *service) FindOverlapping(ctx context.Context, startDate, endDate string) ([]VacationResponse, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if start.IsZero() || end.IsZero() {
		return nil, vacationerrors.ErrMissingDates
	}
	if start.After(end) {
		return nil, vacationerrors.ErrStartAfterEnd
	}

	approved, err := s.repo.FindByStatus(ctx, StatusApproved)
	if err != nil {
		return nil, err
	}

	overlapping := make([]VacationRequest, 0)
	for _, vr := range approved {
		if RangesOverlap(start, end, vr.StartDate, vr.EndDate) {
			overlapping = append(overlapping, vr)
		}
	}
	return mapToListResponse(overlapping), nil
}

func (s *service) RemainingDays(ctx context.Context, employeeID string) (RemainingDaysResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return RemainingDaysResponse{}, vacationerrors.ErrInvalidEmployeeID
	}

	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return RemainingDaysResponse{}, mapEmployeeLookupError(err)
	}

	return RemainingDaysResponse{
		EmployeeID:    empl.ID.String(),
		RemainingDays: empl.RemainingVacationDays,
	}, nil
}

func (s *service) queueCreatedEvent(ctx context.Context, tx *sql.Tx, rid string, vr *VacationRequest) error {
	if s.outbox == nil {
		return nil
	}

	event := events.VacationRequestCreatedEvent{
		EventType:  "vacation_request_created",
		RequestID:  rid,
		VacationID: vr.ID.String(),
		AuthorID:   vr.AuthorID.String(),
		StartDate:  vr.StartDate.Format(dateLayout),
		EndDate:    vr.EndDate.Format(dateLayout),
		TotalDays:  vr.TotalDays,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal created event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "vacation_request",
		AggregateID:   vr.ID.String(),
		EventType:     event.EventType,
		Topic:         events.VacationRequestCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("create vacation request outbox persist failed",
			zap.String("vacation_id", vr.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) queueDecidedEvent(ctx context.Context, tx *sql.Tx, rid string, vr *VacationRequest) error {
	if s.outbox == nil {
		return nil
	}

	event := events.VacationRequestDecidedEvent{
		EventType:    "vacation_request_decided",
		RequestID:    rid,
		VacationID:   vr.ID.String(),
		AuthorID:     vr.AuthorID.String(),
		ResolvedByID: vr.ResolvedByID.String(),
		Status:       vr.Status,
		TotalDays:    vr.TotalDays,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal decided event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "vacation_request",
		AggregateID:   vr.ID.String(),
		EventType:     event.EventType,
		Topic:         events.VacationRequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("update vacation status outbox persist failed",
			zap.String("vacation_id", vr.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapEmployeeLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	var start, end time.Time

	if startDate != "" {
		t, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return time.Time{}, time.Time{}, vacationerrors.ErrInvalidDateFormat
		}
		start = t
	}
	if endDate != "" {
		t, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return time.Time{}, time.Time{}, vacationerrors.ErrInvalidDateFormat
		}
		end = t
	}
	return start, end, nil
}

// today is the current UTC calendar day at midnight; request dates
// carry no time-of-day component so comparisons stay day-granular.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(vr VacationRequest) VacationResponse {
	resp := VacationResponse{
		ID:        vr.ID.String(),
		AuthorID:  vr.AuthorID.String(),
		StartDate: vr.StartDate.Format(dateLayout),
		EndDate:   vr.EndDate.Format(dateLayout),
		TotalDays: vr.TotalDays,
		Status:    vr.Status,
		CreatedAt: vr.CreatedAt.Format(time.RFC3339),
	}
	if vr.ResolvedByID != nil {
		v := vr.ResolvedByID.String()
		resp.ResolvedByID = &v
	}
	if vr.ResolvedAt != nil {
		v := vr.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &v
	}
	return resp
}

func mapToListResponse(vrs []VacationRequest) []VacationResponse {
	resp := make([]VacationResponse, len(vrs))
	for i, vr := range vrs {
		resp[i] = mapToResponse(vr)
	}
	return resp
}
