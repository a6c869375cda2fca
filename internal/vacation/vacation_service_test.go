package vacation_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/EddieMjiyakho/Vacation-API/internal/employee"
	employeeerrors "github.com/EddieMjiyakho/Vacation-API/internal/employee/errors"
	"github.com/EddieMjiyakho/Vacation-API/internal/events"
	"github.com/EddieMjiyakho/Vacation-API/internal/messaging/kafka"
	"github.com/EddieMjiyakho/Vacation-API/internal/vacation"
	vacationerrors "github.com/EddieMjiyakho/Vacation-API/internal/vacation/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRequestRepo struct {
	createFn             func(ctx context.Context, vr *vacation.VacationRequest) error
	findByIDFn           func(ctx context.Context, id string) (*vacation.VacationRequest, error)
	findAllFn            func(ctx context.Context) ([]vacation.VacationRequest, error)
	findByStatusFn       func(ctx context.Context, status string) ([]vacation.VacationRequest, error)
	findByAuthorFn       func(ctx context.Context, authorID string) ([]vacation.VacationRequest, error)
	findByAuthorStatusFn func(ctx context.Context, authorID, status string) ([]vacation.VacationRequest, error)
	findActiveByAuthorFn func(ctx context.Context, authorID string) ([]vacation.VacationRequest, error)
	findByResolverFn     func(ctx context.Context, resolverID string) ([]vacation.VacationRequest, error)
	updateFn             func(ctx context.Context, vr *vacation.VacationRequest) error
}

func (f *fakeRequestRepo) WithTx(tx *sql.Tx) vacation.Repository { return f }

func (f *fakeRequestRepo) Create(ctx context.Context, vr *vacation.VacationRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, vr)
	}
	return nil
}

func (f *fakeRequestRepo) FindByID(ctx context.Context, id string) (*vacation.VacationRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRequestRepo) FindAll(ctx context.Context) ([]vacation.VacationRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRequestRepo) FindByStatus(ctx context.Context, status string) ([]vacation.VacationRequest, error) {
	if f.findByStatusFn != nil {
		return f.findByStatusFn(ctx, status)
	}
	return nil, nil
}

func (f *fakeRequestRepo) FindByAuthor(ctx context.Context, authorID string) ([]vacation.VacationRequest, error) {
	if f.findByAuthorFn != nil {
		return f.findByAuthorFn(ctx, authorID)
	}
	return nil, nil
}

func (f *fakeRequestRepo) FindByAuthorAndStatus(ctx context.Context, authorID, status string) ([]vacation.VacationRequest, error) {
	if f.findByAuthorStatusFn != nil {
		return f.findByAuthorStatusFn(ctx, authorID, status)
	}
	return nil, nil
}

func (f *fakeRequestRepo) FindActiveByAuthor(ctx context.Context, authorID string) ([]vacation.VacationRequest, error) {
	if f.findActiveByAuthorFn != nil {
		return f.findActiveByAuthorFn(ctx, authorID)
	}
	return nil, nil
}

func (f *fakeRequestRepo) FindByResolver(ctx context.Context, resolverID string) ([]vacation.VacationRequest, error) {
	if f.findByResolverFn != nil {
		return f.findByResolverFn(ctx, resolverID)
	}
	return nil, nil
}

func (f *fakeRequestRepo) Update(ctx context.Context, vr *vacation.VacationRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, vr)
	}
	return nil
}

type fakeEmployeeRepo struct {
	createFn       func(ctx context.Context, empl *employee.Employee) error
	findAllFn      func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn     func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmailFn  func(ctx context.Context, email string) (*employee.Employee, error)
	findManagersFn func(ctx context.Context) ([]employee.Employee, error)
	updateFn       func(ctx context.Context, empl *employee.Employee) error
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindManagers(ctx context.Context) ([]employee.Employee, error) {
	if f.findManagersFn != nil {
		return f.findManagersFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeOutboxRepo struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type vacationServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   vacation.Service
	repo      *fakeRequestRepo
	employees *fakeEmployeeRepo
	outbox    *fakeOutboxRepo
}

func setupVacationServiceTest(t *testing.T) *vacationServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeRequestRepo{}
	employees := &fakeEmployeeRepo{}
	outbox := &fakeOutboxRepo{}
	svc := vacation.NewServiceWithOutbox(db, repo, employees, outbox)

	return &vacationServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		employees: employees,
		outbox:    outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// futureDate keeps fixtures ahead of the lead-time check regardless of
// when the suite runs.
func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestVacationService_Create(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := vacation.CreateVacationRequest{
			StartDate: futureDate(10),
			EndDate:   futureDate(14),
		}

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			assert.Equal(t, authorID, id)
			return &employee.Employee{
				ID:                    uuid.MustParse(authorID),
				FullName:              "Thabo Nkosi",
				RemainingVacationDays: 20,
			}, nil
		}
		deps.employees.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			t.Error("balance must not change when a request is created")
			return nil
		}
		deps.repo.createFn = func(ctx context.Context, vr *vacation.VacationRequest) error {
			assert.Equal(t, uuid.MustParse(authorID), vr.AuthorID)
			assert.Equal(t, 5, vr.TotalDays)
			assert.Equal(t, vacation.StatusPending, vr.Status)
			assert.Nil(t, vr.ResolvedByID)
			return nil
		}

		resp, err := deps.service.Create(ctx, authorID, req)

		assert.NoError(t, err)
		assert.Equal(t, authorID, resp.AuthorID)
		assert.Equal(t, req.StartDate, resp.StartDate)
		assert.Equal(t, req.EndDate, resp.EndDate)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, vacation.StatusPending, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success queues created event", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(authorID), RemainingVacationDays: 20}, nil
		}

		_, err := deps.service.Create(ctx, authorID, vacation.CreateVacationRequest{
			StartDate: futureDate(10),
			EndDate:   futureDate(12),
		})

		assert.NoError(t, err)
		assert.Len(t, deps.outbox.events, 1)
		assert.Equal(t, events.VacationRequestCreatedTopic, deps.outbox.events[0].Topic)
		assert.Equal(t, "vacation_request", deps.outbox.events[0].AggregateType)
		assert.Equal(t, kafka.OutboxStatusPending, deps.outbox.events[0].Status)
	})

	t.Run("negative overlapping request", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		start, _ := time.Parse("2006-01-02", futureDate(12))
		end, _ := time.Parse("2006-01-02", futureDate(16))

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(authorID), RemainingVacationDays: 20}, nil
		}
		deps.repo.findActiveByAuthorFn = func(ctx context.Context, aid string) ([]vacation.VacationRequest, error) {
			assert.Equal(t, authorID, aid)
			return []vacation.VacationRequest{
				{
					ID:        uuid.New(),
					AuthorID:  uuid.MustParse(authorID),
					StartDate: start,
					EndDate:   end,
					Status:    vacation.StatusPending,
				},
			}, nil
		}
		deps.repo.createFn = func(ctx context.Context, vr *vacation.VacationRequest) error {
			t.Error("overlapping request must not be persisted")
			return nil
		}

		_, err := deps.service.Create(ctx, authorID, vacation.CreateVacationRequest{
			StartDate: futureDate(10),
			EndDate:   futureDate(14),
		})

		assert.ErrorIs(t, err, vacationerrors.ErrRequestOverlap)
		assert.Empty(t, deps.outbox.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative rejected requests do not block", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(authorID), RemainingVacationDays: 20}, nil
		}
		// the active lookup excludes rejected rows, so it comes back empty
		deps.repo.findActiveByAuthorFn = func(ctx context.Context, aid string) ([]vacation.VacationRequest, error) {
			return nil, nil
		}

		_, err := deps.service.Create(ctx, authorID, vacation.CreateVacationRequest{
			StartDate: futureDate(10),
			EndDate:   futureDate(14),
		})

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative insufficient balance", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(authorID), RemainingVacationDays: 3}, nil
		}
		deps.repo.createFn = func(ctx context.Context, vr *vacation.VacationRequest) error {
			t.Error("request exceeding the balance must not be persisted")
			return nil
		}

		_, err := deps.service.Create(ctx, authorID, vacation.CreateVacationRequest{
			StartDate: futureDate(10),
			EndDate:   futureDate(14),
		})

		assert.ErrorIs(t, err, vacationerrors.ErrInsufficientDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative author not found", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Create(ctx, authorID, vacation.CreateVacationRequest{
			StartDate: futureDate(10),
			EndDate:   futureDate(14),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid author id", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, "not-a-uuid", vacation.CreateVacationRequest{
			StartDate: futureDate(10),
			EndDate:   futureDate(14),
		})

		assert.ErrorIs(t, err, vacationerrors.ErrInvalidEmployeeID)
	})

	t.Run("negative validation failures skip the transaction", func(t *testing.T) {
		tests := []struct {
			name    string
			start   string
			end     string
			wantErr error
		}{
			{"missing dates", "", "", vacationerrors.ErrMissingDates},
			{"malformed date", "10-05-2027", futureDate(14), vacationerrors.ErrInvalidDateFormat},
			{"end before start", futureDate(14), futureDate(10), vacationerrors.ErrStartAfterEnd},
			{"single day", futureDate(10), futureDate(10), vacationerrors.ErrMinimumDuration},
			{"starts today", futureDate(0), futureDate(4), vacationerrors.ErrLeadTime},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				deps := setupVacationServiceTest(t)
				defer deps.db.Close()

				_, err := deps.service.Create(ctx, authorID, vacation.CreateVacationRequest{
					StartDate: tt.start,
					EndDate:   tt.end,
				})

				assert.ErrorIs(t, err, tt.wantErr)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			})
		}
	})
}

func TestVacationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New().String()
	managerID := uuid.New().String()
	authorID := uuid.New().String()

	pendingRequest := func() *vacation.VacationRequest {
		return &vacation.VacationRequest{
			ID:        uuid.MustParse(requestID),
			AuthorID:  uuid.MustParse(authorID),
			StartDate: day(2027, 3, 1),
			EndDate:   day(2027, 3, 5),
			TotalDays: 5,
			Status:    vacation.StatusPending,
		}
	}

	stubEmployees := func(deps *vacationServiceDeps, isManager bool, balance int) {
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			switch id {
			case managerID:
				return &employee.Employee{ID: uuid.MustParse(managerID), IsManager: isManager}, nil
			case authorID:
				return &employee.Employee{ID: uuid.MustParse(authorID), RemainingVacationDays: balance}, nil
			}
			return nil, gorm.ErrRecordNotFound
		}
	}

	t.Run("approve success debits balance", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		stubEmployees(deps, true, 20)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*vacation.VacationRequest, error) {
			assert.Equal(t, requestID, id)
			return pendingRequest(), nil
		}

		var debited *employee.Employee
		deps.employees.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			debited = empl
			return nil
		}
		var saved *vacation.VacationRequest
		deps.repo.updateFn = func(ctx context.Context, vr *vacation.VacationRequest) error {
			saved = vr
			return nil
		}

		resp, err := deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    vacation.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, vacation.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ResolvedByID)
		assert.Equal(t, managerID, *resp.ResolvedByID)
		assert.NotNil(t, resp.ResolvedAt)

		assert.NotNil(t, debited)
		assert.Equal(t, 15, debited.RemainingVacationDays)
		assert.NotNil(t, saved)
		assert.Equal(t, vacation.StatusApproved, saved.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("approve queues decided event", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		stubEmployees(deps, true, 20)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*vacation.VacationRequest, error) {
			return pendingRequest(), nil
		}

		_, err := deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    vacation.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Len(t, deps.outbox.events, 1)
		assert.Equal(t, events.VacationRequestDecidedTopic, deps.outbox.events[0].Topic)
		assert.Equal(t, requestID, deps.outbox.events[0].AggregateID)
	})

	t.Run("negative approve with insufficient balance", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		stubEmployees(deps, true, 3)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*vacation.VacationRequest, error) {
			return pendingRequest(), nil
		}
		deps.employees.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			t.Error("balance must not change when approval fails")
			return nil
		}
		deps.repo.updateFn = func(ctx context.Context, vr *vacation.VacationRequest) error {
			t.Error("status must not change when approval fails")
			return nil
		}

		_, err := deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    vacation.StatusApproved,
		})

		assert.ErrorIs(t, err, vacationerrors.ErrInsufficientDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative approve already approved request", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		stubEmployees(deps, true, 20)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*vacation.VacationRequest, error) {
			vr := pendingRequest()
			vr.Status = vacation.StatusApproved
			return vr, nil
		}
		deps.employees.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			t.Error("approving twice must not debit twice")
			return nil
		}

		_, err := deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    vacation.StatusApproved,
		})

		assert.ErrorIs(t, err, vacationerrors.ErrOnlyPendingApprovable)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject pending request", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		stubEmployees(deps, true, 20)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*vacation.VacationRequest, error) {
			return pendingRequest(), nil
		}
		deps.employees.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			t.Error("rejection must not touch the balance")
			return nil
		}

		resp, err := deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    vacation.StatusRejected,
		})

		assert.NoError(t, err)
		assert.Equal(t, vacation.StatusRejected, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject approved request without refund", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		stubEmployees(deps, true, 15)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*vacation.VacationRequest, error) {
			vr := pendingRequest()
			vr.Status = vacation.StatusApproved
			return vr, nil
		}
		deps.employees.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			t.Error("rejecting an approved request must not refund the debit")
			return nil
		}

		resp, err := deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    vacation.StatusRejected,
		})

		assert.NoError(t, err)
		assert.Equal(t, vacation.StatusRejected, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative actor is not a manager", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		stubEmployees(deps, false, 20)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*vacation.VacationRequest, error) {
			return pendingRequest(), nil
		}

		_, err := deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    vacation.StatusApproved,
		})

		assert.ErrorIs(t, err, vacationerrors.ErrNotManager)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative request not found", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*vacation.VacationRequest, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    vacation.StatusApproved,
		})

		assert.ErrorIs(t, err, vacationerrors.ErrRequestNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown status", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    "CANCELLED",
		})

		assert.ErrorIs(t, err, vacationerrors.ErrInvalidStatus)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid ids", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.UpdateStatus(ctx, "123", vacation.UpdateStatusRequest{
			ManagerID: managerID,
			Status:    vacation.StatusApproved,
		})
		assert.ErrorIs(t, err, vacationerrors.ErrInvalidRequestID)

		_, err = deps.service.UpdateStatus(ctx, requestID, vacation.UpdateStatusRequest{
			ManagerID: "123",
			Status:    vacation.StatusApproved,
		})
		assert.ErrorIs(t, err, vacationerrors.ErrInvalidEmployeeID)
	})
}

func TestVacationService_GetByEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success without status filter", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(employeeID)}, nil
		}
		deps.repo.findByAuthorFn = func(ctx context.Context, aid string) ([]vacation.VacationRequest, error) {
			assert.Equal(t, employeeID, aid)
			return []vacation.VacationRequest{
				{ID: uuid.New(), AuthorID: uuid.MustParse(employeeID), Status: vacation.StatusPending},
				{ID: uuid.New(), AuthorID: uuid.MustParse(employeeID), Status: vacation.StatusRejected},
			}, nil
		}

		resp, err := deps.service.GetByEmployee(ctx, employeeID, "")

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("success with status filter", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(employeeID)}, nil
		}
		deps.repo.findByAuthorStatusFn = func(ctx context.Context, aid, status string) ([]vacation.VacationRequest, error) {
			assert.Equal(t, vacation.StatusApproved, status)
			return []vacation.VacationRequest{
				{ID: uuid.New(), AuthorID: uuid.MustParse(employeeID), Status: vacation.StatusApproved},
			}, nil
		}

		resp, err := deps.service.GetByEmployee(ctx, employeeID, vacation.StatusApproved)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, vacation.StatusApproved, resp[0].Status)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByEmployee(ctx, employeeID, "")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByEmployee(ctx, "abc", "")

		assert.ErrorIs(t, err, vacationerrors.ErrInvalidEmployeeID)
	})
}

func TestVacationService_GetPendingForManager(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(managerID), IsManager: true}, nil
		}
		deps.repo.findByStatusFn = func(ctx context.Context, status string) ([]vacation.VacationRequest, error) {
			assert.Equal(t, vacation.StatusPending, status)
			return []vacation.VacationRequest{
				{ID: uuid.New(), AuthorID: uuid.New(), Status: vacation.StatusPending},
			}, nil
		}

		resp, err := deps.service.GetPendingForManager(ctx, managerID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("negative actor is not a manager", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(managerID), IsManager: false}, nil
		}

		_, err := deps.service.GetPendingForManager(ctx, managerID)

		assert.ErrorIs(t, err, vacationerrors.ErrNotManager)
	})
}

func TestVacationService_FindOverlapping(t *testing.T) {
	ctx := context.Background()

	t.Run("success filters approved requests", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		inside := uuid.New()
		touching := uuid.New()
		deps.repo.findByStatusFn = func(ctx context.Context, status string) ([]vacation.VacationRequest, error) {
			assert.Equal(t, vacation.StatusApproved, status)
			return []vacation.VacationRequest{
				{ID: inside, AuthorID: uuid.New(), StartDate: day(2027, 3, 2), EndDate: day(2027, 3, 4), Status: vacation.StatusApproved},
				{ID: touching, AuthorID: uuid.New(), StartDate: day(2027, 3, 5), EndDate: day(2027, 3, 9), Status: vacation.StatusApproved},
				{ID: uuid.New(), AuthorID: uuid.New(), StartDate: day(2027, 3, 20), EndDate: day(2027, 3, 25), Status: vacation.StatusApproved},
			}, nil
		}

		resp, err := deps.service.FindOverlapping(ctx, "2027-03-01", "2027-03-05")

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, inside.String(), resp[0].ID)
		assert.Equal(t, touching.String(), resp[1].ID)
	})

	t.Run("negative inverted range", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.FindOverlapping(ctx, "2027-03-05", "2027-03-01")

		assert.ErrorIs(t, err, vacationerrors.ErrStartAfterEnd)
	})

	t.Run("negative missing bounds", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.FindOverlapping(ctx, "2027-03-01", "")

		assert.ErrorIs(t, err, vacationerrors.ErrMissingDates)
	})
}

func TestVacationService_RemainingDays(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.MustParse(employeeID), RemainingVacationDays: 12}, nil
		}

		resp, err := deps.service.RemainingDays(ctx, employeeID)

		assert.NoError(t, err)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, 12, resp.RemainingDays)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.RemainingDays(ctx, employeeID)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestVacationService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("negative not found", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, uuid.New().String())

		assert.ErrorIs(t, err, vacationerrors.ErrRequestNotFound)
	})
}

func TestVacationService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("status filter delegates to the store", func(t *testing.T) {
		deps := setupVacationServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByStatusFn = func(ctx context.Context, status string) ([]vacation.VacationRequest, error) {
			assert.Equal(t, vacation.StatusRejected, status)
			return []vacation.VacationRequest{
				{ID: uuid.New(), AuthorID: uuid.New(), Status: vacation.StatusRejected},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx, vacation.StatusRejected)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}
