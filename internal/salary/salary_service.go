package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"glamist-payroll/internal/events"
	"glamist-payroll/internal/messaging/kafka"
	salaryerrors "glamist-payroll/internal/salary/errors"
	"glamist-payroll/internal/shared/contextutil"
	"glamist-payroll/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context) ([]SalaryResponse, error)
	GetByID(ctx context.Context, id string) (SalaryResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, id string) error
	Dashboard(ctx context.Context) (DashboardResponse, error)
	ProcessPayments(ctx context.Context, req ProcessPaymentsRequest) (int64, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateSalaryRequest,
) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary record requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create salary begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	paymentDate, err := parsePaymentDate(req.PaymentDate)
	if err != nil {
		return SalaryResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusUnpaid
	}

	record := &SalaryRecord{
		ID:               uuid.New(),
		EmployeeID:       req.EmployeeID,
		EmployeeName:     req.EmployeeName,
		SalaryAmount:     req.SalaryAmount,
		PaymentFrequency: req.PaymentFrequency,
		PaymentDate:      paymentDate,
		Bonuses:          req.Bonuses,
		Deductions:       req.Deductions,
		NetPay:           NetPay(req.SalaryAmount, req.Bonuses, req.Deductions),
		Status:           status,
		Notes:            req.Notes,
	}

	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("create salary persist failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create salary commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("create salary success",
		zap.String("request_id", rid),
		zap.String("salary_id", record.ID.String()),
	)

	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all salary records failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryResponse, error) {
	// Malformed id dan record yang tidak ada harus bisa dibedakan: cek
	// bentuk id SEBELUM query.
	if _, err := uuid.Parse(id); err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidSalaryID
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*record), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateSalaryRequest,
) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidSalaryID
	}

	paymentDate, err := parsePaymentDate(req.PaymentDate)
	if err != nil {
		return SalaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	// Full replacement: setiap field mutable diganti nilai payload, dan
	// netPay dihitung ulang dari nilai BARU.
	record.EmployeeID = req.EmployeeID
	record.EmployeeName = req.EmployeeName
	record.SalaryAmount = req.SalaryAmount
	record.PaymentFrequency = req.PaymentFrequency
	record.PaymentDate = paymentDate
	record.Bonuses = req.Bonuses
	record.Deductions = req.Deductions
	record.NetPay = NetPay(req.SalaryAmount, req.Bonuses, req.Deductions)
	record.Status = req.Status
	record.Notes = req.Notes

	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("update salary persist failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	s.logger.Info("update salary success",
		zap.String("request_id", rid),
		zap.String("salary_id", id),
	)

	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return salaryerrors.ErrInvalidSalaryID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Fetch dulu supaya delete pada id yang tidak ada menjadi NotFound.
	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Dashboard(ctx context.Context) (DashboardResponse, error) {
	// Singleflight meruntuhkan perhitungan paralel yang identik; hasil
	// tetap dihitung on demand, tidak pernah di-cache.
	v, err, _ := s.sf.Do("dashboard", func() (interface{}, error) {
		buckets, err := s.repo.AggregateByMonth(ctx)
		if err != nil {
			return DashboardResponse{}, mapRepositoryError(err)
		}

		resp := DashboardResponse{
			SalaryTrend: make([]TrendPoint, 0, len(buckets)),
		}
		for _, b := range buckets {
			resp.TotalPayroll += b.Total
			resp.PendingPayments += b.UnpaidCount
			resp.SalaryTrend = append(resp.SalaryTrend, TrendPoint{
				Year:  b.Year,
				Month: b.Month,
				Total: b.Total,
			})
		}

		return resp, nil
	})

	if err != nil {
		s.logger.Error("dashboard aggregation failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	return v.(DashboardResponse), nil
}

func (s *service) ProcessPayments(
	ctx context.Context,
	req ProcessPaymentsRequest,
) (int64, error) {
	rid := contextutil.GetRequestID(ctx)

	// Satu-satunya validasi sebelum menyentuh store.
	if len(req.IDs) == 0 {
		return 0, salaryerrors.ErrEmptySelection
	}

	// Id yang malformed diperlakukan sama seperti id yang tidak resolve:
	// dilewati tanpa error.
	validIDs := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		validIDs = append(validIDs, id)
	}
	if len(validIDs) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	modified, err := qtx.MarkPaid(ctx, validIDs)
	if err != nil {
		s.logger.Error("process payments failed", zap.String("request_id", rid), zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	if s.outbox != nil && modified > 0 {
		batchNumber := ""
		if s.counter != nil {
			nextVal, err := s.counter.GetNextValue(ctx, counter.CounterPaymentBatch)
			if err != nil {
				s.logger.Error("generate payment batch number failed", zap.Error(err))
				return 0, err
			}
			batchNumber = fmt.Sprintf("PAY-%06d", nextVal)
		}

		event := events.SalaryPaymentsProcessedEvent{
			EventType:     "salary_payments_processed",
			BatchNumber:   batchNumber,
			RequestID:     rid,
			SalaryIDs:     validIDs,
			ModifiedCount: modified,
			OccurredAt:    time.Now().UTC(),
		}

		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal payments event failed", zap.String("request_id", rid), zap.Error(err))
			return 0, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "salary_batch",
			AggregateID:   batchNumber,
			EventType:     event.EventType,
			Topic:         events.SalaryPaymentsProcessedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("process payments outbox persist failed", zap.Error(err))
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("process payments success",
		zap.String("request_id", rid),
		zap.Int64("modified_count", modified),
		zap.Int("requested", len(req.IDs)),
	)

	return modified, nil
}

// parsePaymentDate accepts YYYY-MM-DD and falls back to RFC3339 for
// clients that send full timestamps.
func parsePaymentDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, salaryerrors.ErrInvalidPaymentDate
	}
	return t, nil
}

func mapToResponse(record SalaryRecord) SalaryResponse {
	return SalaryResponse{
		ID:               record.ID.String(),
		EmployeeID:       record.EmployeeID,
		EmployeeName:     record.EmployeeName,
		SalaryAmount:     record.SalaryAmount,
		PaymentFrequency: record.PaymentFrequency,
		PaymentDate:      record.PaymentDate.Format("2006-01-02"),
		Bonuses:          record.Bonuses,
		Deductions:       record.Deductions,
		NetPay:           record.NetPay,
		Status:           record.Status,
		Notes:            record.Notes,
		CreatedAt:        record.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(records []SalaryRecord) []SalaryResponse {
	res := make([]SalaryResponse, len(records))
	for i, record := range records {
		res[i] = mapToResponse(record)
	}
	return res
}
