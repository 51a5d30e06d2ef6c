package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/servicerequest"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type serviceRequestRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewServiceRequestRepository(db *postgres.DB, logger *logger.Logger) servicerequest.Repository {
	return &serviceRequestRepository{db: db, logger: logger}
}

func (r *serviceRequestRepository) Create(ctx context.Context, req *servicerequest.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (
			id, request_number, applicant_name, nik, phone, service_type, request_status,
			notes, documents, user_id, operator_id, completed_at,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :request_number, :applicant_name, :nik, :phone, :service_type, :request_status,
			:notes, :documents, :user_id, :operator_id, :completed_at,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating service request",
		"request_id", req.ID,
		"request_number", req.RequestNumber,
	)

	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return markWriteError(err, "Failed to create service request")
	}
	return nil
}

func (r *serviceRequestRepository) Get(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
	return r.getOne(ctx,
		`SELECT * FROM service_requests WHERE id = :id AND status != :deleted`,
		map[string]interface{}{"id": id, "deleted": types.StatusDeleted},
	)
}

func (r *serviceRequestRepository) GetByRequestNumber(ctx context.Context, requestNumber string) (*servicerequest.ServiceRequest, error) {
	return r.getOne(ctx,
		`SELECT * FROM service_requests WHERE request_number = :request_number AND status != :deleted`,
		map[string]interface{}{"request_number": requestNumber, "deleted": types.StatusDeleted},
	)
}

func (r *serviceRequestRepository) getOne(ctx context.Context, query string, args map[string]interface{}) (*servicerequest.ServiceRequest, error) {
	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch service request").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("service request not found").
			WithHint("No service request matches the given reference").
			Mark(ierr.ErrNotFound)
	}

	var req servicerequest.ServiceRequest
	if err := rows.StructScan(&req); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan service request").
			Mark(ierr.ErrDatabase)
	}
	return &req, nil
}

func (r *serviceRequestRepository) List(ctx context.Context, filter *types.ServiceRequestFilter) ([]*servicerequest.ServiceRequest, error) {
	where, args := serviceRequestWhere(filter)
	query := fmt.Sprintf(
		`SELECT * FROM service_requests WHERE %s ORDER BY created_at DESC LIMIT :limit OFFSET :offset`,
		where,
	)
	args["limit"] = filter.GetLimit()
	args["offset"] = filter.GetOffset()

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list service requests").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var requests []*servicerequest.ServiceRequest
	for rows.Next() {
		var req servicerequest.ServiceRequest
		if err := rows.StructScan(&req); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan service request").
				Mark(ierr.ErrDatabase)
		}
		requests = append(requests, &req)
	}
	return requests, nil
}

func (r *serviceRequestRepository) Count(ctx context.Context, filter *types.ServiceRequestFilter) (int, error) {
	where, args := serviceRequestWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM service_requests WHERE %s`, where)

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count service requests").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *serviceRequestRepository) Update(ctx context.Context, req *servicerequest.ServiceRequest) error {
	query := `
		UPDATE service_requests SET
			request_status = :request_status,
			notes = :notes,
			documents = :documents,
			operator_id = :operator_id,
			completed_at = :completed_at,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	r.logger.Debugw("updating service request",
		"request_id", req.ID,
		"request_status", req.RequestStatus,
	)

	result, err := r.db.NamedExecContext(ctx, query, req)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update service request").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(result, "service request")
}

func serviceRequestWhere(filter *types.ServiceRequestFilter) (string, map[string]interface{}) {
	clauses := []string{"status != :deleted"}
	args := map[string]interface{}{"deleted": types.StatusDeleted}

	if filter == nil {
		return strings.Join(clauses, " AND "), args
	}

	if len(filter.RequestStatuses) > 0 {
		// sqlx named queries have no slice expansion for maps, so build
		// one placeholder per status
		placeholders := make([]string, len(filter.RequestStatuses))
		for i, status := range filter.RequestStatuses {
			key := fmt.Sprintf("request_status_%d", i)
			placeholders[i] = ":" + key
			args[key] = status
		}
		clauses = append(clauses, fmt.Sprintf("request_status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.ServiceType != "" {
		clauses = append(clauses, "service_type = :service_type")
		args["service_type"] = filter.ServiceType
	}
	if filter.UserID != "" {
		clauses = append(clauses, "user_id = :user_id")
		args["user_id"] = filter.UserID
	}
	if filter.Search != "" {
		clauses = append(clauses, "(applicant_name ILIKE :search OR request_number ILIKE :search)")
		args["search"] = "%" + filter.Search + "%"
	}
	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil {
			clauses = append(clauses, "created_at >= :start_time")
			args["start_time"] = filter.StartTime
		}
		if filter.EndTime != nil {
			clauses = append(clauses, "created_at <= :end_time")
			args["end_time"] = filter.EndTime
		}
	}

	return strings.Join(clauses, " AND "), args
}

func requireRowsAffected(result sql.Result, entity string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to update %s", entity).
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewErrorf("%s not found", entity).
			WithHintf("No %s matches the given identifier", entity).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
