package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListApprovedEmailsQueryHandler returns active entries first, then newest first.
type ListApprovedEmailsQueryHandler struct {
	db   *gorm.DB
	gate services.AccessGate
}

func NewListApprovedEmailsQueryHandler(db *gorm.DB) ListApprovedEmailsQueryHandler {
	return ListApprovedEmailsQueryHandler{db: db, gate: services.NewAccessGate()}
}

func (h ListApprovedEmailsQueryHandler) Handle(
	ctx context.Context,
	query ListApprovedEmailsQuery,
) ([]ListApprovedEmailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(query.Actor(), account.RoleAdmin); err != nil {
		return nil, err
	}

	approvals := make([]ListApprovedEmailsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			role,
			is_active,
			added_by,
			created_at
		FROM approved_emails
		ORDER BY is_active DESC, created_at DESC, email
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			approval  ListApprovedEmailsQueryResponse
			id        uuid.UUID
			addedBy   uuid.NullUUID
			role      string
			createdAt time.Time
		)

		if err = rows.Scan(&id, &approval.Email, &role, &approval.IsActive, &addedBy, &createdAt); err != nil {
			return nil, err
		}

		if approval.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if approval.Role, err = account.ParseRole(role); err != nil {
			return nil, err
		}
		if addedBy.Valid {
			adminID, idErr := kernel.UUIDFromGoogle(addedBy.UUID)
			if idErr != nil {
				return nil, idErr
			}
			approval.AddedBy = &adminID
		}
		approval.CreatedAt = createdAt.UTC()
		approvals = append(approvals, approval)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return approvals, nil
}
