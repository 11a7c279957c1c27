package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRidersQueryHandler reads riders straight from the users table, ordered
// by name and then email.
type ListRidersQueryHandler struct {
	db   *gorm.DB
	gate services.AccessGate
}

func NewListRidersQueryHandler(db *gorm.DB) ListRidersQueryHandler {
	return ListRidersQueryHandler{db: db, gate: services.NewAccessGate()}
}

func (h ListRidersQueryHandler) Handle(ctx context.Context, query ListRidersQuery) ([]ListRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(query.Actor(), account.RoleAdmin); err != nil {
		return nil, err
	}

	riders := make([]ListRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name,
			phone
		FROM users
		WHERE role = ?
		ORDER BY name, email
	`, account.RoleRider.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rider ListRidersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &rider.Email, &rider.Name, &rider.Phone); err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		rider.ID = riderID
		riders = append(riders, rider)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
