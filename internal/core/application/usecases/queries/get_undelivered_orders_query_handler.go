package queries

import (
	"context"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUndeliveredOrdersQueryHandler reads the in-flight order list
// straight from the database, bypassing the aggregate repositories.
//
// Example:
//
//	handler := NewGetUndeliveredOrdersQueryHandler(db)
//	rows, err := handler.Handle(ctx, NewGetUndeliveredOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders in flight\n", len(rows))
type GetUndeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredOrdersQueryHandler creates a handler for in-flight
// order queries. Requires a GORM database connection for query execution.
func NewGetUndeliveredOrdersQueryHandler(db *gorm.DB) GetUndeliveredOrdersQueryHandler {
	return GetUndeliveredOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all undelivered orders together
// with their promised delivery dates. Results are sorted by placement
// time so the oldest in-flight order comes first.
func (h GetUndeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUndeliveredOrdersQuery,
) ([]GetUndeliveredOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUndeliveredOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.destination_pincode,
			o.stage,
			o.placed_at,
			p.promised_delivery_date
		FROM orders o
		LEFT JOIN promises p ON p.order_id = o.id
		WHERE o.stage != ?
		ORDER BY o.placed_at
	`, order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUndeliveredOrdersQueryResponse
		var id uuid.UUID
		var destinationPincode, stage string

		err = rows.Scan(
			&id,
			&destinationPincode,
			&stage,
			&orderResp.PlacedAt,
			&orderResp.PromisedDeliveryDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		pincode, pinErr := kernel.NewPincode(destinationPincode)
		if pinErr != nil {
			return nil, pinErr
		}
		orderResp.DestinationPincode = pincode

		orderStage, stageErr := order.StageFromString(stage)
		if stageErr != nil {
			return nil, stageErr
		}
		orderResp.Stage = orderStage

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
