package queries

import (
	"errors"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/pkg/guard"
)

var ErrSelectPartnerQueryIsNotConstructed = errors.New(
	"SelectPartnerQuery must be created via NewSelectPartnerQuery constructor",
)

// SelectPartnerQuery asks for a ranked partner evaluation of a stored
// order against its stored promise. Re-running the query after rate card
// or reliability updates yields a fresh ranking; nothing is written.
type SelectPartnerQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectPartnerQuery creates a partner selection query for the order
// with the given identifier.
func NewSelectPartnerQuery(orderID kernel.UUID) (SelectPartnerQuery, error) {
	if err := orderID.Validate(); err != nil {
		return SelectPartnerQuery{}, err
	}
	return SelectPartnerQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSelectPartnerQueryIsNotConstructed if validation fails.
func (q SelectPartnerQuery) Validate() error {
	return q.guard.Validate(ErrSelectPartnerQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being evaluated.
func (q SelectPartnerQuery) OrderID() kernel.UUID {
	return q.orderID
}
