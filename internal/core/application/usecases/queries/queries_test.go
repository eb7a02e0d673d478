package queries_test

import (
	"testing"
	"time"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/queries"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComputePromiseQuery_Valid(t *testing.T) {
	query, err := queries.NewComputePromiseQuery(order.Express,
		mustPincode(t, "110042"), mustPincode(t, "400001"), testPlacedAt)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Express, query.Profile().OrderType())
}

func TestNewComputePromiseQuery_InvalidProfile(t *testing.T) {
	_, err := queries.NewComputePromiseQuery(order.OrderTypeUnknown,
		mustPincode(t, "110042"), mustPincode(t, "400001"), testPlacedAt)
	require.Error(t, err)

	_, err = queries.NewComputePromiseQuery(order.Standard,
		mustPincode(t, "110042"), mustPincode(t, "400001"), time.Time{})
	require.Error(t, err)
}

func TestComputePromiseQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ComputePromiseQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrComputePromiseQueryIsNotConstructed)
}

func TestNewSelectPartnerQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewSelectPartnerQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewSelectPartnerQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewSelectPartnerQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestSelectPartnerQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.SelectPartnerQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrSelectPartnerQueryIsNotConstructed)
}

func TestNewTrackComplianceQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewTrackComplianceQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
	assert.True(t, query.AsOf().IsZero())
}

func TestNewTrackComplianceQueryAsOf_KeepsInstant(t *testing.T) {
	asOf := testPlacedAt.Add(6 * time.Hour)
	query, err := queries.NewTrackComplianceQueryAsOf(kernel.NewUUID(), asOf)
	require.NoError(t, err)
	assert.True(t, query.AsOf().Equal(asOf))
}

func TestTrackComplianceQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.TrackComplianceQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackComplianceQueryIsNotConstructed)
}

func TestNewGetUndeliveredOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUndeliveredOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUndeliveredOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUndeliveredOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUndeliveredOrdersQueryIsNotConstructed)
}
