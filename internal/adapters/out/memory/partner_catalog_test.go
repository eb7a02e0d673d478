package memory_test

import (
	"context"
	"testing"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/adapters/out/memory"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/kernel"
	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/domain/model/partner"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pin, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pin
}

func mustRange(t *testing.T, from, to string) kernel.PincodeRange {
	t.Helper()
	r, err := kernel.NewPincodeRange(mustPincode(t, from), mustPincode(t, to))
	require.NoError(t, err)
	return r
}

func buildPartner(t *testing.T, code string, pickup, delivery []kernel.PincodeRange) *partner.Partner {
	t.Helper()
	card, err := partner.NewRateCard(
		decimal.NewFromInt(30), decimal.NewFromInt(10), decimal.Zero, decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)
	p, err := partner.NewPartner(code, code+" Logistics", pickup, delivery, card, 90, nil, 4)
	require.NoError(t, err)
	return p
}

func TestPartnerCatalog_GetServiceable(t *testing.T) {
	origin := "110042"
	destination := "400001"
	allIndia := []kernel.PincodeRange{mustRange(t, "100000", "999999")}

	t.Run("should filter partners by lane coverage", func(t *testing.T) {
		covering := buildPartner(t, "BDART", nil, allIndia)
		noPickup := buildPartner(t, "NOPICK",
			[]kernel.PincodeRange{mustRange(t, "500000", "599999")}, allIndia)
		noDelivery := buildPartner(t, "NODELIV", nil,
			[]kernel.PincodeRange{mustRange(t, "700000", "799999")})

		catalog := memory.NewPartnerCatalog(covering, noPickup, noDelivery)

		serviceable, err := catalog.GetServiceable(context.Background(),
			mustPincode(t, origin), mustPincode(t, destination))

		require.NoError(t, err)
		require.Len(t, serviceable, 1)
		assert.Equal(t, "BDART", serviceable[0].Code())
	})

	t.Run("should order matches by partner code", func(t *testing.T) {
		catalog := memory.NewPartnerCatalog(
			buildPartner(t, "ZEBRA", nil, allIndia),
			buildPartner(t, "ALPHA", nil, allIndia),
		)

		serviceable, err := catalog.GetServiceable(context.Background(),
			mustPincode(t, origin), mustPincode(t, destination))

		require.NoError(t, err)
		require.Len(t, serviceable, 2)
		assert.Equal(t, "ALPHA", serviceable[0].Code())
		assert.Equal(t, "ZEBRA", serviceable[1].Code())
	})

	t.Run("should include partners added after construction", func(t *testing.T) {
		catalog := memory.NewPartnerCatalog()
		require.NoError(t, catalog.Add(buildPartner(t, "LATE", nil, allIndia)))

		serviceable, err := catalog.GetServiceable(context.Background(),
			mustPincode(t, origin), mustPincode(t, destination))

		require.NoError(t, err)
		assert.Len(t, serviceable, 1)
	})

	t.Run("should reject nil partner", func(t *testing.T) {
		catalog := memory.NewPartnerCatalog()

		require.Error(t, catalog.Add(nil))
	})

	t.Run("should return empty slice when no partner covers the lane", func(t *testing.T) {
		catalog := memory.NewPartnerCatalog(
			buildPartner(t, "SOUTH", nil,
				[]kernel.PincodeRange{mustRange(t, "500000", "599999")}),
		)

		serviceable, err := catalog.GetServiceable(context.Background(),
			mustPincode(t, origin), mustPincode(t, destination))

		require.NoError(t, err)
		assert.Empty(t, serviceable)
	})
}
