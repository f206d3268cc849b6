package queries_test

import (
	"testing"

	"lytefood/internal/core/application/usecases/queries"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQuery(7)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(7), query.OrderID())
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetMyOrdersQuery_InvalidUser(t *testing.T) {
	_, err := queries.NewGetMyOrdersQuery(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetOrdersQuery_RejectsUnknownStatus(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(order.Status("inconnu"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetOrdersQuery_NoFilter(t *testing.T) {
	query, err := queries.NewGetOrdersQuery()
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Statuses())
}

func TestNewGetLivreurOrdersQuery_RejectsUnknownScope(t *testing.T) {
	_, err := queries.NewGetLivreurOrdersQuery(3, queries.LivreurOrdersScope("all"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetLivreurOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetLivreurOrdersQuery(3, queries.ScopeHistory)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, queries.ScopeHistory, query.Scope())
}

func TestGetAvailableOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAvailableOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAvailableOrdersQueryIsNotConstructed)
}

func TestNewGetPickupOrdersQuery_InvalidLivreur(t *testing.T) {
	_, err := queries.NewGetPickupOrdersQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetPickupOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPickupOrdersQuery(3)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(3), query.LivreurID())
}

func TestGetDashboardStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDashboardStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDashboardStatsQueryIsNotConstructed)
}

func TestGetUsersQuery_Constructed(t *testing.T) {
	require.NoError(t, queries.NewGetUsersQuery().Validate())
}

func TestGetMenusQuery_CategoryFilterOptional(t *testing.T) {
	query := queries.NewGetMenusQuery(0)
	require.NoError(t, query.Validate())
	assert.Zero(t, query.CategoryID())
}

func TestGetSettingsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSettingsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSettingsQueryIsNotConstructed)
}
