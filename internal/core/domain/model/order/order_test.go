package order_test

import (
	"testing"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	customerID    = int64(7)
	customerEmail = "alice@example.com"
	livreurID     = int64(42)
	livreurEmail  = "marc@example.com"
)

func price(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(1, 2, price(t, "10.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(customerID, []order.LineItem{item},
		"12 rue des Lilas, Cotonou", order.EnAttente, customerEmail)
	require.NoError(t, err)
	return o
}

// orderAt drives a fresh order to the wanted status through the primitive,
// then drops the accumulated history so tests can assert on their own entries.
func orderAt(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	if status != order.EnAttente {
		require.NoError(t, o.ChangeStatus(status, "test", "test"))
	}
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes tax and total from line items", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, "20.00", o.Subtotal().String())
		assert.Equal(t, "3.60", o.TVAAmount().String())
		assert.Equal(t, "23.60", o.Total().String())
		assert.Equal(t, order.EnAttente, o.Status())
		assert.Nil(t, o.LivreurID())
		assert.Zero(t, o.ID())
		require.NoError(t, o.Validate())
	})

	t.Run("records a single creation history entry", func(t *testing.T) {
		o := newTestOrder(t)

		history := o.PendingHistory()
		require.Len(t, history, 1)
		assert.Equal(t, order.HistoryInitial, history[0].Previous())
		assert.Equal(t, order.EnAttente, history[0].Next())
		assert.Equal(t, customerEmail, history[0].Actor())
		assert.Equal(t, order.RoleClient, history[0].Role())
		assert.False(t, history[0].OccurredAt().IsZero())
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := order.NewOrder(customerID, nil,
			"12 rue des Lilas, Cotonou", order.EnAttente, customerEmail)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects short and overlong addresses", func(t *testing.T) {
		item, err := order.NewLineItem(1, 1, price(t, "5.00"))
		require.NoError(t, err)

		_, err = order.NewOrder(customerID, []order.LineItem{item}, "rue",
			order.EnAttente, customerEmail)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		long := make([]rune, 201)
		for i := range long {
			long[i] = 'a'
		}
		_, err = order.NewOrder(customerID, []order.LineItem{item}, string(long),
			order.EnAttente, customerEmail)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AttachID(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.AttachID(99))
	assert.Equal(t, int64(99), o.ID())

	assert.ErrorIs(t, o.AttachID(100), errs.ErrValueIsInvalid)
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("appends one history entry per transition", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Paye, "admin", order.RoleAdmin))

		history := o.PendingHistory()
		require.Len(t, history, 2)
		assert.Equal(t, "en_attente", history[1].Previous())
		assert.Equal(t, order.Paye, history[1].Next())
		assert.Equal(t, order.RoleAdmin, history[1].Role())
		assert.Equal(t, "admin", o.UpdatedBy())
	})

	t.Run("same status is reported unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.EnAttente, "admin", order.RoleAdmin)
		assert.ErrorIs(t, err, order.ErrStatusUnchanged)
		assert.Len(t, o.PendingHistory(), 1)
		assert.Equal(t, customerEmail, o.UpdatedBy())
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Status("pending"), "admin", order.RoleAdmin)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("walks the whole workflow", func(t *testing.T) {
		o := newTestOrder(t)

		for _, want := range []order.Status{
			order.Paye, order.EnPreparation, order.Pret, order.EnChemin, order.Livre,
		} {
			require.NoError(t, o.Advance())
			assert.Equal(t, want, o.Status())
		}

		history := o.PendingHistory()
		require.Len(t, history, 6)
		assert.Equal(t, order.ActorSystem, history[1].Actor())
		assert.Equal(t, order.RoleAuto, history[1].Role())
	})

	t.Run("fails once delivered", func(t *testing.T) {
		o := orderAt(t, order.Livre)
		assert.ErrorIs(t, o.Advance(), errs.ErrStateConflict)
	})

	t.Run("fails on cancelled orders", func(t *testing.T) {
		o := orderAt(t, order.Annulee)
		assert.ErrorIs(t, o.Advance(), errs.ErrStateConflict)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("customer cancels own pending order", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel(customerID, customerEmail, false))
		assert.Equal(t, order.Annulee, o.Status())

		history := o.PendingHistory()
		assert.Equal(t, customerEmail, history[1].Actor())
		assert.Equal(t, order.RoleClient, history[1].Role())
	})

	t.Run("admin cancellation is attributed to admin", func(t *testing.T) {
		o := orderAt(t, order.Paye)

		require.NoError(t, o.Cancel(999, "boss@example.com", true))

		history := o.PendingHistory()
		last := history[len(history)-1]
		assert.Equal(t, order.ActorAdmin, last.Actor())
		assert.Equal(t, order.RoleAdmin, last.Role())
	})

	t.Run("refused once preparation started", func(t *testing.T) {
		o := orderAt(t, order.EnPreparation)
		assert.ErrorIs(t, o.Cancel(customerID, customerEmail, false), errs.ErrStateConflict)
		assert.Equal(t, order.EnPreparation, o.Status())
	})

	t.Run("another customer may not cancel", func(t *testing.T) {
		o := newTestOrder(t)
		assert.ErrorIs(t, o.Cancel(customerID+1, "eve@example.com", false), errs.ErrNotAuthorized)
	})
}

func TestOrder_Take(t *testing.T) {
	t.Run("first livreur wins and order moves to en_chemin", func(t *testing.T) {
		o := orderAt(t, order.Pret)

		require.NoError(t, o.Take(livreurID, livreurEmail))

		assert.Equal(t, order.EnChemin, o.Status())
		require.NotNil(t, o.LivreurID())
		assert.Equal(t, livreurID, *o.LivreurID())

		history := o.PendingHistory()
		last := history[len(history)-1]
		assert.Equal(t, livreurEmail, last.Actor())
		assert.Equal(t, order.RoleLivreur, last.Role())
	})

	t.Run("second livreur is refused after the first took it", func(t *testing.T) {
		o := orderAt(t, order.Pret)
		require.NoError(t, o.Take(livreurID, livreurEmail))

		err := o.Take(livreurID+1, "other@example.com")
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, livreurID, *o.LivreurID())
	})

	t.Run("refused when not ready", func(t *testing.T) {
		o := orderAt(t, order.EnPreparation)
		assert.ErrorIs(t, o.Take(livreurID, livreurEmail), errs.ErrStateConflict)
	})

	t.Run("refused when assigned to someone else", func(t *testing.T) {
		o := orderAt(t, order.EnPreparation)
		require.NoError(t, o.AssignLivreur(livreurID))
		require.NoError(t, o.ChangeStatus(order.Pret, "admin", order.RoleAdmin))

		assert.ErrorIs(t, o.Take(livreurID+1, "other@example.com"), errs.ErrNotAuthorized)
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	t.Run("assigned livreur delivers en_chemin order", func(t *testing.T) {
		o := orderAt(t, order.Pret)
		require.NoError(t, o.Take(livreurID, livreurEmail))

		require.NoError(t, o.MarkDelivered(livreurID, livreurEmail))
		assert.Equal(t, order.Livre, o.Status())
	})

	t.Run("refused for unassigned caller", func(t *testing.T) {
		o := orderAt(t, order.Pret)
		require.NoError(t, o.Take(livreurID, livreurEmail))

		assert.ErrorIs(t, o.MarkDelivered(livreurID+1, "other@example.com"), errs.ErrNotAuthorized)
	})

	t.Run("refused before the order is out", func(t *testing.T) {
		o := orderAt(t, order.EnPreparation)
		require.NoError(t, o.AssignLivreur(livreurID))

		assert.ErrorIs(t, o.MarkDelivered(livreurID, livreurEmail), errs.ErrStateConflict)
	})
}

func TestOrder_MarkFailedDelivery(t *testing.T) {
	t.Run("cancels an en_chemin order with livreur attribution", func(t *testing.T) {
		o := orderAt(t, order.Pret)
		require.NoError(t, o.Take(livreurID, livreurEmail))

		require.NoError(t, o.MarkFailedDelivery(livreurID, livreurEmail))

		assert.Equal(t, order.Annulee, o.Status())
		history := o.PendingHistory()
		last := history[len(history)-1]
		assert.Equal(t, livreurEmail, last.Actor())
		assert.Equal(t, order.RoleLivreur, last.Role())
	})

	t.Run("refused when not en_chemin", func(t *testing.T) {
		o := orderAt(t, order.Pret)
		require.NoError(t, o.AssignLivreur(livreurID))
		require.NoError(t, o.ChangeStatus(order.Pret, "admin", order.RoleAdmin))

		assert.ErrorIs(t, o.MarkFailedDelivery(livreurID, livreurEmail), errs.ErrStateConflict)
	})

	t.Run("refused for unassigned caller", func(t *testing.T) {
		o := orderAt(t, order.Pret)
		require.NoError(t, o.Take(livreurID, livreurEmail))

		assert.ErrorIs(t, o.MarkFailedDelivery(livreurID+1, "other@example.com"), errs.ErrNotAuthorized)
	})
}

func TestOrder_AssignLivreur(t *testing.T) {
	t.Run("binds the livreur and forces payé", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.AssignLivreur(livreurID))

		assert.Equal(t, order.Paye, o.Status())
		require.NotNil(t, o.LivreurID())
		assert.Equal(t, livreurID, *o.LivreurID())

		history := o.PendingHistory()
		last := history[len(history)-1]
		assert.Equal(t, order.ActorAdminAssign, last.Actor())
		assert.Equal(t, order.RoleAdmin, last.Role())
	})

	t.Run("regresses a further-along order back to payé", func(t *testing.T) {
		o := orderAt(t, order.Pret)

		require.NoError(t, o.AssignLivreur(livreurID))

		assert.Equal(t, order.Paye, o.Status())
		history := o.PendingHistory()
		last := history[len(history)-1]
		assert.Equal(t, "prêt", last.Previous())
		assert.Equal(t, order.Paye, last.Next())
	})

	t.Run("assigning a new livreur to an already payé order succeeds without history", func(t *testing.T) {
		o := orderAt(t, order.Paye)
		before := len(o.PendingHistory())

		require.NoError(t, o.AssignLivreur(livreurID))

		assert.Equal(t, order.Paye, o.Status())
		assert.Equal(t, livreurID, *o.LivreurID())
		assert.Len(t, o.PendingHistory(), before)
		assert.Equal(t, order.ActorAdminAssign, o.UpdatedBy())
	})

	t.Run("reassigning the same livreur is a no-op", func(t *testing.T) {
		o := orderAt(t, order.Pret)
		require.NoError(t, o.AssignLivreur(livreurID))
		before := len(o.PendingHistory())

		require.NoError(t, o.AssignLivreur(livreurID))
		assert.Len(t, o.PendingHistory(), before)
	})

	t.Run("refused on terminal orders", func(t *testing.T) {
		for _, s := range []order.Status{order.Livre, order.Annulee, order.Remboursee} {
			o := orderAt(t, s)
			assert.ErrorIs(t, o.AssignLivreur(livreurID), errs.ErrStateConflict, s)
		}
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("moves a pending order to payé with bridge attribution", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.MarkPaid())

		assert.Equal(t, order.Paye, o.Status())
		history := o.PendingHistory()
		last := history[len(history)-1]
		assert.Equal(t, order.ActorPaymentBridge, last.Actor())
		assert.Equal(t, order.RoleSystem, last.Role())
	})

	t.Run("refused on terminal orders", func(t *testing.T) {
		o := orderAt(t, order.Annulee)
		assert.ErrorIs(t, o.MarkPaid(), errs.ErrStateConflict)
	})
}

func TestOrder_MarkRefunded(t *testing.T) {
	t.Run("refunds paid and in-flight orders", func(t *testing.T) {
		for _, s := range []order.Status{order.Paye, order.EnPreparation, order.Pret, order.EnChemin} {
			o := orderAt(t, s)
			require.NoError(t, o.MarkRefunded("boss@example.com"), s)
			assert.Equal(t, order.Remboursee, o.Status())
		}
	})

	t.Run("refused before payment and on terminal orders", func(t *testing.T) {
		for _, s := range []order.Status{order.EnAttente, order.Livre, order.Annulee, order.Remboursee} {
			o := orderAt(t, s)
			assert.ErrorIs(t, o.MarkRefunded("boss@example.com"), errs.ErrStateConflict, s)
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("rebuilds without producing history", func(t *testing.T) {
		source := newTestOrder(t)
		require.NoError(t, source.AttachID(5))

		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              5,
			CustomerID:      customerID,
			Status:          order.Paye,
			Items:           source.Items(),
			TVAAmount:       source.TVAAmount(),
			Total:           source.Total(),
			DeliveryAddress: source.DeliveryAddress(),
			CreatedAt:       source.CreatedAt(),
			UpdatedAt:       source.UpdatedAt(),
			UpdatedBy:       customerEmail,
			Version:         3,
		})
		require.NoError(t, err)

		assert.Empty(t, restored.PendingHistory())
		assert.Equal(t, int64(3), restored.Version())
		assert.Equal(t, order.Paye, restored.Status())
		require.NoError(t, restored.Validate())
	})

	t.Run("rejects a corrupted status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{ID: 5, Status: "???"})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero order.Order
	assert.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}
