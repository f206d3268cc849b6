package order_test

import (
	"testing"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("round-trips every wire value", func(t *testing.T) {
		wire := []string{
			"en_attente", "payé", "en_preparation", "prêt",
			"en_chemin", "livré", "annulée", "remboursée",
		}

		for _, s := range wire {
			parsed, err := order.ParseStatus(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, parsed.String())
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, s := range []string{"", "pending", "PAYÉ", "paye", "livre"} {
			_, err := order.ParseStatus(s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("walks the workflow in order", func(t *testing.T) {
		workflow := order.Workflow()
		require.Equal(t, []order.Status{
			order.EnAttente, order.Paye, order.EnPreparation,
			order.Pret, order.EnChemin, order.Livre,
		}, workflow)

		for i := 0; i < len(workflow)-1; i++ {
			next, err := workflow[i].Next()
			require.NoError(t, err)
			assert.Equal(t, workflow[i+1], next)
		}
	})

	t.Run("fails at the end of the workflow", func(t *testing.T) {
		_, err := order.Livre.Next()
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("fails off the workflow", func(t *testing.T) {
		for _, s := range []order.Status{order.Annulee, order.Remboursee} {
			_, err := s.Next()
			assert.ErrorIs(t, err, errs.ErrStateConflict, s)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.EnAttente:     false,
		order.Paye:          false,
		order.EnPreparation: false,
		order.Pret:          false,
		order.EnChemin:      false,
		order.Livre:         true,
		order.Annulee:       true,
		order.Remboursee:    true,
	}

	for s, want := range terminal {
		assert.Equal(t, want, s.IsTerminal(), s)
	}
}

func TestStatus_IsCancellable(t *testing.T) {
	assert.True(t, order.EnAttente.IsCancellable())
	assert.True(t, order.Paye.IsCancellable())

	for _, s := range []order.Status{
		order.EnPreparation, order.Pret, order.EnChemin,
		order.Livre, order.Annulee, order.Remboursee,
	} {
		assert.False(t, s.IsCancellable(), s)
	}
}
