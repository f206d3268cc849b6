package menu_test

import (
	"testing"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/menu"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenu(t *testing.T) {
	price, err := kernel.NewMoneyFromString("12.5")
	require.NoError(t, err)

	t.Run("rounds the price to cents", func(t *testing.T) {
		m, err := menu.NewMenu("Poulet braisé", "", "", price, 1)
		require.NoError(t, err)

		assert.Equal(t, "12.50", m.Price().String())
		assert.False(t, m.IsFavorite())
		require.NoError(t, m.Validate())
	})

	t.Run("requires a name and a category", func(t *testing.T) {
		_, err := menu.NewMenu("", "", "", price, 1)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = menu.NewMenu("Poulet braisé", "", "", price, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMenu_Apply(t *testing.T) {
	price, err := kernel.NewMoneyFromString("12.50")
	require.NoError(t, err)
	m, err := menu.NewMenu("Poulet braisé", "old", "", price, 1)
	require.NoError(t, err)

	t.Run("updates only non-nil fields", func(t *testing.T) {
		favorite := true
		newPrice, err := kernel.NewMoneyFromString("13.999")
		require.NoError(t, err)

		require.NoError(t, m.Apply(menu.Patch{IsFavorite: &favorite, Price: &newPrice}))

		assert.True(t, m.IsFavorite())
		assert.Equal(t, "14.00", m.Price().String())
		assert.Equal(t, "Poulet braisé", m.Name())
		assert.Equal(t, "old", m.Description())
	})

	t.Run("refuses clearing the name", func(t *testing.T) {
		empty := ""
		assert.ErrorIs(t, m.Apply(menu.Patch{Name: &empty}), errs.ErrValueIsRequired)
	})
}

func TestCategory(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		_, err := menu.NewCategory("")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("renames", func(t *testing.T) {
		c, err := menu.NewCategory("Plats")
		require.NoError(t, err)
		require.NoError(t, c.AttachID(3))

		require.NoError(t, c.Rename("Entrées"))
		assert.Equal(t, "Entrées", c.Name())
		assert.Equal(t, int64(3), c.ID())
	})
}
