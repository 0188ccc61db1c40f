package texts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"optimizer/internal/model"
)

func TestRenderLocalized(t *testing.T) {
	c := New()

	require.Contains(t, c.Render(model.LanguageRU, KeyWelcome), "Добро пожаловать")
	require.Contains(t, c.Render(model.LanguageUZ, KeyWelcome), "xush kelibsiz")
}

func TestRenderFallsBackToRussian(t *testing.T) {
	c := New()

	got := c.Render(model.Language("kk"), KeySelectRole)
	require.Equal(t, c.Render(model.LanguageRU, KeySelectRole), got)
}

func TestRenderFallsBackToKeyLiteral(t *testing.T) {
	c := New()

	require.Equal(t, "no_such_key", c.Render(model.LanguageRU, "no_such_key"))
	require.Equal(t, "no_such_key", c.Render(model.Language("kk"), "no_such_key"))
}

func TestRenderFormatsArgs(t *testing.T) {
	c := New()

	got := c.Render(model.LanguageRU, KeyEnterPassword, "Шеф-повар")
	require.Contains(t, got, "Шеф-повар")
}

func TestRoleAndBranchLabels(t *testing.T) {
	c := New()

	require.Equal(t, "👨‍🍳 Шеф-повар", c.Role(model.LanguageRU, model.RoleChef))
	require.Equal(t, "🚚 Yetkazuvchi", c.Role(model.LanguageUZ, model.RoleSupplier))
	require.Equal(t, "Учтепа", c.Branch(model.LanguageRU, model.BranchUchtepa))
	require.Equal(t, "Barcha filiallar", c.Branch(model.LanguageUZ, model.BranchAll))
}
