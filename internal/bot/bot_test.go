package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"optimizer/internal/model"
	"optimizer/internal/wizard"
)

func TestDecodeCallbackTokens(t *testing.T) {
	cases := []struct {
		data string
		want wizard.Event
	}{
		{"lang_ru", wizard.LanguageChosen{UserID: 1, Language: model.LanguageRU}},
		{"lang_uz", wizard.LanguageChosen{UserID: 1, Language: model.LanguageUZ}},
		{"role_chef", wizard.RoleChosen{UserID: 1, Role: model.RoleChef}},
		{"role_supplier", wizard.RoleChosen{UserID: 1, Role: model.RoleSupplier}},
		{"branch_olmazar", wizard.BranchChosen{UserID: 1, Branch: model.BranchOlmazar}},
		{"setting_language", wizard.SettingsTarget{UserID: 1, Field: wizard.EditLanguage}},
		{"setting_fio", wizard.SettingsTarget{UserID: 1, Field: wizard.EditFullName}},
		{"setting_role", wizard.SettingsTarget{UserID: 1, Field: wizard.EditRole}},
		{"setting_branch", wizard.SettingsTarget{UserID: 1, Field: wizard.EditBranch}},
		{"settings", wizard.SettingsOpened{UserID: 1}},
		{"back", wizard.BackRequested{UserID: 1}},
		{"back_to_main", wizard.MainMenuRequested{UserID: 1}},
	}

	for _, tc := range cases {
		ev, ok := decodeCallback(1, tc.data)
		require.True(t, ok, "token %q", tc.data)
		require.Equal(t, tc.want, ev, "token %q", tc.data)
	}
}

func TestDecodeCallbackRejectsUnknownTokens(t *testing.T) {
	for _, data := range []string{
		"lang_en",          // unsupported language
		"role_admin",       // unknown role
		"branch_all",       // sentinel is never a selectable branch
		"branch_samarkand", // unknown branch
		"setting_password", // no such edit target
		"complete:7",       // foreign token format
		"",
	} {
		_, ok := decodeCallback(1, data)
		require.False(t, ok, "token %q must be rejected", data)
	}
}
