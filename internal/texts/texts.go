// Package texts holds the localized string tables for the registration bot.
package texts

import (
	"fmt"

	"optimizer/internal/model"
)

// Keys known to the catalog. Format arguments are positional (%s).
const (
	KeyWelcome              = "welcome"
	KeyEnterFIO             = "enter_fio"
	KeySelectRole           = "select_role"
	KeyEnterPassword        = "enter_password"
	KeyWrongPassword        = "wrong_password"
	KeySelectBranch         = "select_branch"
	KeyRegistrationComplete = "registration_complete"
	KeyOpenApp              = "open_app"
	KeyBack                 = "back"
	KeySettings             = "settings"
	KeySettingsMenu         = "settings_menu"
	KeyChangeLanguage       = "change_language"
	KeyChangeFIO            = "change_fio"
	KeyChangeRole           = "change_role"
	KeyChangeBranch         = "change_branch"
	KeyLanguageChanged      = "language_changed"
	KeyFIOChanged           = "fio_changed"
	KeyRoleChanged          = "role_changed"
	KeyBranchChanged        = "branch_changed"
	KeyAlreadyRegistered    = "already_registered"
	KeyNotRegistered        = "not_registered"
	KeyCancelled            = "cancelled"
	KeySaveFailed           = "save_failed"
	KeyUseStart             = "use_start"
)

var tables = map[model.Language]map[string]string{
	model.LanguageRU: {
		KeyWelcome:              "👋 Добро пожаловать в Optimizer!\n\nВыберите язык:",
		KeyEnterFIO:             "📝 Введите ваше ФИО (Фамилия Имя Отчество):",
		KeySelectRole:           "👤 Выберите вашу роль:",
		KeyEnterPassword:        "🔐 Введите пароль для роли \"%s\":",
		KeyWrongPassword:        "❌ Неверный пароль. Попробуйте ещё раз:",
		KeySelectBranch:         "🏢 Выберите филиал:",
		KeyRegistrationComplete: "✅ Отлично! Регистрация завершена.\n\n👤 %s\n🎭 Роль: %s\n🏢 Филиал: %s\n\nНажмите кнопку ниже, чтобы открыть приложение:",
		KeyOpenApp:              "📱 Открыть Optimizer",
		KeyBack:                 "⬅️ Назад",
		KeySettings:             "⚙️ Настройки",
		KeySettingsMenu:         "⚙️ Настройки\n\nВыберите, что хотите изменить:",
		KeyChangeLanguage:       "🌐 Сменить язык",
		KeyChangeFIO:            "📝 Изменить ФИО",
		KeyChangeRole:           "👤 Сменить роль",
		KeyChangeBranch:         "🏢 Сменить филиал",
		KeyLanguageChanged:      "✅ Язык изменён на Русский",
		KeyFIOChanged:           "✅ ФИО изменено на: %s",
		KeyRoleChanged:          "✅ Роль изменена на: %s",
		KeyBranchChanged:        "✅ Филиал изменён на: %s",
		KeyAlreadyRegistered:    "👋 С возвращением, %s!\n\n🎭 Роль: %s\n🏢 Филиал: %s\n\nНажмите кнопку ниже, чтобы открыть приложение:",
		KeyNotRegistered:        "❌ Пользователь не найден. Наберите /start для регистрации.",
		KeyCancelled:            "👋 До свидания!",
		KeySaveFailed:           "⚠️ Не удалось сохранить данные. Попробуйте ещё раз.",
		KeyUseStart:             "Наберите /start, чтобы начать.",

		"role_chef":      "👨‍🍳 Шеф-повар",
		"role_financier": "💼 Финансист",
		"role_supplier":  "🚚 Поставщик",

		"branch_chilanzar":   "Чиланзар (Новза)",
		"branch_uchtepa":     "Учтепа",
		"branch_shayzantaur": "Шайзантаур",
		"branch_olmazar":     "Олмазар",
		"branch_all":         "Все филиалы",
	},
	model.LanguageUZ: {
		KeyWelcome:              "👋 Optimizer'ga xush kelibsiz!\n\nTilni tanlang:",
		KeyEnterFIO:             "📝 F.I.O. (Familiya Ism Otasining ismi) kiriting:",
		KeySelectRole:           "👤 Rolingizni tanlang:",
		KeyEnterPassword:        "🔐 \"%s\" roli uchun parolni kiriting:",
		KeyWrongPassword:        "❌ Noto'g'ri parol. Qayta urinib ko'ring:",
		KeySelectBranch:         "🏢 Filialni tanlang:",
		KeyRegistrationComplete: "✅ Ajoyib! Ro'yxatdan o'tish yakunlandi.\n\n👤 %s\n🎭 Rol: %s\n🏢 Filial: %s\n\nIlovani ochish uchun quyidagi tugmani bosing:",
		KeyOpenApp:              "📱 Optimizer'ni ochish",
		KeyBack:                 "⬅️ Orqaga",
		KeySettings:             "⚙️ Sozlamalar",
		KeySettingsMenu:         "⚙️ Sozlamalar\n\nNimani o'zgartirmoqchisiz:",
		KeyChangeLanguage:       "🌐 Tilni o'zgartirish",
		KeyChangeFIO:            "📝 F.I.O. o'zgartirish",
		KeyChangeRole:           "👤 Rolni o'zgartirish",
		KeyChangeBranch:         "🏢 Filialni o'zgartirish",
		KeyLanguageChanged:      "✅ Til O'zbekchaga o'zgartirildi",
		KeyFIOChanged:           "✅ F.I.O. o'zgartirildi: %s",
		KeyRoleChanged:          "✅ Rol o'zgartirildi: %s",
		KeyBranchChanged:        "✅ Filial o'zgartirildi: %s",
		KeyAlreadyRegistered:    "👋 Qaytib kelganingizdan xursandmiz, %s!\n\n🎭 Rol: %s\n🏢 Filial: %s\n\nIlovani ochish uchun quyidagi tugmani bosing:",
		KeyNotRegistered:        "❌ Foydalanuvchi topilmadi. Ro'yxatdan o'tish uchun /start yuboring.",
		KeyCancelled:            "👋 Xayr!",
		KeySaveFailed:           "⚠️ Ma'lumotlarni saqlab bo'lmadi. Qayta urinib ko'ring.",
		KeyUseStart:             "Boshlash uchun /start yuboring.",

		"role_chef":      "👨‍🍳 Oshpaz",
		"role_financier": "💼 Moliyachi",
		"role_supplier":  "🚚 Yetkazuvchi",

		"branch_chilanzar":   "Chilonzor (Novza)",
		"branch_uchtepa":     "Uchtepa",
		"branch_shayzantaur": "Shayxontohur",
		"branch_olmazar":     "Olmazor",
		"branch_all":         "Barcha filiallar",
	},
}

// Catalog is a read-only lookup of localized strings. Safe for concurrent use.
type Catalog struct{}

func New() *Catalog { return &Catalog{} }

// Render resolves a key for the requested language. Missing keys fall back to
// Russian and finally to the literal key, so Render never fails.
func (c *Catalog) Render(lang model.Language, key string, args ...any) string {
	text, ok := tables[lang][key]
	if !ok {
		text, ok = tables[model.LanguageRU][key]
	}
	if !ok {
		text = key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Role returns the localized display name of a role.
func (c *Catalog) Role(lang model.Language, role model.Role) string {
	return c.Render(lang, "role_"+string(role))
}

// Branch returns the localized display name of a branch, sentinel included.
func (c *Catalog) Branch(lang model.Language, branch model.Branch) string {
	return c.Render(lang, "branch_"+string(branch))
}
