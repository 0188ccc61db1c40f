// Package wizard implements the registration and settings conversation as an
// explicit finite-state machine over abstract events and actions.
package wizard

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"optimizer/internal/model"
	"optimizer/internal/texts"
)

// ProfileStore is the persistence boundary the engine writes through.
type ProfileStore interface {
	// Find returns (nil, nil) for an unknown identity.
	Find(ctx context.Context, telegramID int64) (*model.UserProfile, error)
	Upsert(ctx context.Context, telegramID int64, fullName string, role model.Role, branch model.Branch, lang model.Language) (*model.UserProfile, error)
}

// Engine drives the registration wizard. It owns the session registry and is
// safe for concurrent use across identities; events for one identity are
// expected to arrive sequentially.
type Engine struct {
	store     ProfileStore
	catalog   *texts.Catalog
	sessions  *SessionRegistry
	passwords map[model.Role]string
	webAppURL string
	log       *zap.Logger
}

func NewEngine(store ProfileStore, catalog *texts.Catalog, sessions *SessionRegistry, passwords map[model.Role]string, webAppURL string, log *zap.Logger) *Engine {
	return &Engine{
		store:     store,
		catalog:   catalog,
		sessions:  sessions,
		passwords: passwords,
		webAppURL: webAppURL,
		log:       log,
	}
}

// Handle consumes one inbound event and returns the outbound actions.
// Storage failures are logged and surfaced as localized soft-failure
// prompts; the conversation itself never crashes.
func (e *Engine) Handle(ctx context.Context, ev Event) []Action {
	switch ev := ev.(type) {
	case EntryEvent:
		return e.handleEntry(ctx, ev.UserID)
	case CancelEvent:
		return e.handleCancel(ev.UserID)
	case TextEvent:
		return e.handleText(ctx, ev)
	case LanguageChosen:
		return e.handleLanguage(ctx, ev)
	case RoleChosen:
		return e.handleRole(ev)
	case BranchChosen:
		return e.handleBranch(ctx, ev)
	case BackRequested:
		return e.handleBack(ctx, ev.UserID)
	case SettingsOpened:
		return e.openSettings(ctx, ev.UserID)
	case SettingsTarget:
		return e.handleSettingsTarget(ctx, ev)
	case MainMenuRequested:
		e.sessions.Delete(ev.UserID)
		return e.mainMenu(ctx, ev.UserID)
	default:
		e.log.Warn("unhandled event", zap.Int64("user", ev.Identity()))
		return nil
	}
}

// handleEntry routes a registered user straight to the welcome-back view
// without creating a session; everyone else starts the wizard.
func (e *Engine) handleEntry(ctx context.Context, userID int64) []Action {
	profile, err := e.store.Find(ctx, userID)
	if err != nil {
		e.log.Error("find profile", zap.Int64("user", userID), zap.Error(err))
		return []Action{e.saveFailedPrompt(userID, model.LanguageRU)}
	}
	if profile != nil {
		e.sessions.Delete(userID)
		return []Action{e.welcomeBack(profile)}
	}

	sess := &Session{UserID: userID, State: StateLanguage, Language: model.LanguageRU}
	e.sessions.Put(sess)
	return []Action{e.languagePrompt(userID)}
}

func (e *Engine) handleCancel(userID int64) []Action {
	sess, ok := e.sessions.Get(userID)
	lang := model.LanguageRU
	if ok {
		lang = sess.Language
	}
	e.sessions.Delete(userID)
	return []Action{Prompt{
		UserID:      userID,
		Text:        e.catalog.Render(lang, texts.KeyCancelled),
		RemoveReply: true,
	}}
}

func (e *Engine) handleText(ctx context.Context, ev TextEvent) []Action {
	sess, ok := e.sessions.Get(ev.UserID)
	if !ok {
		return []Action{Prompt{UserID: ev.UserID, Text: e.catalog.Render(model.LanguageRU, texts.KeyUseStart)}}
	}

	text := strings.TrimSpace(ev.Text)
	if text == e.catalog.Render(sess.Language, texts.KeyBack) {
		return e.goBack(ctx, sess)
	}

	switch sess.State {
	case StateFullName:
		if text == "" {
			return []Action{e.promptFor(sess)}
		}
		sess.FullName = text
		if sess.Edit == EditFullName {
			return e.complete(ctx, sess)
		}
		sess.State = StateRole
		return []Action{e.rolePrompt(sess)}

	case StatePassword:
		if text != e.passwords[sess.Role] {
			return []Action{Prompt{
				UserID:       sess.UserID,
				Text:         e.catalog.Render(sess.Language, texts.KeyWrongPassword),
				ReplyButtons: []string{e.catalog.Render(sess.Language, texts.KeyBack)},
			}}
		}
		if !sess.Role.BranchScoped() {
			sess.Branch = model.BranchAll
			return e.complete(ctx, sess)
		}
		sess.State = StateBranch
		return []Action{e.branchPrompt(sess)}

	default:
		// Free text where a selection was expected: re-prompt the step.
		return []Action{e.promptFor(sess)}
	}
}

func (e *Engine) handleLanguage(ctx context.Context, ev LanguageChosen) []Action {
	sess, ok := e.sessions.Get(ev.UserID)
	if !ok {
		// Stale keyboard from a swept or finished conversation.
		return e.handleEntry(ctx, ev.UserID)
	}
	if sess.State != StateLanguage || !ev.Language.Valid() {
		return []Action{e.promptFor(sess)}
	}

	sess.Language = ev.Language
	sess.State = StateFullName
	return []Action{e.fullNamePrompt(sess)}
}

func (e *Engine) handleRole(ev RoleChosen) []Action {
	sess, ok := e.sessions.Get(ev.UserID)
	if !ok {
		return []Action{Prompt{UserID: ev.UserID, Text: e.catalog.Render(model.LanguageRU, texts.KeyUseStart)}}
	}
	if sess.State != StateRole || !ev.Role.Valid() {
		return []Action{e.promptFor(sess)}
	}

	sess.Role = ev.Role
	sess.State = StatePassword
	return []Action{e.passwordPrompt(sess)}
}

func (e *Engine) handleBranch(ctx context.Context, ev BranchChosen) []Action {
	sess, ok := e.sessions.Get(ev.UserID)
	if !ok {
		return []Action{Prompt{UserID: ev.UserID, Text: e.catalog.Render(model.LanguageRU, texts.KeyUseStart)}}
	}
	if sess.State != StateBranch || !ev.Branch.Valid() {
		return []Action{e.promptFor(sess)}
	}

	sess.Branch = ev.Branch
	return e.complete(ctx, sess)
}

// goBack routes to the preceding step, discarding only the current step's
// own draft. A step entered directly from the settings menu goes back to the
// settings menu instead, since no earlier wizard step was ever shown.
func (e *Engine) goBack(ctx context.Context, sess *Session) []Action {
	if sess.Edit != EditNone && sess.State == editEntryState(sess.Edit) {
		sess.State = StateSettings
		return []Action{e.settingsPrompt(sess)}
	}

	switch sess.State {
	case StateFullName:
		sess.FullName = ""
		sess.State = StateLanguage
		return []Action{e.languagePrompt(sess.UserID)}
	case StateRole:
		sess.Role = ""
		sess.State = StateFullName
		return []Action{e.fullNamePrompt(sess)}
	case StatePassword:
		sess.State = StateRole
		return []Action{e.rolePrompt(sess)}
	case StateBranch:
		sess.Branch = ""
		sess.State = StatePassword
		return []Action{e.passwordPrompt(sess)}
	case StateSettings:
		e.sessions.Delete(sess.UserID)
		return e.mainMenu(ctx, sess.UserID)
	default:
		return []Action{e.promptFor(sess)}
	}
}

func (e *Engine) handleBack(ctx context.Context, userID int64) []Action {
	sess, ok := e.sessions.Get(userID)
	if !ok {
		return []Action{Prompt{UserID: userID, Text: e.catalog.Render(model.LanguageRU, texts.KeyUseStart)}}
	}
	return e.goBack(ctx, sess)
}

// openSettings pre-populates a session from the persisted profile so that a
// single-field edit completes with every other field unchanged.
func (e *Engine) openSettings(ctx context.Context, userID int64) []Action {
	profile, err := e.store.Find(ctx, userID)
	if err != nil {
		e.log.Error("find profile", zap.Int64("user", userID), zap.Error(err))
		return []Action{e.saveFailedPrompt(userID, model.LanguageRU)}
	}
	if profile == nil {
		return []Action{Prompt{UserID: userID, Text: e.catalog.Render(model.LanguageRU, texts.KeyNotRegistered)}}
	}

	sess := &Session{
		UserID:   userID,
		State:    StateSettings,
		Language: profile.Language,
		FullName: profile.FullName,
		Role:     profile.Role,
		Branch:   profile.Branch,
	}
	e.sessions.Put(sess)
	return []Action{e.settingsPrompt(sess)}
}

func (e *Engine) handleSettingsTarget(ctx context.Context, ev SettingsTarget) []Action {
	sess, ok := e.sessions.Get(ev.UserID)
	if !ok {
		return e.openSettings(ctx, ev.UserID)
	}
	if sess.State != StateSettings {
		return []Action{e.promptFor(sess)}
	}

	switch ev.Field {
	case EditLanguage:
		// Language toggles between the two supported languages and persists
		// immediately, without walking the generic flow.
		sess.Language = sess.Language.Toggle()
		if _, err := e.store.Upsert(ctx, sess.UserID, sess.FullName, sess.Role, sess.Branch, sess.Language); err != nil {
			sess.Language = sess.Language.Toggle()
			e.log.Error("persist language", zap.Int64("user", sess.UserID), zap.Error(err))
			return []Action{e.saveFailedPrompt(sess.UserID, sess.Language)}
		}
		lang := sess.Language
		e.sessions.Delete(sess.UserID)
		actions := []Action{Prompt{UserID: ev.UserID, Text: e.catalog.Render(lang, texts.KeyLanguageChanged)}}
		return append(actions, e.mainMenu(ctx, ev.UserID)...)

	case EditFullName:
		sess.Edit = EditFullName
		sess.State = StateFullName
		return []Action{e.fullNamePrompt(sess)}

	case EditRole:
		sess.Edit = EditRole
		sess.State = StateRole
		return []Action{e.rolePrompt(sess)}

	case EditBranch:
		if !sess.Role.BranchScoped() {
			return []Action{e.settingsPrompt(sess)}
		}
		sess.Edit = EditBranch
		sess.State = StateBranch
		return []Action{e.branchPrompt(sess)}

	default:
		return []Action{e.settingsPrompt(sess)}
	}
}

// mainMenu re-derives the main view from persisted state. This is the
// explicit return-to-menu transition, deliberately separate from first-entry
// handling.
func (e *Engine) mainMenu(ctx context.Context, userID int64) []Action {
	profile, err := e.store.Find(ctx, userID)
	if err != nil {
		e.log.Error("find profile", zap.Int64("user", userID), zap.Error(err))
		return []Action{e.saveFailedPrompt(userID, model.LanguageRU)}
	}
	if profile == nil {
		return []Action{Prompt{UserID: userID, Text: e.catalog.Render(model.LanguageRU, texts.KeyUseStart)}}
	}
	return []Action{e.welcomeBack(profile)}
}

// complete is the terminal transition: validate, persist the full profile,
// tear the session down and hand out the mini-app deep link.
func (e *Engine) complete(ctx context.Context, sess *Session) []Action {
	if !sess.Role.Valid() || !model.ConsistentBranch(sess.Role, sess.Branch) || !sess.Language.Valid() || sess.FullName == "" {
		e.log.Warn("inconsistent session at completion",
			zap.Int64("user", sess.UserID),
			zap.String("role", string(sess.Role)),
			zap.String("branch", string(sess.Branch)))
		return []Action{e.promptFor(sess)}
	}

	profile, err := e.store.Upsert(ctx, sess.UserID, sess.FullName, sess.Role, sess.Branch, sess.Language)
	if err != nil {
		// Soft failure: keep the session so the next input retries the save.
		e.log.Error("persist profile", zap.Int64("user", sess.UserID), zap.Error(err))
		return []Action{e.saveFailedPrompt(sess.UserID, sess.Language)}
	}

	e.log.Info("profile saved",
		zap.Int64("user", sess.UserID),
		zap.String("role", string(profile.Role)),
		zap.String("branch", string(profile.Branch)))

	edit := sess.Edit
	e.sessions.Delete(sess.UserID)

	lang := profile.Language
	var text string
	switch edit {
	case EditFullName:
		text = e.catalog.Render(lang, texts.KeyFIOChanged, profile.FullName)
	case EditRole:
		text = e.catalog.Render(lang, texts.KeyRoleChanged, e.catalog.Role(lang, profile.Role))
	case EditBranch:
		text = e.catalog.Render(lang, texts.KeyBranchChanged, e.catalog.Branch(lang, profile.Branch))
	default:
		text = e.catalog.Render(lang, texts.KeyRegistrationComplete,
			profile.FullName, e.catalog.Role(lang, profile.Role), e.catalog.Branch(lang, profile.Branch))
	}

	return []Action{Confirmation{
		UserID:    profile.TelegramID,
		Text:      text,
		LinkLabel: e.catalog.Render(lang, texts.KeyOpenApp),
		LinkURL:   e.deepLink(profile),
		Choices: [][]Choice{{
			{Label: e.catalog.Render(lang, texts.KeySettings), Token: TokenSettings},
		}},
	}}
}

func (e *Engine) welcomeBack(profile *model.UserProfile) Confirmation {
	lang := profile.Language
	return Confirmation{
		UserID: profile.TelegramID,
		Text: e.catalog.Render(lang, texts.KeyAlreadyRegistered,
			profile.FullName, e.catalog.Role(lang, profile.Role), e.catalog.Branch(lang, profile.Branch)),
		LinkLabel: e.catalog.Render(lang, texts.KeyOpenApp),
		LinkURL:   e.deepLink(profile),
		Choices: [][]Choice{{
			{Label: e.catalog.Render(lang, texts.KeySettings), Token: TokenSettings},
		}},
	}
}

func (e *Engine) deepLink(profile *model.UserProfile) string {
	q := url.Values{}
	q.Set("user_id", fmt.Sprintf("%d", profile.TelegramID))
	q.Set("lang", string(profile.Language))
	q.Set("role", string(profile.Role))
	q.Set("branch", string(profile.Branch))
	return e.webAppURL + "?" + q.Encode()
}

// promptFor re-renders the prompt of the session's current step.
func (e *Engine) promptFor(sess *Session) Action {
	switch sess.State {
	case StateLanguage:
		return e.languagePrompt(sess.UserID)
	case StateFullName:
		return e.fullNamePrompt(sess)
	case StateRole:
		return e.rolePrompt(sess)
	case StatePassword:
		return e.passwordPrompt(sess)
	case StateBranch:
		return e.branchPrompt(sess)
	case StateSettings:
		return e.settingsPrompt(sess)
	default:
		return e.languagePrompt(sess.UserID)
	}
}

// The welcome prompt is always rendered in Russian: no language is known yet.
func (e *Engine) languagePrompt(userID int64) Prompt {
	return Prompt{
		UserID: userID,
		Text:   e.catalog.Render(model.LanguageRU, texts.KeyWelcome),
		Choices: [][]Choice{{
			{Label: "🇷🇺 Русский", Token: TokenLangPrefix + string(model.LanguageRU)},
			{Label: "🇺🇿 O'zbekcha", Token: TokenLangPrefix + string(model.LanguageUZ)},
		}},
	}
}

func (e *Engine) fullNamePrompt(sess *Session) Prompt {
	return Prompt{
		UserID:       sess.UserID,
		Text:         e.catalog.Render(sess.Language, texts.KeyEnterFIO),
		ReplyButtons: []string{e.catalog.Render(sess.Language, texts.KeyBack)},
	}
}

func (e *Engine) rolePrompt(sess *Session) Prompt {
	rows := make([][]Choice, 0, len(model.Roles)+1)
	for _, role := range model.Roles {
		rows = append(rows, []Choice{{
			Label: e.catalog.Role(sess.Language, role),
			Token: TokenRolePrefix + string(role),
		}})
	}
	rows = append(rows, []Choice{{Label: e.catalog.Render(sess.Language, texts.KeyBack), Token: TokenBack}})
	return Prompt{
		UserID:  sess.UserID,
		Text:    e.catalog.Render(sess.Language, texts.KeySelectRole),
		Choices: rows,
	}
}

func (e *Engine) passwordPrompt(sess *Session) Prompt {
	return Prompt{
		UserID:       sess.UserID,
		Text:         e.catalog.Render(sess.Language, texts.KeyEnterPassword, e.catalog.Role(sess.Language, sess.Role)),
		ReplyButtons: []string{e.catalog.Render(sess.Language, texts.KeyBack)},
	}
}

func (e *Engine) branchPrompt(sess *Session) Prompt {
	rows := make([][]Choice, 0, len(model.Branches)+1)
	for _, branch := range model.Branches {
		rows = append(rows, []Choice{{
			Label: e.catalog.Branch(sess.Language, branch),
			Token: TokenBranchPrefix + string(branch),
		}})
	}
	rows = append(rows, []Choice{{Label: e.catalog.Render(sess.Language, texts.KeyBack), Token: TokenBack}})
	return Prompt{
		UserID:  sess.UserID,
		Text:    e.catalog.Render(sess.Language, texts.KeySelectBranch),
		Choices: rows,
	}
}

func (e *Engine) settingsPrompt(sess *Session) Prompt {
	lang := sess.Language
	rows := [][]Choice{
		{{Label: e.catalog.Render(lang, texts.KeyChangeLanguage), Token: TokenSettingPrefix + "language"}},
		{{Label: e.catalog.Render(lang, texts.KeyChangeFIO), Token: TokenSettingPrefix + "fio"}},
		{{Label: e.catalog.Render(lang, texts.KeyChangeRole), Token: TokenSettingPrefix + "role"}},
	}
	if sess.Role.BranchScoped() {
		rows = append(rows, []Choice{{Label: e.catalog.Render(lang, texts.KeyChangeBranch), Token: TokenSettingPrefix + "branch"}})
	}
	rows = append(rows, []Choice{{Label: e.catalog.Render(lang, texts.KeyBack), Token: TokenBackToMain}})
	return Prompt{
		UserID:  sess.UserID,
		Text:    e.catalog.Render(lang, texts.KeySettingsMenu),
		Choices: rows,
	}
}

func (e *Engine) saveFailedPrompt(userID int64, lang model.Language) Prompt {
	return Prompt{UserID: userID, Text: e.catalog.Render(lang, texts.KeySaveFailed)}
}

// editEntryState maps a settings edit target to the wizard step it jumps into.
func editEntryState(edit EditField) State {
	switch edit {
	case EditFullName:
		return StateFullName
	case EditRole:
		return StateRole
	case EditBranch:
		return StateBranch
	default:
		return StateSettings
	}
}
