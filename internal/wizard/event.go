package wizard

import "optimizer/internal/model"

// Event is an inbound user action. The transport decodes raw updates and
// callback tokens into exactly one of these variants before the engine ever
// sees them, so the state machine works with typed payloads only.
type Event interface {
	Identity() int64
}

// EntryEvent is the /start command.
type EntryEvent struct {
	UserID int64
}

// CancelEvent is the explicit /cancel command.
type CancelEvent struct {
	UserID int64
}

// TextEvent carries free-form text input.
type TextEvent struct {
	UserID int64
	Text   string
}

// LanguageChosen is a language selection.
type LanguageChosen struct {
	UserID   int64
	Language model.Language
}

// RoleChosen is a role selection.
type RoleChosen struct {
	UserID int64
	Role   model.Role
}

// BranchChosen is a branch selection.
type BranchChosen struct {
	UserID int64
	Branch model.Branch
}

// BackRequested navigates to the previous step.
type BackRequested struct {
	UserID int64
}

// SettingsOpened enters the settings menu.
type SettingsOpened struct {
	UserID int64
}

// SettingsTarget picks which single field a settings session will edit.
type SettingsTarget struct {
	UserID int64
	Field  EditField
}

// MainMenuRequested leaves the settings menu for the main view.
type MainMenuRequested struct {
	UserID int64
}

func (e EntryEvent) Identity() int64        { return e.UserID }
func (e CancelEvent) Identity() int64       { return e.UserID }
func (e TextEvent) Identity() int64         { return e.UserID }
func (e LanguageChosen) Identity() int64    { return e.UserID }
func (e RoleChosen) Identity() int64        { return e.UserID }
func (e BranchChosen) Identity() int64      { return e.UserID }
func (e BackRequested) Identity() int64     { return e.UserID }
func (e SettingsOpened) Identity() int64    { return e.UserID }
func (e SettingsTarget) Identity() int64    { return e.UserID }
func (e MainMenuRequested) Identity() int64 { return e.UserID }
