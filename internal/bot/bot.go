// Package bot adapts Telegram updates to wizard events and wizard actions to
// Telegram messages. All conversation logic lives in the wizard engine.
package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"optimizer/internal/model"
	"optimizer/internal/wizard"
)

// Bot polls Telegram and shuttles events between the transport and the engine.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *wizard.Engine
	log    *zap.Logger
}

func New(token string, engine *wizard.Engine, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Info("bot authorized", zap.String("account", api.Self.UserName))

	return &Bot{api: api, engine: engine, log: log}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	b.log.Info("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				b.log.Error("handle callback", zap.Error(err))
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				b.log.Error("handle message", zap.Error(err))
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	var ev wizard.Event
	if msg.IsCommand() {
		b.log.Info("command", zap.Int64("user", msg.From.ID), zap.String("command", msg.Command()))
		switch msg.Command() {
		case "start":
			ev = wizard.EntryEvent{UserID: msg.From.ID}
		case "cancel":
			ev = wizard.CancelEvent{UserID: msg.From.ID}
		default:
			ev = wizard.TextEvent{UserID: msg.From.ID, Text: msg.Text}
		}
	} else {
		ev = wizard.TextEvent{UserID: msg.From.ID, Text: msg.Text}
	}

	return b.dispatch(ctx, msg.Chat.ID, ev)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.From == nil || cb.Message == nil {
		return nil
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Warn("callback ack", zap.Error(err))
	}

	ev, ok := decodeCallback(cb.From.ID, cb.Data)
	if !ok {
		b.log.Warn("unknown callback token", zap.Int64("user", cb.From.ID), zap.String("data", cb.Data))
		return nil
	}

	return b.dispatch(ctx, cb.Message.Chat.ID, ev)
}

// decodeCallback is the single place raw callback tokens become typed events.
func decodeCallback(userID int64, data string) (wizard.Event, bool) {
	switch {
	case strings.HasPrefix(data, wizard.TokenLangPrefix):
		lang := model.Language(strings.TrimPrefix(data, wizard.TokenLangPrefix))
		if !lang.Valid() {
			return nil, false
		}
		return wizard.LanguageChosen{UserID: userID, Language: lang}, true

	case strings.HasPrefix(data, wizard.TokenRolePrefix):
		role := model.Role(strings.TrimPrefix(data, wizard.TokenRolePrefix))
		if !role.Valid() {
			return nil, false
		}
		return wizard.RoleChosen{UserID: userID, Role: role}, true

	case strings.HasPrefix(data, wizard.TokenBranchPrefix):
		branch := model.Branch(strings.TrimPrefix(data, wizard.TokenBranchPrefix))
		if !branch.Valid() {
			return nil, false
		}
		return wizard.BranchChosen{UserID: userID, Branch: branch}, true

	case strings.HasPrefix(data, wizard.TokenSettingPrefix):
		var field wizard.EditField
		switch strings.TrimPrefix(data, wizard.TokenSettingPrefix) {
		case "language":
			field = wizard.EditLanguage
		case "fio":
			field = wizard.EditFullName
		case "role":
			field = wizard.EditRole
		case "branch":
			field = wizard.EditBranch
		default:
			return nil, false
		}
		return wizard.SettingsTarget{UserID: userID, Field: field}, true

	case data == wizard.TokenSettings:
		return wizard.SettingsOpened{UserID: userID}, true

	case data == wizard.TokenBack:
		return wizard.BackRequested{UserID: userID}, true

	case data == wizard.TokenBackToMain:
		return wizard.MainMenuRequested{UserID: userID}, true

	default:
		return nil, false
	}
}

func (b *Bot) dispatch(ctx context.Context, chatID int64, ev wizard.Event) error {
	for _, action := range b.engine.Handle(ctx, ev) {
		if err := b.send(chatID, action); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) send(chatID int64, action wizard.Action) error {
	switch action := action.(type) {
	case wizard.Prompt:
		msg := tgbotapi.NewMessage(chatID, action.Text)
		switch {
		case len(action.Choices) > 0:
			msg.ReplyMarkup = inlineKeyboard(action.Choices)
		case len(action.ReplyButtons) > 0:
			msg.ReplyMarkup = replyKeyboard(action.ReplyButtons)
		case action.RemoveReply:
			msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		}
		_, err := b.api.Send(msg)
		return err

	case wizard.Confirmation:
		msg := tgbotapi.NewMessage(chatID, action.Text)
		rows := [][]tgbotapi.InlineKeyboardButton{{
			tgbotapi.NewInlineKeyboardButtonURL(action.LinkLabel, action.LinkURL),
		}}
		for _, row := range action.Choices {
			var buttons []tgbotapi.InlineKeyboardButton
			for _, choice := range row {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(choice.Label, choice.Token))
			}
			rows = append(rows, buttons)
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
		_, err := b.api.Send(msg)
		return err

	default:
		return nil
	}
}

func inlineKeyboard(rows [][]wizard.Choice) tgbotapi.InlineKeyboardMarkup {
	var out [][]tgbotapi.InlineKeyboardButton
	for _, row := range rows {
		var buttons []tgbotapi.InlineKeyboardButton
		for _, choice := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(choice.Label, choice.Token))
		}
		out = append(out, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(out...)
}

func replyKeyboard(labels []string) tgbotapi.ReplyKeyboardMarkup {
	var buttons []tgbotapi.KeyboardButton
	for _, label := range labels {
		buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
	}
	kb := tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(buttons...))
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}
