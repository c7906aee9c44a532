// Package bot implements the Telegram conversation flow for registrations.
package bot

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/communitylabs/doorman/internal/domain"
	"github.com/communitylabs/doorman/internal/store"
)

// Sender sends outbound Telegram messages. *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Flow drives the three-state registration conversation. Each incoming
// update is dispatched to the handler for the session's current state.
type Flow struct {
	sender     Sender
	sessions   *SessionManager
	recorder   store.Recorder
	inviteLink string
}

// NewFlow creates a conversation flow.
func NewFlow(sender Sender, sessions *SessionManager, recorder store.Recorder, inviteLink string) *Flow {
	return &Flow{
		sender:     sender,
		sessions:   sessions,
		recorder:   recorder,
		inviteLink: inviteLink,
	}
}

// HandleUpdate routes one Telegram update through the conversation flow.
// Updates that are not plain text messages or recognized commands are
// ignored without a reply; so is text from users with no active session.
func (f *Flow) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			f.handleStart(msg)
		case "cancel":
			f.handleCancel(msg)
		}
		return
	}

	if msg.Text == "" {
		return
	}

	sess, ok := f.sessions.Get(msg.From.ID)
	if !ok {
		return
	}

	switch sess.State {
	case domain.StateAwaitingName:
		f.handleName(sess, msg)
	case domain.StateAwaitingEmail:
		f.handleEmail(ctx, sess, msg)
	}
}

// handleStart begins a fresh session and sends the greeting. While a
// session is already in flight the command is ignored like any other;
// the user must cancel before starting over.
func (f *Flow) handleStart(msg *tgbotapi.Message) {
	if _, ok := f.sessions.Get(msg.From.ID); ok {
		return
	}
	f.sessions.Begin(msg.From.ID)
	f.replyHTML(msg.Chat.ID, greetingMessage(msg.From.FirstName))
}

// handleName captures the name and moves to the email prompt.
func (f *Flow) handleName(sess *domain.Session, msg *tgbotapi.Message) {
	sess.Name = msg.Text
	sess.State = domain.StateAwaitingEmail
	slog.Info("Name received", "user_id", msg.From.ID)
	f.replyHTML(msg.Chat.ID, emailPromptMessage)
}

// handleEmail validates the address, persists the record and closes the
// conversation. An invalid address re-prompts without changing state.
func (f *Flow) handleEmail(ctx context.Context, sess *domain.Session, msg *tgbotapi.Message) {
	email := msg.Text
	if !IsValidEmail(email) {
		f.reply(msg.Chat.ID, invalidEmailMessage)
		return
	}

	sess.Email = email
	slog.Info("Email received", "user_id", msg.From.ID)

	rec := &domain.RegistrationRecord{
		Name:         sess.Name,
		Email:        sess.Email,
		UserID:       sess.UserID,
		RegisteredAt: time.Now(),
	}

	if err := f.recorder.Append(ctx, rec); err != nil {
		// Cause already logged at the adapter boundary; the user only
		// sees the generic notice.
		f.reply(msg.Chat.ID, storageFailureMessage)
	} else {
		f.replySuccess(msg.Chat.ID)
	}

	f.sessions.End(msg.From.ID)
}

// handleCancel ends an in-flight session. With no active session the
// command is ignored, like any other input outside a conversation.
func (f *Flow) handleCancel(msg *tgbotapi.Message) {
	if _, ok := f.sessions.Get(msg.From.ID); !ok {
		return
	}
	f.reply(msg.Chat.ID, cancelMessage)
	f.sessions.End(msg.From.ID)
}

func (f *Flow) replySuccess(chatID int64) {
	out := tgbotapi.NewMessage(chatID, successMessage)
	out.ParseMode = tgbotapi.ModeHTML
	out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(inviteButtonLabel, f.inviteLink),
		),
	)
	f.send(out)
}

func (f *Flow) replyHTML(chatID int64, text string) {
	out := tgbotapi.NewMessage(chatID, text)
	out.ParseMode = tgbotapi.ModeHTML
	f.send(out)
}

func (f *Flow) reply(chatID int64, text string) {
	f.send(tgbotapi.NewMessage(chatID, text))
}

func (f *Flow) send(c tgbotapi.Chattable) {
	if _, err := f.sender.Send(c); err != nil {
		slog.Error("Failed to send Telegram message", "error", err)
	}
}
