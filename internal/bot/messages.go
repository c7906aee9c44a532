package bot

import "fmt"

// Reply texts sent by the conversation flow. HTML formatting is used for
// emphasis; Telegram renders <b> tags in messages sent with ParseMode HTML.

func greetingMessage(firstName string) string {
	return fmt.Sprintf("👋 Hi %s, welcome!\n\n"+
		"To join our private group I need a couple of details.\n\n"+
		"Please send me your <b>full name</b>.", firstName)
}

const (
	emailPromptMessage = "Thanks! Now, please send me your <b>email address</b>."

	invalidEmailMessage = "⚠️ That email address doesn't look valid. Please check it and try again."

	successMessage = "✅ Great, registration complete!\n\n" +
		"Tap the button below to join the private group. See you there!"

	inviteButtonLabel = "➡️ Tap here to join ⬅️"

	storageFailureMessage = "❌ Something went wrong on our side while saving your registration. " +
		"Our team has been notified. Please try again later."

	cancelMessage = "Operation cancelled. If you change your mind, send me /start."
)
