package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot представляет Telegram бота для служебных уведомлений персонала.
// Нулевой указатель безопасен: все отправки становятся no-op, сервер
// работает без бота, если токен не задан.
type Bot struct {
	api       *tgbotapi.BotAPI
	staffChat int64
}

// NewBot создает новый экземпляр бота
func NewBot(token string, staffChat int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = false

	return &Bot{
		api:       api,
		staffChat: staffChat,
	}, nil
}

// SendMessage отправляет сообщение в служебный чат
func (b *Bot) SendMessage(text string) error {
	if b == nil || b.api == nil || b.staffChat == 0 {
		return nil
	}

	msg := tgbotapi.NewMessage(b.staffChat, text)
	msg.ParseMode = "HTML"

	_, err := b.api.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendAnnouncementNotification отправляет уведомление о новом объявлении
func (b *Bot) SendAnnouncementNotification(title, content string, date time.Time) error {
	text := fmt.Sprintf(`📢 <b>Новое объявление!</b>

📋 <b>Заголовок:</b> %s
🕐 <b>Дата:</b> %s

%s`, title, date.Format("02.01.2006"), content)

	return b.SendMessage(text)
}

// SendEventNotification отправляет уведомление о новом мероприятии
func (b *Bot) SendEventNotification(title, content string, date time.Time) error {
	text := fmt.Sprintf(`🎉 <b>Новое мероприятие!</b>

📋 <b>Название:</b> %s
🕐 <b>Дата:</b> %s

%s`, title, date.Format("02.01.2006"), content)

	return b.SendMessage(text)
}

// SendContactMessageNotification отправляет уведомление о новом обращении
func (b *Bot) SendContactMessageNotification(studentName, messageType, message string) error {
	var icon string
	switch messageType {
	case "complaint":
		icon = "⚠️"
	case "feedback":
		icon = "💬"
	default:
		icon = "❓"
	}

	text := fmt.Sprintf(`%s <b>Новое обращение!</b>

👤 <b>От:</b> %s
📂 <b>Тип:</b> %s

💭 <b>Сообщение:</b>
%s`, icon, studentName, messageType, message)

	return b.SendMessage(text)
}
