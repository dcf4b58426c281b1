package telegram

import (
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

// Лимиты Telegram на длину текста
const (
	messageLimit = 4096
	captionLimit = 1024
)

// InputVideo видео, которое телеграм скачает сам по URL
type InputVideo struct {
	URL  string
	Name string
}

// Получение ID отправителя сообщения или события
func GetUserID(update telego.Update) int64 {
	if update.Message != nil {
		if update.Message.From != nil && !update.Message.From.IsBot {
			return update.Message.From.ID
		}

		return update.Message.Chat.ID
	}

	if update.CallbackQuery != nil {
		return update.CallbackQuery.From.ID
	}

	return 0
}

// Получение ID чата
func GetChatID(update telego.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}

	return 0
}

// Получение текста сообщения
func GetMessageText(update telego.Update) string {
	if update.Message != nil {
		return update.Message.Text
	}

	return ""
}

// Получение ID текущего сообщения
func GetCurrentMessageID(update telego.Update) int {
	if update.Message != nil && update.Message.From != nil && !update.Message.From.IsBot {
		return update.Message.MessageID
	}

	return 0
}

// Отправка сообщения, с InputVideo в args уходит видео с подписью
func SendMessage(ctx *th.Context, isChat, isSendReplay bool, update telego.Update, text string, args ...any) int {
	var inputFile *InputVideo

	sendChatID := GetUserID(update)
	if isChat {
		sendChatID = GetChatID(update)
	}

	messageParam := &telego.SendMessageParams{
		ChatID:    tu.ID(sendChatID),
		Text:      utils.Truncate(text, messageLimit),
		ParseMode: "HTML",
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	}

	if isSendReplay {
		messageParam.ReplyParameters = &telego.ReplyParameters{
			MessageID:                GetCurrentMessageID(update),
			ChatID:                   tu.ID(sendChatID),
			AllowSendingWithoutReply: true,
		}
	}

	for _, v := range args {
		switch arg := v.(type) {
		case telego.ReplyMarkup:
			messageParam.ReplyMarkup = arg
		case InputVideo:
			inputFile = &arg
		}
	}

	if inputFile != nil {
		msg, err := ctx.Bot().SendVideo(ctx, &telego.SendVideoParams{
			ChatID:          messageParam.ChatID,
			ReplyParameters: messageParam.ReplyParameters,
			ReplyMarkup:     messageParam.ReplyMarkup,
			Caption:         utils.Truncate(text, captionLimit),
			ParseMode:       messageParam.ParseMode,
			Video:           tu.FileFromURL(inputFile.URL),
		})
		if err != nil {
			utils.Log.WithField("file", inputFile.Name).Error(err)

			return 0
		}

		return msg.MessageID
	}

	msg, err := ctx.Bot().SendMessage(ctx, messageParam)
	if err != nil {
		utils.Log.Error(err)

		return 0
	}

	return msg.MessageID
}
