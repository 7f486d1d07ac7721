package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "debris-analyzer/internal/application"
	"debris-analyzer/internal/container"
	"debris-analyzer/internal/domain/entity"
	"debris-analyzer/internal/domain/port"
)

const (
	msgStart = `👋 Привет! Я бот для поиска космического мусора на снимках.

📸 Отправьте мне снимок, и я найду на нём объекты мусора.
🧭 Затем команда /route построит маршрут сбора.

📋 Команды:
/analyze — начать анализ снимка
/route — маршрут по последнему анализу
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте снимок
2️⃣ Бот найдёт объекты и подсветит их (зелёные можно забрать)
3️⃣ Команда /route построит маршрут от базы по доступным объектам

📋 Команды:
/analyze — начать анализ
/route — построить маршрут
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте снимок для поиска мусора."
	msgCancelled       = "❌ Операция отменена. Отправьте /analyze для нового анализа."
	msgSendPhoto       = "📸 Пожалуйста, отправьте снимок для поиска мусора."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте другой снимок."
	msgNoAnalysis      = "ℹ️ Сначала отправьте снимок для анализа."
	msgNoFeasible      = "ℹ️ Среди найденных объектов нет доступных для сбора."
	msgPlanError       = "⚠️ Не удалось построить маршрут."
)

// Bot представляет Telegram-бота
type Bot struct {
	api       *tgbotapi.BotAPI
	users     *app.UserService
	analysis  *app.AnalysisService
	planning  *app.PlanningService
	describer port.Describer
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:       api,
		users:     c.UserService,
		analysis:  c.AnalysisService,
		planning:  c.PlanningService,
		describer: c.Describer,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.setState(ctx, userID, chatID, entity.StateMainMenu)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "analyze", "check":
		if _, err := b.users.BeginAnalysis(ctx, userID, chatID); err != nil {
			log.Printf("Error updating user %d: %v", userID, err)
		}
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "route":
		b.handleRoute(ctx, userID, chatID)

	case "cancel":
		if _, err := b.users.Cancel(ctx, userID, chatID); err != nil {
			log.Printf("Error updating user %d: %v", userID, err)
		}
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handlePhoto анализирует снимок и отправляет сводку с подсветкой
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	b.setState(ctx, userID, chatID, entity.StateProcessing)
	b.sendMessage(chatID, msgProcessing)

	// Берём файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.fail(ctx, userID, chatID, msgProcessingError)
		return
	}

	out, err := b.analysis.ProcessPhoto(ctx, imageData)
	if err != nil {
		log.Printf("Error analyzing photo: %v", err)
		b.fail(ctx, userID, chatID, msgProcessingError)
		return
	}

	if _, err := b.users.RememberAnalysis(ctx, userID, chatID, out.Result); err != nil {
		log.Printf("Error saving analysis for user %d: %v", userID, err)
	}

	summary := b.describer.DescribeAnalysis(out.Result)
	if len(out.Highlighted) == 0 {
		b.sendMessage(chatID, summary)
		return
	}

	pic := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "debris.jpg", Bytes: out.Highlighted})
	pic.Caption = summary
	if _, err := b.api.Send(pic); err != nil {
		log.Printf("Error sending photo: %v", err)
		b.sendMessage(chatID, summary)
	}
}

// handleRoute строит маршрут по доступным объектам последнего анализа
func (b *Bot) handleRoute(ctx context.Context, userID, chatID int64) {
	user, err := b.users.Get(ctx, userID, chatID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}
	if user.LastAnalysis == nil {
		b.sendMessage(chatID, msgNoAnalysis)
		return
	}

	result, err := b.planning.PlanFeasible(ctx, user.LastAnalysis)
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		b.sendMessage(chatID, msgNoFeasible)
	case err != nil:
		log.Printf("Error planning route: %v", err)
		b.sendMessage(chatID, msgPlanError)
	default:
		b.sendMessage(chatID, b.describer.DescribePlan(result))
	}
}

func (b *Bot) fail(ctx context.Context, userID, chatID int64, text string) {
	b.sendMessage(chatID, text)
	b.setState(ctx, userID, chatID, entity.StateMainMenu)
}

func (b *Bot) setState(ctx context.Context, userID, chatID int64, state entity.UserState) {
	if _, err := b.users.SetState(ctx, userID, chatID, state); err != nil {
		log.Printf("Error updating user %d: %v", userID, err)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
