package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"grid-analyzer-go/internal/config"
	"grid-analyzer-go/internal/repository"
	"grid-analyzer-go/pkg/models"
)

// EmailNotifier отправляет сводку завершенного анализа получателям
// из базы данных. Без настроенных SMTP-учетных данных или получателей
// уведомление молча пропускается - анализ от почты не зависит.
type EmailNotifier struct {
	cfg           *config.Config
	recipientRepo repository.RecipientRepository
	logger        *logrus.Logger
}

// NewEmailNotifier создает новый почтовый уведомитель
func NewEmailNotifier(cfg *config.Config, recipientRepo repository.RecipientRepository, logger *logrus.Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:           cfg,
		recipientRepo: recipientRepo,
		logger:        logger,
	}
}

// AnalysisComplete отправляет письмо со сводкой запуска анализа
func (n *EmailNotifier) AnalysisComplete(runID string, stats models.OverallStats, regions []models.RegionInfo) {
	if n.cfg.SMTP.User == "" || n.cfg.SMTP.Password == "" {
		n.logger.Debug("SMTP-учетные данные не настроены, пропускаем уведомление")
		return
	}

	recipients, err := n.recipientRepo.List()
	if err != nil {
		n.logger.Errorf("Ошибка получения списка получателей: %v", err)
		return
	}
	if len(recipients) == 0 {
		n.logger.Debug("Получатели не настроены, пропускаем уведомление")
		return
	}

	addresses := make([]string, len(recipients))
	for i, r := range recipients {
		addresses[i] = r.Email
	}

	body := n.buildBody(runID, stats, regions)
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", n.cfg.SMTP.Sender),
		fmt.Sprintf("To: %s", strings.Join(addresses, ", ")),
		"Subject: Grid Map Analysis Complete",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.cfg.SMTP.Server, n.cfg.SMTP.Port)
	auth := smtp.PlainAuth("", n.cfg.SMTP.User, n.cfg.SMTP.Password, n.cfg.SMTP.Server)

	if err := smtp.SendMail(addr, auth, n.cfg.SMTP.Sender, addresses, []byte(msg)); err != nil {
		n.logger.Errorf("Ошибка отправки уведомления: %v", err)
		return
	}

	n.logger.Infof("Уведомление о запуске %s отправлено %d получателям", runID, len(addresses))
}

// buildBody собирает текстовую сводку запуска
func (n *EmailNotifier) buildBody(runID string, stats models.OverallStats, regions []models.RegionInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Анализ карты дефектов завершен.\n\n")
	fmt.Fprintf(&b, "Запуск: %s\n", runID)
	fmt.Fprintf(&b, "Панелей: %d\n", stats.PanelCount)
	fmt.Fprintf(&b, "Дефектов: %d (отброшено выбросов: %d)\n", stats.InputDefects, stats.OutliersRemoved)
	fmt.Fprintf(&b, "Обнаружено регионов: %d\n", stats.TotalRegions)

	if len(regions) > 0 {
		fmt.Fprintf(&b, "\nРегионы по убыванию очищенных дефектов:\n")
		for _, region := range regions {
			fmt.Fprintf(&b, "  #%d: total=%.0f, ячеек=%d, среднее=%.2f [%s]\n",
				region.RegionID, region.TotalDefectsCleaned, region.SubgridCount,
				region.AvgDefectsPerGrid, strings.Join(region.Subgrids, " "))
		}
	}

	return b.String()
}
