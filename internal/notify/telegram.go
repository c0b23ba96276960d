package notify

import (
	"fmt"
	"strings"

	"github.com/spicybites/pos/internal/payment"
	"github.com/spicybites/pos/pkg/errs"
	"github.com/spicybites/pos/pkg/format"
	"gopkg.in/telebot.v4"
)

// TelegramNotifier pushes a receipt message to a Telegram chat after every
// committed sale.
type TelegramNotifier struct {
	bot    *telebot.Bot
	chatID int64
}

func NewTelegramNotifier(apiKey string, chatID int64) (*TelegramNotifier, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("telebot.NewBot: %w", err)
	}

	return &TelegramNotifier{
		bot:    b,
		chatID: chatID,
	}, nil
}

func (n *TelegramNotifier) SaleProcessed(receipt *payment.Receipt) error {
	if _, err := n.bot.Send(&telebot.Chat{ID: n.chatID},
		receiptText(receipt),
		&telebot.SendOptions{ParseMode: telebot.ModeHTML},
	); err != nil {
		return errs.NewStack(err)
	}

	return nil
}

func receiptText(r *payment.Receipt) string {
	var b strings.Builder

	b.WriteString("🧾 <b>Spicy Bites Receipt</b>\n")
	fmt.Fprintf(&b, "Receipt: %s\n", r.ReceiptID)
	fmt.Fprintf(&b, "Processed by: %s\n", r.ProcessedBy)
	fmt.Fprintf(&b, "Customer: %s\n", r.CustomerName)
	fmt.Fprintf(&b, "Subtotal: %s\n", format.Money(r.Subtotal))
	if r.PromoCode != "" {
		fmt.Fprintf(&b, "Promo discount: %s (code: %s)\n", format.Money(r.PromoDiscount), r.PromoCode)
	}
	if r.PointsRedeemed > 0 {
		fmt.Fprintf(&b, "Loyalty redeemed: %s -> %s\n", format.Points(r.PointsRedeemed), format.Money(r.RedeemValue))
	}
	fmt.Fprintf(&b, "Final total: <b>%s</b>\n", format.Money(r.FinalTotal))
	fmt.Fprintf(&b, "Points earned: %s\n", format.Points(r.PointsEarned))
	fmt.Fprintf(&b, "New loyalty balance: %s", format.Points(r.NewBalance))

	return b.String()
}
