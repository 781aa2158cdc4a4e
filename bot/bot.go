// Package bot is the Telegram storefront: browse the menu, build a cart and
// place a cash-on-delivery order against the ordering backend.
package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"quality-fastfood/client"
	"quality-fastfood/config"
	"quality-fastfood/models"
	"quality-fastfood/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Checkout conversation stages.
const (
	stageName    = "name"
	stagePhone   = "phone"
	stageAddress = "address"
	stageConfirm = "confirm"
)

const menuCacheTTL = 5 * time.Minute

// session is the per-chat storefront state: the cart, the submission flow
// and the checkout conversation in progress.
type session struct {
	cart  *services.Cart
	flow  *services.CheckoutFlow
	stage string
	form  services.DeliveryForm
}

type Bot struct {
	api     *tgbotapi.BotAPI
	cfg     *config.Config
	backend *client.Client

	sessions   map[int64]*session
	sessionsMu sync.Mutex

	menu        *models.MenuResponse
	menuFetched time.Time
	menuMu      sync.Mutex
}

func New(cfg *config.Config, backend *client.Client) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		cfg:      cfg,
		backend:  backend,
		sessions: make(map[int64]*session),
	}, nil
}

func (b *Bot) session(chatID int64) *session {
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()
	s, ok := b.sessions[chatID]
	if !ok {
		cart := services.NewCart()
		s = &session{
			cart: cart,
			flow: services.NewCheckoutFlow(cart, b.backend),
		}
		b.sessions[chatID] = s
	}
	return s
}

func (b *Bot) setBotCommands() error {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Welcome and menu"},
		tgbotapi.BotCommand{Command: "menu", Description: "Browse the menu"},
		tgbotapi.BotCommand{Command: "cart", Description: "View your cart"},
		tgbotapi.BotCommand{Command: "orders", Description: "Look up an order by id"},
	)
	_, err := b.api.Request(cmds)
	return err
}

func (b *Bot) Start() {
	_ = b.setBotCommands()
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		chatID := msg.Chat.ID
		text := strings.TrimSpace(msg.Text)

		switch {
		case text == "/start":
			b.handleStart(chatID)
		case text == "/menu":
			b.sendCategories(chatID)
		case text == "/cart":
			b.sendCartPanel(chatID)
		case strings.HasPrefix(text, "/orders"):
			b.handleOrderLookup(chatID, text)
		default:
			b.handleCheckoutInput(chatID, text)
		}
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

func (b *Bot) sendWithInline(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

// getMenu fetches the menu from the backend, caching it briefly.
func (b *Bot) getMenu(ctx context.Context) (*models.MenuResponse, error) {
	b.menuMu.Lock()
	defer b.menuMu.Unlock()
	if b.menu != nil && time.Since(b.menuFetched) < menuCacheTTL {
		return b.menu, nil
	}
	menu, err := b.backend.GetMenu(ctx)
	if err != nil {
		if b.menu != nil {
			return b.menu, nil // serve stale menu over an error
		}
		return nil, err
	}
	b.menu = menu
	b.menuFetched = time.Now()
	return menu, nil
}

func (b *Bot) findMenuItem(ctx context.Context, itemID int64) *models.MenuItem {
	menu, err := b.getMenu(ctx)
	if err != nil {
		return nil
	}
	for _, cat := range menu.Categories {
		for i := range cat.Items {
			if cat.Items[i].ID == itemID {
				item := cat.Items[i]
				return &item
			}
		}
	}
	return nil
}

func (b *Bot) handleStart(chatID int64) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍔 View Menu", "menu"),
		),
	)
	b.sendWithInline(chatID, "Welcome to *Quality Fast Food* — Mumbai street food, delivered hot!\n\nBrowse the menu, build your cart and pay cash on delivery.", kb)
}

func (b *Bot) sendCategories(chatID int64) {
	ctx := context.Background()
	menu, err := b.getMenu(ctx)
	if err != nil {
		b.send(chatID, "Could not load the menu right now, please try again.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range menu.Categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(cat.Category, "cat:"+cat.Category),
		))
	}
	s := b.session(chatID)
	if !s.cart.Empty() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🛒 Cart (%d)", s.cart.TotalItems()), "cart"),
		))
	}
	b.sendWithInline(chatID, "📋 *Menu*\n\nPick a category:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) sendCategoryMenu(chatID int64, category string) {
	ctx := context.Background()
	menu, err := b.getMenu(ctx)
	if err != nil {
		b.send(chatID, "Could not load the menu right now, please try again.")
		return
	}

	var items []models.MenuItem
	for _, cat := range menu.Categories {
		if cat.Category == category {
			items = cat.Items
			break
		}
	}
	if items == nil {
		b.sendCategories(chatID)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range items {
		label := fmt.Sprintf("%s — %s", item.Name, services.FormatPrice(item.Price))
		if item.IsBestseller {
			label = "⭐ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "add:"+strconv.FormatInt(item.ID, 10)),
		))
	}
	s := b.session(chatID)
	if !s.cart.Empty() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 View Cart", "cart"),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Categories", "menu"),
	))

	text := fmt.Sprintf("📋 *%s*\n\nTap an item to add it to your cart:", category)
	if !s.cart.Empty() {
		text += "\n\n" + b.cartSummary(s.cart)
	}
	b.sendWithInline(chatID, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// cartSummary renders the cart lines with subtotal, delivery fee and total.
func (b *Bot) cartSummary(cart *services.Cart) string {
	var sb strings.Builder
	sb.WriteString("🛒 *Your cart:*\n")
	for _, it := range cart.Items() {
		sb.WriteString(fmt.Sprintf("• %s × %d — %s\n", it.Name, it.Qty, services.FormatPrice(it.Price*int64(it.Qty))))
	}
	subtotal := cart.Subtotal()
	fee := services.DeliveryFee(subtotal, b.cfg.Delivery.FreeAbove, b.cfg.Delivery.Fee)
	sb.WriteString(fmt.Sprintf("\nSubtotal: %s", services.FormatPrice(subtotal)))
	if fee == 0 {
		sb.WriteString("\nDelivery: FREE")
	} else {
		sb.WriteString(fmt.Sprintf("\nDelivery: %s", services.FormatPrice(fee)))
	}
	sb.WriteString(fmt.Sprintf("\n*Total: %s*", services.FormatPrice(subtotal+fee)))
	return sb.String()
}

func (b *Bot) sendCartPanel(chatID int64) {
	s := b.session(chatID)
	if s.cart.Empty() {
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🍔 Browse Menu", "menu"),
			),
		)
		b.sendWithInline(chatID, "Your cart is empty. Add items to proceed with checkout.", kb)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range s.cart.Items() {
		id := strconv.FormatInt(it.ItemID, 10)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", "dec:"+id),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s ×%d", it.Name, it.Qty), "noop"),
			tgbotapi.NewInlineKeyboardButtonData("➕", "inc:"+id),
			tgbotapi.NewInlineKeyboardButtonData("🗑", "del:"+id),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Checkout", "checkout"),
			tgbotapi.NewInlineKeyboardButtonData("🧹 Clear", "clear"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Menu", "menu"),
		),
	)
	b.sendWithInline(chatID, b.cartSummary(s.cart), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	data := cq.Data

	b.api.Request(tgbotapi.NewCallback(cq.ID, ""))

	switch {
	case data == "menu":
		b.sendCategories(chatID)
	case data == "cart":
		b.sendCartPanel(chatID)
	case data == "clear":
		s := b.session(chatID)
		s.cart.Clear()
		b.send(chatID, "Cart cleared.")
		b.sendCategories(chatID)
	case data == "checkout":
		b.startCheckout(chatID)
	case data == "place_order":
		b.placeOrder(chatID)
	case data == "cancel_checkout":
		s := b.session(chatID)
		s.stage = ""
		s.form = services.DeliveryForm{}
		b.sendCartPanel(chatID)
	case strings.HasPrefix(data, "cat:"):
		b.sendCategoryMenu(chatID, strings.TrimPrefix(data, "cat:"))
	case strings.HasPrefix(data, "add:"):
		b.addToCart(chatID, strings.TrimPrefix(data, "add:"), cq.Message.MessageID)
	case strings.HasPrefix(data, "inc:"):
		b.changeQuantity(chatID, strings.TrimPrefix(data, "inc:"), +1)
	case strings.HasPrefix(data, "dec:"):
		b.changeQuantity(chatID, strings.TrimPrefix(data, "dec:"), -1)
	case strings.HasPrefix(data, "del:"):
		if id, err := strconv.ParseInt(strings.TrimPrefix(data, "del:"), 10, 64); err == nil {
			s := b.session(chatID)
			s.cart.Remove(id)
		}
		b.sendCartPanel(chatID)
	}
}

func (b *Bot) addToCart(chatID int64, idStr string, editMsgID int) {
	itemID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return
	}
	ctx := context.Background()
	item := b.findMenuItem(ctx, itemID)
	if item == nil {
		b.send(chatID, "That item is no longer on the menu.")
		return
	}

	s := b.session(chatID)
	s.cart.AddItem(services.CartItem{
		ItemID:   item.ID,
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
		Qty:      1,
	})

	var rows [][]tgbotapi.InlineKeyboardButton
	menu, _ := b.getMenu(ctx)
	if menu != nil {
		for _, cat := range menu.Categories {
			if cat.Category != item.Category {
				continue
			}
			for _, it := range cat.Items {
				label := fmt.Sprintf("%s — %s", it.Name, services.FormatPrice(it.Price))
				if it.IsBestseller {
					label = "⭐ " + label
				}
				rows = append(rows, tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData(label, "add:"+strconv.FormatInt(it.ID, 10)),
				))
			}
		}
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 View Cart", "cart"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Categories", "menu"),
		),
	)

	text := fmt.Sprintf("📋 *%s*\n\n✅ %s added.\n\n%s", item.Category, item.Name, b.cartSummary(s.cart))
	edit := tgbotapi.NewEditMessageText(chatID, editMsgID, text)
	edit.ParseMode = "Markdown"
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	edit.ReplyMarkup = &kb
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("edit error: %v", err)
	}
}

func (b *Bot) changeQuantity(chatID int64, idStr string, delta int) {
	itemID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return
	}
	s := b.session(chatID)
	for _, it := range s.cart.Items() {
		if it.ItemID == itemID {
			s.cart.SetQuantity(itemID, it.Qty+delta)
			break
		}
	}
	b.sendCartPanel(chatID)
}

// startCheckout begins the delivery-details conversation: name, then phone,
// then address, each validated on entry.
func (b *Bot) startCheckout(chatID int64) {
	s := b.session(chatID)
	if s.cart.Empty() {
		b.send(chatID, "Your cart is empty. Add items to proceed with checkout.")
		return
	}
	s.stage = stageName
	s.form = services.DeliveryForm{}
	b.send(chatID, "Let's get your order delivered! What's your name?")
}

func (b *Bot) handleCheckoutInput(chatID int64, text string) {
	s := b.session(chatID)
	if s.stage == "" || text == "" {
		return
	}

	switch s.stage {
	case stageName:
		if msg, ok := fieldError(text, "", ""); !ok {
			b.send(chatID, msg+" Please try again.")
			return
		}
		s.form.CustomerName = text
		s.stage = stagePhone
		b.send(chatID, "Got it! What's your phone number? (10-digit Indian mobile)")
	case stagePhone:
		if msg, ok := fieldError(s.form.CustomerName, text, ""); !ok {
			b.send(chatID, msg+" Please try again.")
			return
		}
		s.form.Phone = text
		s.stage = stageAddress
		b.send(chatID, "And your delivery address? (at least 10 characters)")
	case stageAddress:
		if msg, ok := fieldError(s.form.CustomerName, s.form.Phone, text); !ok {
			b.send(chatID, msg+" Please try again.")
			return
		}
		s.form.Address = text
		s.stage = stageConfirm
		b.sendOrderConfirm(chatID)
	}
}

// fieldError validates the filled fields so far and returns the first error
// for the field just entered. Empty earlier fields are skipped.
func fieldError(name, phone, address string) (string, bool) {
	errs := services.ValidateDeliveryForm(name, phone, address)
	switch {
	case address != "":
		if msg, bad := errs["address"]; bad {
			return msg + ".", false
		}
	case phone != "":
		if msg, bad := errs["phone"]; bad {
			return msg + ".", false
		}
	default:
		if msg, bad := errs["customer_name"]; bad {
			return msg + ".", false
		}
	}
	return "", true
}

func (b *Bot) sendOrderConfirm(chatID int64) {
	s := b.session(chatID)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Place Order", "place_order"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "cancel_checkout"),
		),
	)
	phone, _ := services.ValidatePhone(s.form.Phone) // validated at entry
	text := fmt.Sprintf(
		"%s\n\n*Deliver to:*\n%s\n%s\n%s\n\nCash on delivery. Place the order?",
		b.cartSummary(s.cart),
		strings.TrimSpace(s.form.CustomerName),
		services.FormatPhone(phone),
		strings.TrimSpace(s.form.Address),
	)
	b.sendWithInline(chatID, text, kb)
}

func (b *Bot) placeOrder(chatID int64) {
	s := b.session(chatID)
	if s.stage != stageConfirm {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, fieldErrs, err := s.flow.Submit(ctx, s.form)
	if err == services.ErrSubmitInFlight {
		return // ignore double taps while submitting
	}
	if err == services.ErrEmptyCart {
		s.stage = ""
		b.send(chatID, "Your cart is empty. Add items to proceed with checkout.")
		return
	}
	if len(fieldErrs) > 0 {
		// Collected fields were validated on entry, so this is unexpected;
		// restart the conversation.
		s.stage = stageName
		s.form = services.DeliveryForm{}
		b.send(chatID, "Something's off with your details, let's try again. What's your name?")
		return
	}
	if err != nil {
		b.send(chatID, "⚠️ "+err.Error()+"\n\nYour cart is untouched — tap Place Order to retry.")
		return
	}

	s.stage = ""
	s.form = services.DeliveryForm{}
	s.flow.Reset()

	text := fmt.Sprintf(
		"🎉 *Order confirmed!*\n\nOrder ID: `%s`\n%s\nEstimated delivery: %s\n\nCheck it anytime with /orders %s",
		result.OrderID, result.Message, result.EstimatedTime, result.OrderID,
	)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍔 Order Again", "menu"),
		),
	)
	b.sendWithInline(chatID, text, kb)
}

func (b *Bot) handleOrderLookup(chatID int64, text string) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		b.send(chatID, "Usage: /orders <order-id>, e.g. /orders QFF-1A2B3C4D")
		return
	}
	orderID := parts[1]

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	order, err := b.backend.GetOrder(ctx, orderID)
	if err != nil {
		b.send(chatID, "⚠️ "+err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📦 *Order %s* — %s\n\n", order.ID, order.Status))
	for _, it := range order.Items {
		sb.WriteString(fmt.Sprintf("• %s × %d — %s\n", it.Name, it.Quantity, services.FormatPrice(it.Price*int64(it.Quantity))))
	}
	sb.WriteString(fmt.Sprintf("\n*Total: %s*\n", services.FormatPrice(order.TotalPrice)))
	sb.WriteString(fmt.Sprintf("Placed: %s", order.CreatedAt.Format("2 Jan 2006 15:04")))

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}
