package services

import "quality-fastfood/models"

// MaxItemQty caps how many units of one menu item a single order may carry.
const MaxItemQty = 20

type CartItem struct {
	ItemID   int64
	Name     string
	Category string
	Price    int64 // snapshot at add time, not re-fetched
	Qty      int
}

// Cart is the in-memory order draft for one session. Lines keep insertion
// order and there is at most one line per menu item. Callers synchronize
// access; the bot keeps one Cart per chat behind its own lock.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges the item into the cart. An existing line keeps its name,
// category and price and only grows its quantity, capped at MaxItemQty.
func (c *Cart) AddItem(item CartItem) {
	if item.Qty < 1 {
		item.Qty = 1
	}
	if item.Qty > MaxItemQty {
		item.Qty = MaxItemQty
	}
	for i := range c.items {
		if c.items[i].ItemID == item.ItemID {
			qty := c.items[i].Qty + item.Qty
			if qty > MaxItemQty {
				qty = MaxItemQty
			}
			c.items[i].Qty = qty
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove drops the line for itemID. Absent id is a no-op.
func (c *Cart) Remove(itemID int64) {
	for i := range c.items {
		if c.items[i].ItemID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity, capped at MaxItemQty. A quantity
// below 1 removes the line. Absent id is a no-op.
func (c *Cart) SetQuantity(itemID int64, qty int) {
	if qty < 1 {
		c.Remove(itemID)
		return
	}
	if qty > MaxItemQty {
		qty = MaxItemQty
	}
	for i := range c.items {
		if c.items[i].ItemID == itemID {
			c.items[i].Qty = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the cart lines in display order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.items {
		total += it.Qty
	}
	return total
}

// Subtotal is price x quantity over all lines, before delivery fee.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, it := range c.items {
		total += it.Price * int64(it.Qty)
	}
	return total
}

// Snapshot projects the cart into order lines, in cart order. The result
// does not alias the cart: later mutations leave it untouched.
func (c *Cart) Snapshot() []models.OrderItem {
	out := make([]models.OrderItem, len(c.items))
	for i, it := range c.items {
		out[i] = models.OrderItem{
			ItemID:   it.ItemID,
			Name:     it.Name,
			Category: it.Category,
			Price:    it.Price,
			Quantity: it.Qty,
		}
	}
	return out
}
