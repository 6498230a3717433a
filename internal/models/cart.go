package models

type CartItem struct {
	Qty      int     `json:"qty"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type CartSummary struct {
	Total float64    `json:"total"`
	Tax   *float64   `json:"tax,omitempty"`
	Items []CartItem `json:"items,omitempty"`
}

// EmptyCart is the cart a session holds after a completed checkout.
func EmptyCart() CartSummary {
	tax := 0.0
	return CartSummary{
		Total: 0,
		Tax:   &tax,
		Items: []CartItem{},
	}
}

// ItemsSubtotal sums the item subtotals. It is not guaranteed to match Total.
func (c CartSummary) ItemsSubtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Subtotal
	}
	return sum
}

func (c CartSummary) Clone() CartSummary {
	out := CartSummary{Total: c.Total}
	if c.Tax != nil {
		tax := *c.Tax
		out.Tax = &tax
	}
	if c.Items != nil {
		out.Items = make([]CartItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}

type AddToCartRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type CartView struct {
	Identity SessionIdentity `json:"identity"`
	Cart     CartSummary     `json:"cart"`
	Message  string          `json:"message,omitempty"`
}

type PaymentResult struct {
	OrderID string      `json:"orderid"`
	Message string      `json:"message"`
	Cart    CartSummary `json:"cart"`
}
