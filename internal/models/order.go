package models

// FlowerRef identifies the ordered flower inside an order payload. The SPA
// sends the full catalog record; only id and name are used here.
type FlowerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TelegramUser is the contact identity sent by the embedded Telegram client.
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// OrderRequest is the inbound order payload. Exactly one contact method is
// expected: Phone on the web path, TgUser on the embedded-client path.
// Orders are never persisted; the request lives only for one dispatch.
type OrderRequest struct {
	Flower     FlowerRef     `json:"flower"`
	Quantity   int           `json:"quantity"`
	TotalPrice int           `json:"totalPrice"`
	Phone      string        `json:"phone"`
	TgUser     *TelegramUser `json:"tgUser"`
}
