package shopservice

// Shop модель салона из ShopService
type Shop struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
	// OperatingTime недельное расписание: день недели ->
	// "closed" либо "HH:MM-HH:MM". День может отсутствовать.
	OperatingTime map[string]string `json:"operating_time"`
}

// Treatment модель процедуры из ShopService
type Treatment struct {
	ID              string `json:"id"`
	ShopID          string `json:"shop_id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ErrorResponse модель ошибки от ShopService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
