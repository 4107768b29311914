package update_status

// UpdateStatusRequest HTTP request model
// Статус применяется напрямую, без проверки перехода машиной состояний
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
