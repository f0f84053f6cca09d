package dto

import "techindia_backend/internal/models"

// CreateOrderRequest - payload создания заказа. Переходы статусов
// сервис не контролирует, проверяется только сам словарь значений.
type CreateOrderRequest struct {
	GigID        string  `json:"gig_id" validate:"required"`
	BuyerID      string  `json:"buyer_id" validate:"required"`
	SellerID     string  `json:"seller_id" validate:"required"`
	Status       string  `json:"status" validate:"omitempty,is-order-status"`
	Requirements *string `json:"requirements" validate:"omitempty"`
}

func (r *CreateOrderRequest) ToModel() *models.Order {
	status := models.OrderStatus(r.Status)
	if status == "" {
		status = models.OrderStatusPending
	}

	return &models.Order{
		GigID:        r.GigID,
		BuyerID:      r.BuyerID,
		SellerID:     r.SellerID,
		Status:       status,
		Requirements: r.Requirements,
	}
}
