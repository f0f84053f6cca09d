package dto

import "techindia_backend/internal/models"

// CreateReviewRequest - payload создания отзыва.
// Rating - указатель: ноль должен падать на 'gte=1', а не на 'required'.
type CreateReviewRequest struct {
	GigID   string  `json:"gig_id" validate:"required"`
	UserID  string  `json:"user_id" validate:"required"`
	Rating  *int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment *string `json:"comment" validate:"omitempty"`
}

func (r *CreateReviewRequest) ToModel() *models.Review {
	return &models.Review{
		GigID:   r.GigID,
		UserID:  r.UserID,
		Rating:  *r.Rating,
		Comment: r.Comment,
	}
}
