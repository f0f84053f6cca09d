package dto

import "techindia_backend/internal/models"

// CreateGigRequest - payload для POST /gigs.
// Price - указатель, чтобы нулевая цена проходила 'required'.
type CreateGigRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	SellerID    string   `json:"seller_id" validate:"required"`
	Tags        []string `json:"tags" validate:"omitempty"`
	CoverImage  *string  `json:"cover_image" validate:"omitempty"`
}

// ToModel собирает Gig с дефолтами: пустые теги вместо nil,
// нулевой рейтинг и счетчик отзывов.
func (r *CreateGigRequest) ToModel() *models.Gig {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return &models.Gig{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Price:        *r.Price,
		SellerID:     r.SellerID,
		Tags:         tags,
		CoverImage:   r.CoverImage,
		Rating:       0,
		ReviewsCount: 0,
	}
}

// ListGigsQuery - параметры выборки для GET /gigs.
type ListGigsQuery struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Limit    int    `form:"limit,default=20" validate:"omitempty,gte=1"`
}

// CreateGigResponse - ответ на успешное создание гига.
type CreateGigResponse struct {
	ID string `json:"id"`
}
