package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Gig - продаваемая услуга, созданная продавцом.
// Rating и ReviewsCount обновляются внешними процессами, не этим сервисом.
type Gig struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title" validate:"required" desc:"Gig title"`
	Description  string             `bson:"description" json:"description" validate:"required" desc:"Detailed description of the service"`
	Category     string             `bson:"category" json:"category" validate:"required" desc:"Category of the service, e.g., Design, Web, AI"`
	Price        float64            `bson:"price" json:"price" validate:"required,gte=0" desc:"Base price"`
	SellerID     string             `bson:"seller_id" json:"seller_id" validate:"required" desc:"User id of the seller"`
	Tags         []string           `bson:"tags" json:"tags" default:"[]" desc:"Tags for search"`
	CoverImage   *string            `bson:"cover_image,omitempty" json:"cover_image,omitempty" desc:"Cover image URL"`
	Rating       float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5" default:"0" desc:"Average rating"`
	ReviewsCount int                `bson:"reviews_count" json:"reviews_count" validate:"gte=0" default:"0" desc:"Number of reviews"`
}
