package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review - отзыв пользователя на гиг.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GigID   string             `bson:"gig_id" json:"gig_id" validate:"required" desc:"Gig id"`
	UserID  string             `bson:"user_id" json:"user_id" validate:"required" desc:"Reviewer user id"`
	Rating  int                `bson:"rating" json:"rating" validate:"required,gte=1,lte=5" desc:"Rating 1-5"`
	Comment *string            `bson:"comment,omitempty" json:"comment,omitempty" desc:"Optional feedback"`
}
