package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order - заказ по конкретному гигу. Ссылочная целостность
// (gig_id, buyer_id, seller_id) на уровне хранилища не проверяется.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GigID        string             `bson:"gig_id" json:"gig_id" validate:"required" desc:"Gig id"`
	BuyerID      string             `bson:"buyer_id" json:"buyer_id" validate:"required" desc:"User id of the buyer"`
	SellerID     string             `bson:"seller_id" json:"seller_id" validate:"required" desc:"User id of the seller"`
	Status       OrderStatus        `bson:"status" json:"status" validate:"omitempty,is-order-status" default:"pending" desc:"pending, in_progress, delivered, completed, cancelled"`
	Requirements *string            `bson:"requirements,omitempty" json:"requirements,omitempty" desc:"Buyer requirements"`
}
