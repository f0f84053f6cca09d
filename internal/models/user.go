package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User - участник площадки (покупатель или продавец).
// Создается при регистрации; этим сервисом не мутируется.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required" desc:"Full name"`
	Email     string             `bson:"email" json:"email" validate:"required,email" desc:"Email address"`
	Role      string             `bson:"role" json:"role" validate:"required" desc:"buyer or seller"`
	Bio       *string            `bson:"bio,omitempty" json:"bio,omitempty" desc:"Short bio"`
	Skills    []string           `bson:"skills" json:"skills" default:"[]" desc:"Skills list"`
	Rating    float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5" default:"0" desc:"Average rating"`
	AvatarURL *string            `bson:"avatar_url,omitempty" json:"avatar_url,omitempty" desc:"Profile image URL"`
}
