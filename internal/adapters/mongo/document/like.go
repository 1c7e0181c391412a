package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LikeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	ProductID primitive.ObjectID `bson:"product_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (LikeDocument) CollectionName() string { return "likes" }
