package domain

import "time"

type Like struct {
	UserID    UserID
	ProductID ID
	CreatedAt time.Time
}

func NewLike(userID UserID, productID ID) *Like {
	return &Like{UserID: userID, ProductID: productID, CreatedAt: time.Now()}
}
