package document

import (
	"time"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

type UserDocument struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	BirthDate time.Time `bson:"birth_date"`
	Gender    string    `bson:"gender"`
	CreatedAt time.Time `bson:"created_at"`
}

func (UserDocument) CollectionName() string { return "users" }

func (doc *UserDocument) ToDomain() *domain.User {
	return &domain.User{
		ID:        domain.UserID(doc.ID),
		Email:     doc.Email,
		BirthDate: doc.BirthDate,
		Gender:    domain.Gender(doc.Gender),
		CreatedAt: doc.CreatedAt,
	}
}

func ToUserDocument(u *domain.User) *UserDocument {
	return &UserDocument{
		ID:        string(u.ID),
		Email:     u.Email,
		BirthDate: u.BirthDate,
		Gender:    string(u.Gender),
		CreatedAt: u.CreatedAt,
	}
}
