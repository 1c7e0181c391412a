package document

import (
	"time"

	"github.com/rafaelleal24/commerce/internal/adapters/outbox"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OutboxDocument keeps the event body as a string so the relay hands the
// broker the exact bytes that were committed.
type OutboxDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EventName  string             `bson:"event_name"`
	EntityName string             `bson:"entity_name"`
	EventData  string             `bson:"event_data"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (OutboxDocument) CollectionName() string { return "outbox" }

func (doc *OutboxDocument) ToEntry() outbox.Entry {
	return outbox.Entry{
		ID:         doc.ID.Hex(),
		EventName:  doc.EventName,
		EntityName: doc.EntityName,
		EventData:  []byte(doc.EventData),
		CreatedAt:  doc.CreatedAt.UTC(),
	}
}

func ToOutboxDocument(entry outbox.Entry) *OutboxDocument {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return &OutboxDocument{
		EventName:  entry.EventName,
		EntityName: entry.EntityName,
		EventData:  string(entry.EventData),
		CreatedAt:  createdAt,
	}
}
