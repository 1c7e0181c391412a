package document

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document is a persisted shape that knows which collection holds it.
type Document interface {
	CollectionName() string
}

// ObjectIDsFromHex converts ids and drops the ones that are not valid ObjectIDs.
func ObjectIDsFromHex[S ~string](ids []S) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(string(id))
		if err != nil {
			continue
		}
		out = append(out, oid)
	}
	return out
}
