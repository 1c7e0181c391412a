package mongo

import (
	"context"
	"time"

	"github.com/rafaelleal24/commerce/internal/core/port"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const maxCommitTime = 5 * time.Second

type TransactionManager struct {
	client *mongo.Client
	opts   *options.TransactionOptions
}

// NewTransactionManager runs transactions at snapshot isolation on the primary.
// A write conflict on a product or point document aborts and the driver retries fn.
func NewTransactionManager(client *mongo.Client) port.TransactionManager {
	commit := maxCommitTime
	return &TransactionManager{
		client: client,
		opts: options.Transaction().
			SetReadConcern(readconcern.Snapshot()).
			SetWriteConcern(writeconcern.Majority()).
			SetReadPreference(readpref.Primary()).
			SetMaxCommitTime(&commit),
	}
}

// WithTransaction joins the session already carried by ctx, so nested service
// calls commit or abort with the outermost one.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	session, err := tm.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(context.WithoutCancel(ctx))

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	}, tm.opts)
	return err
}
