package contextkeys

import (
	"context"

	"gorm.io/gorm"
)

type contextKey string

// DB - ключ *gorm.DB в context запроса и в gin.Context
const DB = contextKey("portfolio.db")

// WithTx привязывает транзакцию к context запроса, DBMiddleware предпочтет ее пулу
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, DB, tx)
}

func TxFrom(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(DB).(*gorm.DB)
	return tx, ok && tx != nil
}
