package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"
)

// TxMiddleware opens one transaction per request and stores it in the gin
// context. After the handler chain returns, the transaction commits on
// success and rolls back when any error was recorded or an error status
// was written. A panic rolls back and re-panics for the recovery layer.
func TxMiddleware(db *gorm.DB) gin.HandlerFunc {
	dbKey := string(contextkeys.DBContextKey)

	return func(c *gin.Context) {
		tx := db.WithContext(c.Request.Context()).Begin()
		if tx.Error != nil {
			logger.CtxWithError(c.Request.Context(), "failed to begin transaction", tx.Error)
			apperrors.HandleError(c, apperrors.ErrDBUnavailable(tx.Error))
			c.Abort()
			return
		}

		c.Set(dbKey, tx)

		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= 400 {
			if err := tx.Rollback().Error; err != nil {
				logger.CtxWithError(c.Request.Context(), "transaction rollback failed", err)
			}
			return
		}

		if err := tx.Commit().Error; err != nil {
			logger.CtxWithError(c.Request.Context(), "transaction commit failed", err)
			// Most handlers have streamed a body by now, in which case the
			// status cannot change and logging is all that is left.
			if !c.Writer.Written() {
				apperrors.HandleError(c, apperrors.ErrDBUnavailable(err))
			}
		}
	}
}
