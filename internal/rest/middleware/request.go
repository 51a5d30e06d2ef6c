package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)

	// Cart endpoints identify anonymous shoppers by a client-generated
	// session token carried in a header.
	if sessionID := c.GetHeader(types.HeaderSessionID); sessionID != "" {
		ctx = types.SetSessionID(ctx, sessionID)
	}

	c.Request = c.Request.WithContext(ctx)
	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}
