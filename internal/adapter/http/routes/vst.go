package routes

import (
	"municipal_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVSTSuccess = "/vst-success"
	PathVSTPayment = "/vst-payment"
)

func addVSTRoutes(r gin.IRouter, callbackHandler *handlers.VSTCallbackHandler, transactionHandler *handlers.VSTTransactionHandler) {
	r.POST(PathVSTSuccess, callbackHandler.HandleSuccess)

	payments := r.Group(PathVSTPayment)
	{
		payments.GET("/status", transactionHandler.GetStatus)
		payments.GET("/cleanup-expired", transactionHandler.CleanupExpired)
		payments.GET("/callbacks", transactionHandler.ListCallbacks)
	}
}
