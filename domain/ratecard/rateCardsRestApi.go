package ratecard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var RateCardsApiRoot = "/v1/rate-cards"

func RegisterRateCardsRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	rateCards := r.Group(RateCardsApiRoot, middleWares...)
	rateCards.GET("", HandleQueryRateCards)
}

func HandleQueryRateCards(c *gin.Context) {
	result, err := QueryRateCardsFunc()
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
