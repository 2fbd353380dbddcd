package ratecard_test

import (
	"net/http"
	"net/http/httptest"
	"signoff/bizerror"
	"signoff/domain"
	"signoff/domain/ratecard"
	"signoff/testinfra"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"
)

func TestRateCardsRestAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	ratecard.RegisterRateCardsRestApis(router)

	t.Run("should list rate cards", func(t *testing.T) {
		ratecard.QueryRateCardsFunc = func() (*[]domain.RateCard, error) {
			return &[]domain.RateCard{
				{ID: 1, Name: "Standard Dev", HourlyRate: "75", Currency: "USD"},
				{ID: 2, Name: "Senior Dev", HourlyRate: "120", Currency: "USD"},
			}, nil
		}
		req := httptest.NewRequest(http.MethodGet, ratecard.RateCardsApiRoot, nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[
			{"id": "1", "name": "Standard Dev", "hourlyRate": "75", "currency": "USD"},
			{"id": "2", "name": "Senior Dev", "hourlyRate": "120", "currency": "USD"}]`))
	})

	t.Run("should surface query failures", func(t *testing.T) {
		ratecard.QueryRateCardsFunc = func() (*[]domain.RateCard, error) {
			return nil, bizerror.ErrNotFound
		}
		req := httptest.NewRequest(http.MethodGet, ratecard.RateCardsApiRoot, nil)
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNotFound))
	})
}
