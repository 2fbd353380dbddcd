package ratecard

import (
	"signoff/domain"
	"signoff/persistence"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/patrickmn/go-cache"
)

var (
	// rate cards are static reference data, read on every job category write
	rateCardCache = cache.New(10*time.Minute, 1*time.Minute)

	QueryRateCardsFunc = QueryRateCards
)

const cacheKeyAll = "rate_cards"

var defaultRateCards = []domain.RateCard{
	{ID: 1, Name: "Standard Dev", HourlyRate: "75", Currency: "USD"},
	{ID: 2, Name: "Senior Dev", HourlyRate: "120", Currency: "USD"},
	{ID: 3, Name: "QA", HourlyRate: "60", Currency: "USD"},
}

// SeedRateCards installs the default cards when the table is empty.
func SeedRateCards() error {
	db := persistence.ActiveDataSourceManager.GormDB()
	var count int
	if err := db.Model(&domain.RateCard{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, r := range defaultRateCards {
		if err := db.Create(r).Error; err != nil {
			return err
		}
	}
	return nil
}

func QueryRateCards() (*[]domain.RateCard, error) {
	if cached, found := rateCardCache.Get(cacheKeyAll); found {
		if cards, ok := cached.(*[]domain.RateCard); ok {
			return cards, nil
		}
	}

	db := persistence.ActiveDataSourceManager.GormDB()
	var cards []domain.RateCard
	if err := db.Order("id ASC").Find(&cards).Error; err != nil {
		return nil, err
	}
	rateCardCache.Set(cacheKeyAll, &cards, cache.DefaultExpiration)
	return &cards, nil
}

func FindRateCard(id types.ID) (*domain.RateCard, error) {
	db := persistence.ActiveDataSourceManager.GormDB()
	r := domain.RateCard{}
	if err := db.Where(&domain.RateCard{ID: id}).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearCache is for tests.
func ClearCache() {
	rateCardCache.Flush()
}
