package calc

import (
	"feemo-backend/internal/storage"
)

// Оферты подрядчиков на внешних этапах. Состояния:
// без оферт (ручная цена) → есть оферты → одна выбрана (цена зеркалит её).

// AddQuote добавляет оферту и сразу делает её выбранной
func AddQuote(stage *storage.Stage, quote storage.ExternalQuote) {
	stage.ExternalQuotes = append(stage.ExternalQuotes, quote)
	id := quote.ID
	stage.SelectedQuoteID = &id
	stage.FixedPrice = quote.Price
}

// SelectQuote выбирает оферту по id; неизвестный id цену не меняет
func SelectQuote(stage *storage.Stage, quoteID string) {
	stage.SelectedQuoteID = &quoteID
	for _, q := range stage.ExternalQuotes {
		if q.ID == quoteID {
			stage.FixedPrice = q.Price
			return
		}
	}
}

// DeleteQuote удаляет оферту. Если удалили выбранную — откатываемся на
// первую оставшуюся, а когда оферт больше нет, цена обнуляется.
// Удаление невыбранной оферты выбор и цену не трогает.
func DeleteQuote(stage *storage.Stage, quoteID string) {
	wasSelected := stage.SelectedQuoteID != nil && *stage.SelectedQuoteID == quoteID

	remaining := stage.ExternalQuotes[:0]
	for _, q := range stage.ExternalQuotes {
		if q.ID != quoteID {
			remaining = append(remaining, q)
		}
	}
	stage.ExternalQuotes = remaining

	if !wasSelected {
		return
	}

	if len(remaining) > 0 {
		first := remaining[0].ID
		stage.SelectedQuoteID = &first
		stage.FixedPrice = remaining[0].Price
	} else {
		stage.SelectedQuoteID = nil
		stage.FixedPrice = 0
	}
}

// SetManualPrice — ручной ввод цены. Безусловно сбрасывает выбор оферты:
// раз человек вписал цену сам, значит так и задумано.
func SetManualPrice(stage *storage.Stage, price float64) {
	stage.FixedPrice = price
	stage.SelectedQuoteID = nil
}

// SyncQuotePrice восстанавливает инвариант "цена = выбранная оферта"
// на этапах, пришедших снаружи (снапшоты, запросы фронта).
func SyncQuotePrice(stage *storage.Stage) {
	if stage.SelectedQuoteID == nil {
		return
	}
	for _, q := range stage.ExternalQuotes {
		if q.ID == *stage.SelectedQuoteID {
			stage.FixedPrice = q.Price
			return
		}
	}
}
