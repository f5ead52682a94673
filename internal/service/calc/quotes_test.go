package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"feemo-backend/internal/storage"
)

func TestQuotes_AddSelectsAndSyncsPrice(t *testing.T) {
	stage := &storage.Stage{ID: "ext_geo", Type: storage.StageExternalFixed}

	// 1. Первая оферта сразу становится выбранной
	AddQuote(stage, storage.ExternalQuote{ID: "q1", Name: "Firma A", Price: 1000})
	assert.Equal(t, "q1", *stage.SelectedQuoteID)
	assert.Equal(t, 1000.0, stage.FixedPrice)

	// 2. Новая оферта перехватывает выбор
	AddQuote(stage, storage.ExternalQuote{ID: "q2", Name: "Firma B", Price: 1500})
	assert.Equal(t, "q2", *stage.SelectedQuoteID)
	assert.Equal(t, 1500.0, stage.FixedPrice)

	// 3. Удаление выбранной откатывает на первую в списке
	DeleteQuote(stage, "q2")
	assert.Equal(t, "q1", *stage.SelectedQuoteID)
	assert.Equal(t, 1000.0, stage.FixedPrice)
}

func TestQuotes_DeleteLastResetsPrice(t *testing.T) {
	stage := &storage.Stage{ID: "ext_geo", Type: storage.StageExternalFixed}
	AddQuote(stage, storage.ExternalQuote{ID: "q1", Name: "Firma A", Price: 1000})

	DeleteQuote(stage, "q1")

	assert.Nil(t, stage.SelectedQuoteID)
	assert.Equal(t, 0.0, stage.FixedPrice)
	assert.Empty(t, stage.ExternalQuotes)
}

func TestQuotes_DeleteUnselectedKeepsSelection(t *testing.T) {
	stage := &storage.Stage{ID: "ext_geo", Type: storage.StageExternalFixed}
	AddQuote(stage, storage.ExternalQuote{ID: "q1", Price: 1000})
	AddQuote(stage, storage.ExternalQuote{ID: "q2", Price: 1500})

	// q2 выбрана, удаляем q1 — выбор и цена не меняются
	DeleteQuote(stage, "q1")

	assert.Equal(t, "q2", *stage.SelectedQuoteID)
	assert.Equal(t, 1500.0, stage.FixedPrice)
	assert.Len(t, stage.ExternalQuotes, 1)
}

func TestQuotes_ManualPriceClearsSelection(t *testing.T) {
	stage := &storage.Stage{ID: "ext_geo", Type: storage.StageExternalFixed}
	AddQuote(stage, storage.ExternalQuote{ID: "q1", Price: 1000})

	// Ручной ввод = осознанный override, выбор сбрасывается
	// даже при живых офертах
	SetManualPrice(stage, 777)

	assert.Nil(t, stage.SelectedQuoteID)
	assert.Equal(t, 777.0, stage.FixedPrice)
	assert.Len(t, stage.ExternalQuotes, 1)
}

func TestQuotes_SelectUnknownKeepsPrice(t *testing.T) {
	stage := &storage.Stage{ID: "ext_geo", Type: storage.StageExternalFixed, FixedPrice: 500}

	SelectQuote(stage, "q_ghost")

	assert.Equal(t, 500.0, stage.FixedPrice)
}

func TestQuotes_SyncRestoresInvariant(t *testing.T) {
	// Снапшот пришёл с разъехавшейся ценой — инвариант восстанавливается
	sel := "q1"
	stage := &storage.Stage{
		ID: "ext_geo", Type: storage.StageExternalFixed,
		FixedPrice:      99999,
		SelectedQuoteID: &sel,
		ExternalQuotes:  []storage.ExternalQuote{{ID: "q1", Price: 1200}},
	}

	SyncQuotePrice(stage)

	assert.Equal(t, 1200.0, stage.FixedPrice)
}
