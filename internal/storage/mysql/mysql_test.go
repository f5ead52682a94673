package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feemo-backend/internal/storage"
)

// Интеграционные тесты гоняются против живой базы.
// Без FEEMO_TEST_DSN весь пакет пропускается.
func testStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv("FEEMO_TEST_DSN")
	if dsn == "" {
		t.Skip("FEEMO_TEST_DSN не задан, пропускаем интеграционные тесты")
	}

	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	t.Cleanup(func() { db.Close() })

	return &Storage{db: db}
}

func TestTeamRoundTrip(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	// 1. Пишем состав и читаем обратно
	team := []storage.TeamMember{
		{ID: "it_arch", Role: storage.RoleArchitect, Rate: 275, IsActive: true},
		{ID: "it_asst", Role: storage.RoleAssistant, Rate: 110, IsActive: true},
	}
	require.NoError(t, s.UpdateTeam(ctx, team))

	got, err := s.GetTeam(ctx)
	require.NoError(t, err)

	rates := make(map[string]float64, len(got))
	for _, m := range got {
		rates[m.ID] = m.Rate
	}
	assert.Equal(t, 275.0, rates["it_arch"])
	assert.Equal(t, 110.0, rates["it_asst"])
}

func TestHistoryRoundTrip(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	calc := storage.SavedCalculation{
		ID:     "it_calc_1",
		UserID: "it_user",
		Date:   time.Now().UTC().Truncate(time.Second),
		Name:   "Dom jednorodzinny — wariant A",
		Inputs: storage.ProjectInputs{
			TemplateID:      "tpl_house_new",
			Area:            150,
			CalculationMode: storage.ModeFunctional,
		},
		TotalCost: 48000,
	}

	// 1. Сохраняем и читаем по id
	require.NoError(t, s.SaveCalculation(ctx, calc))
	t.Cleanup(func() { _ = s.DeleteCalculation(ctx, calc.ID) })

	got, err := s.GetCalculationByID(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, calc.Name, got.Name)
	assert.Equal(t, calc.TotalCost, got.TotalCost)
	assert.Equal(t, calc.Inputs.TemplateID, got.Inputs.TemplateID)

	// 2. Переименовываем — снимок должен обновиться вместе с колонкой
	newName := "Dom jednorodzinny — wariant B"
	require.NoError(t, s.UpdateCalculation(ctx, calc.ID, storage.UpdateCalculation{Name: &newName}))

	got, err = s.GetCalculationByID(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, newName, got.Name)

	// 3. Удаляем, повторное чтение должно упасть
	require.NoError(t, s.DeleteCalculation(ctx, calc.ID))

	_, err = s.GetCalculationByID(ctx, calc.ID)
	assert.Error(t, err)
}

func TestGetMultipliersFallback(t *testing.T) {
	s := testStorage(t)

	m, err := s.GetMultipliers(context.Background())
	require.NoError(t, err)

	// либо дефолты, либо сохранённая конфигурация — множители всегда положительные
	assert.Greater(t, m.Complexity.Medium, 0.0)
	assert.Greater(t, m.Lod.Standard, 0.0)
	assert.Greater(t, m.Express, 0.0)
}
