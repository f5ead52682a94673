package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"feemo-backend/internal/storage"
)

type GenerateExcelStorage interface {
	GetCalculationByID(ctx context.Context, id string) (storage.SavedCalculation, error)
}

type GenerateExcelService struct {
	storage GenerateExcelStorage
}

func NewGenerateService(storage GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

// GenerateExcel собирает xlsx-отчёт по сохранённому расчёту:
// этапы с часами и стоимостью, разбивка по команде, итоги
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, calcID string) ([]byte, error) {
	calc, err := g.storage.GetCalculationByID(ctx, calcID)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Wycena"
	f.SetSheetName("Sheet1", sheet)

	// --- СТИЛИ ---
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 2}},
	})

	rates := make(map[string]float64, len(calc.Team))
	roles := make(map[string]string, len(calc.Team))
	for _, m := range calc.Team {
		rates[m.ID] = m.Rate
		roles[m.ID] = m.Role
	}

	// 1. Шапка: базовые колонки + по колонке на участника
	baseHeaders := []string{"Etap", "Typ", "Godziny", "Koszt"}
	for i, name := range baseHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	memberColMap := make(map[string]int)
	baseLen := len(baseHeaders)
	for i, m := range calc.Team {
		colIdx := baseLen + i + 1
		memberColMap[m.ID] = colIdx
		cell, _ := excelize.CoordinatesToCellName(colIdx, 1)
		f.SetCellValue(sheet, cell, roles[m.ID])
	}

	lastCol, _ := excelize.CoordinatesToCellName(baseLen+len(calc.Team), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	// 2. Строки этапов — только включённые, в порядке sort
	var (
		rowNum     = 1
		totalHours int
		totalCost  float64
	)

	for _, st := range calc.Stages {
		if !st.IsEnabled {
			continue
		}
		rowNum++

		f.SetCellValue(sheet, cellName(1, rowNum), st.Name)

		switch st.Type {
		case storage.StageInternalRBH:
			f.SetCellValue(sheet, cellName(2, rowNum), "wewnętrzny")

			var stageHours int
			var stageCost float64
			for _, alloc := range st.RoleAllocations {
				stageHours += alloc.Hours
				stageCost += float64(alloc.Hours) * rates[alloc.MemberID]

				// 3. Часы участника в его колонке
				if colIdx, ok := memberColMap[alloc.MemberID]; ok {
					f.SetCellValue(sheet, cellName(colIdx, rowNum), alloc.Hours)
				}
			}

			f.SetCellValue(sheet, cellName(3, rowNum), stageHours)
			f.SetCellValue(sheet, cellName(4, rowNum), stageCost)
			totalHours += stageHours
			totalCost += stageCost

		case storage.StageExternalFixed:
			f.SetCellValue(sheet, cellName(2, rowNum), "zewnętrzny")
			f.SetCellValue(sheet, cellName(3, rowNum), "-")
			f.SetCellValue(sheet, cellName(4, rowNum), st.FixedPrice)
			totalCost += st.FixedPrice
		}
	}

	// 4. Итоговая строка
	rowNum++
	f.SetCellValue(sheet, cellName(1, rowNum), "Razem")
	f.SetCellValue(sheet, cellName(3, rowNum), totalHours)
	f.SetCellValue(sheet, cellName(4, rowNum), totalCost)
	totalRow, _ := excelize.CoordinatesToCellName(baseLen+len(calc.Team), rowNum)
	f.SetCellStyle(sheet, cellName(1, rowNum), totalRow, totalStyle)

	// 5. Сводка по проекту под таблицей
	rowNum += 2
	rowNum = writeSummary(f, sheet, rowNum, calc, totalCost)

	// 6. Введённые функциональные элементы
	rowNum += 2
	writeElements(f, sheet, rowNum, calc, headerStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "",
		Selection:   nil,
	})

	f.SetColWidth(sheet, "A", "A", 35)
	f.SetColWidth(sheet, "B", "G", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, sheet string, row int, calc storage.SavedCalculation, totalCost float64) int {
	f.SetCellValue(sheet, cellName(1, row), "Projekt")
	f.SetCellValue(sheet, cellName(2, row), calc.Name)

	row++
	f.SetCellValue(sheet, cellName(1, row), "Data")
	f.SetCellValue(sheet, cellName(2, row), calc.Date.Format("2006-01-02"))

	row++
	f.SetCellValue(sheet, cellName(1, row), "Powierzchnia, m²")
	f.SetCellValue(sheet, cellName(2, row), calc.Inputs.Area)

	if calc.Inputs.Area > 0 {
		row++
		f.SetCellValue(sheet, cellName(1, row), "Koszt za m²")
		f.SetCellValue(sheet, cellName(2, row), totalCost/calc.Inputs.Area)
	}

	return row
}

// writeElements — введённые значения функциональных элементов;
// имена берём из шаблонов внутри снимка
func writeElements(f *excelize.File, sheet string, row int, calc storage.SavedCalculation, headerStyle int) {
	names := make(map[string]string)
	for _, tpl := range calc.Templates {
		if tpl.ID != calc.Inputs.TemplateID {
			continue
		}
		for _, group := range tpl.Groups {
			for _, el := range group.Elements {
				names[el.ID] = el.Name
				for _, opt := range el.Options {
					names[el.ID+"/"+opt.ID] = el.Name + ": " + opt.Name
				}
			}
		}
	}

	if len(calc.Inputs.ElementValues) == 0 {
		return
	}

	f.SetCellValue(sheet, cellName(1, row), "Element")
	f.SetCellValue(sheet, cellName(2, row), "Wartość")
	f.SetCellStyle(sheet, cellName(1, row), cellName(2, row), headerStyle)

	for id, value := range calc.Inputs.ElementValues {
		row++

		name := names[id]
		if optName, ok := value.(string); ok && names[id+"/"+optName] != "" {
			name = names[id+"/"+optName]
			value = ""
		}
		if name == "" {
			name = id
		}

		f.SetCellValue(sheet, cellName(1, row), name)
		f.SetCellValue(sheet, cellName(2, row), value)
	}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
