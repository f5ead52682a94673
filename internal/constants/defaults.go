package constants

import "feemo-backend/internal/storage"

// Дефолтная конфигурация. Используется как сид, пока в базе пусто,
// и чтобы фронт мог стартовать без настройки.

var DefaultTeam = []storage.TeamMember{
	{ID: "1", Role: storage.RoleArchitect, Rate: 250, IsActive: true},
	{ID: "2", Role: storage.RoleAssistant, Rate: 100, IsActive: true},
	{ID: "3", Role: storage.RoleManager, Rate: 300, IsActive: true},
}

var DefaultMultipliers = storage.GlobalMultipliers{
	Complexity: storage.ComplexityMultipliers{Low: 0.9, Medium: 1.0, High: 1.2},
	Lod:        storage.LodMultipliers{Standard: 1.0, High: 1.25},
	Express:    1.20,
	Scale:      &storage.ScaleMultiplier{Enabled: true, BaseArea: 150, Exponent: 0.2},
}

var StageDistribution = map[string]float64{
	"stage_inventory":   0.05,
	"stage_concept":     0.15,
	"stage_permit":      0.30,
	"stage_technical":   0.20,
	"stage_executive":   0.20,
	"stage_supervision": 0.10,
}

var DefaultBuildingTypes = []storage.BuildingType{
	{ID: "b_house", Name: "Dom Jednorodzinny"},
	{ID: "b_industrial", Name: "Obiekt Przemysłowy / Hala"},
	{ID: "b_office", Name: "Budynek Biurowy"},
	{ID: "b_multi", Name: "Budynek Wielorodzinny"},
	{ID: "b_interior", Name: "Wnętrza"},
}

var DefaultActionTypes = []storage.ActionType{
	{ID: "act_new", Name: "Budowa"},
	{ID: "act_extension", Name: "Rozbudowa"},
	{ID: "act_superstructure", Name: "Nadbudowa"},
	{ID: "act_rebuild", Name: "Przebudowa"},
	{ID: "act_modernization", Name: "Modernizacja"},
	{ID: "act_usage_change", Name: "Zmiana sposobu użytkowania"},
	{ID: "act_revital", Name: "Rewitalizacja / Rewaloryzacja"},
}

// Этапы: 6 внутренних (часы × ставки) + 6 внешних (фикс-прайс подрядчиков)
var DefaultStages = []storage.Stage{
	{ID: "stage_inventory", Type: storage.StageInternalRBH, Name: "Analiza Chłonności / Wstępna", Description: "Sprawdzenie MPZP, uwarunkowań.", IsEnabled: true, Sort: 1},
	{ID: "stage_concept", Type: storage.StageInternalRBH, Name: "Koncepcja (K)", Description: "Układy funkcjonalne, wizualizacje.", IsEnabled: true, Sort: 2},
	{ID: "stage_permit", Type: storage.StageInternalRBH, Name: "Projekt Budowlany (PB)", Description: "Dokumentacja do PNB.", IsEnabled: true, Sort: 3},
	{ID: "stage_technical", Type: storage.StageInternalRBH, Name: "Projekt Techniczny (PT)", Description: "Konstrukcja, instalacje (koordynacja).", IsEnabled: true, Sort: 4},
	{ID: "stage_executive", Type: storage.StageInternalRBH, Name: "Projekt Wykonawczy (PW)", Description: "Detale architektury.", IsEnabled: true, Sort: 5},
	{ID: "stage_supervision", Type: storage.StageInternalRBH, Name: "Nadzór Autorski", Description: "Wizyty na budowie.", IsEnabled: true, Sort: 6},

	{ID: "ext_geo", Type: storage.StageExternalFixed, Name: "Geodezja (Mapa)", Description: "Mapa do celów projektowych.", IsEnabled: false, Sort: 7},
	{ID: "ext_soil", Type: storage.StageExternalFixed, Name: "Geologia", Description: "Badania gruntu.", IsEnabled: false, Sort: 8},
	{ID: "ext_constr", Type: storage.StageExternalFixed, Name: "Branża Konstrukcyjna", Description: "Projektant konstrukcji.", IsEnabled: false, Sort: 9},
	{ID: "ext_hvac", Type: storage.StageExternalFixed, Name: "Branża Sanitarna (HVAC)", Description: "Wod-Kan, CO, Wentylacja.", IsEnabled: false, Sort: 10},
	{ID: "ext_ele", Type: storage.StageExternalFixed, Name: "Branża Elektryczna", Description: "Prąd, niskie prądy.", IsEnabled: false, Sort: 11},
	{ID: "ext_fire", Type: storage.StageExternalFixed, Name: "Rzeczoznawca PPOŻ", Description: "Uzgodnienia projektu.", IsEnabled: false, Sort: 12},
}

var DefaultTemplates = []storage.CalculationTemplate{
	{
		ID:             "tpl_house_new",
		BuildingTypeID: "b_house",
		ActionTypeID:   "act_new",
		Name:           "Dom Jednorodzinny - Budowa",
		Description:    "Szablon dla budynków mieszkalnych jednorodzinnych (wolnostojące, bliźniaki).",
		RoleDistribution: map[string]float64{
			storage.RoleArchitect: 0.6,
			storage.RoleAssistant: 0.4,
		},
		StageWeights: map[string]float64{
			"stage_inventory":   0.05,
			"stage_concept":     0.15,
			"stage_permit":      0.30,
			"stage_technical":   0.20,
			"stage_executive":   0.20,
			"stage_supervision": 0.10,
		},
		DefaultFixedCosts: map[string]float64{
			"ext_geo":  1500,
			"ext_soil": 1000,
		},
		DefaultEnabledStages: []string{"stage_concept", "stage_permit", "stage_technical", "stage_executive", "ext_geo"},
		IsActive:             true,
		Groups: []storage.FunctionalGroup{
			{
				ID:   "g_mass",
				Name: "Bryła i Konstrukcja",
				Elements: []storage.FunctionalElement{
					{ID: "el_base", Name: "Podstawa (Baza projektu)", Description: "Standardowy zakres prac, dokumentacja podstawowa.", BaseRbh: 120, InputType: storage.InputBoolean},
					{ID: "el_story", Name: "Dodatkowa kondygnacja", Description: "Piętro lub poddasze użytkowe.", BaseRbh: 40, InputType: storage.InputCount, Min: intPtr(0), Max: intPtr(5)},
					{ID: "el_basement", Name: "Podpiwniczenie", Description: "Projekt izolacji, fundamentów zagłębionych.", BaseRbh: 50, InputType: storage.InputBoolean},
					{ID: "el_complex_roof", Name: "Dach wielospadowy / skomplikowany", Description: "Więźba o złożonej geometrii.", BaseRbh: 35, InputType: storage.InputBoolean},
					{ID: "el_garage", Name: "Garaż w bryle", Description: "Integracja garażu z częścią mieszkalną.", BaseRbh: 20, InputType: storage.InputBoolean},
				},
			},
			{
				ID:   "g_interior",
				Name: "Układ Funkcjonalny",
				Elements: []storage.FunctionalElement{
					{ID: "el_bathroom", Name: "Łazienka / WC", Description: "Detalika, rozwinięcia ścian, instalacje.", BaseRbh: 15, InputType: storage.InputCount, Min: intPtr(1)},
					{ID: "el_kitchen", Name: "Kuchnia", Description: "Projekt funkcjonalny kuchni.", BaseRbh: 15, InputType: storage.InputCount, Min: intPtr(1)},
					{ID: "el_rooms", Name: "Pokoje / Sypialnie", Description: "Liczba pomieszczeń mieszkalnych.", BaseRbh: 5, InputType: storage.InputCount},
					{ID: "el_mezzanine", Name: "Antresola / Pustka", Description: "Otwarta przestrzeń, barierki, widoki.", BaseRbh: 25, InputType: storage.InputBoolean},
				},
			},
			{
				ID:   "g_tech",
				Name: "Strefy Techniczne",
				Elements: []storage.FunctionalElement{
					{ID: "el_hvac_recu", Name: "Rekuperacja", Description: "Projekt wentylacji mechanicznej (koordynacja).", BaseRbh: 15, InputType: storage.InputBoolean},
					{ID: "el_smarthome", Name: "Smart Home", Description: "Zaawansowana elektryka.", BaseRbh: 30, InputType: storage.InputBoolean},
					{ID: "el_heat_pump", Name: "Pompa ciepła", Description: "Dobór i lokalizacja jednostek.", BaseRbh: 10, InputType: storage.InputBoolean},
				},
			},
			{
				ID:   "g_facade",
				Name: "Powłoka i Detal",
				Elements: []storage.FunctionalElement{
					{ID: "el_glass", Name: "Przeszklenia wielkoformatowe", Description: "HS, ściany kurtynowe, detale montażu.", BaseRbh: 40, InputType: storage.InputBoolean},
					{ID: "el_terrace", Name: "Taras / Balkon", Description: "Warstwy, odwodnienie, balustrady.", BaseRbh: 20, InputType: storage.InputCount},
					{ID: "el_facade_detail", Name: "Indywidualny detal elewacji", Description: "Kamień, drewno, spieki.", BaseRbh: 35, InputType: storage.InputBoolean},
				},
			},
		},
	},
	{
		ID:             "tpl_industrial_new",
		BuildingTypeID: "b_industrial",
		ActionTypeID:   "act_new",
		Name:           "Obiekt Przemysłowy - Budowa",
		Description:    "Szablon dla hal produkcyjnych, magazynowych i obiektów logistycznych.",
		RoleDistribution: map[string]float64{
			storage.RoleArchitect: 0.5,
			storage.RoleAssistant: 0.3,
			storage.RoleManager:   0.2,
		},
		StageWeights: map[string]float64{
			"stage_inventory":   0.05,
			"stage_concept":     0.10,
			"stage_permit":      0.35,
			"stage_technical":   0.25,
			"stage_executive":   0.15,
			"stage_supervision": 0.10,
		},
		DefaultFixedCosts:    map[string]float64{},
		DefaultEnabledStages: []string{"stage_concept", "stage_permit", "stage_technical"},
		IsActive:             true,
		Groups: []storage.FunctionalGroup{
			{
				ID:   "g_ind_struct",
				Name: "Struktura Hali",
				Elements: []storage.FunctionalElement{
					{ID: "el_ind_base", Name: "Baza Projektu Hali", Description: "Konstrukcja główna, obudowa systemowa.", BaseRbh: 250, InputType: storage.InputBoolean},
					{ID: "el_ind_nave", Name: "Dodatkowa nawa", Description: "Powielenie układu konstrukcyjnego.", BaseRbh: 80, InputType: storage.InputCount},
					{ID: "el_ind_soc", Name: "Część socjalno-biurowa (mała)", Description: "Do 200m2 wbudowana.", BaseRbh: 100, InputType: storage.InputBoolean},
					{ID: "el_ind_soc_large", Name: "Biurowiec przy hali (>200m2)", Description: "Oddzielna bryła biurowa.", BaseRbh: 250, InputType: storage.InputBoolean},
				},
			},
			{
				ID:   "g_ind_process",
				Name: "Proces i Technologia",
				Elements: []storage.FunctionalElement{
					{ID: "el_ind_line", Name: "Linia technologiczna", Description: "Koordynacja z technologią produkcji.", BaseRbh: 60, InputType: storage.InputCount},
					{ID: "el_ind_crane", Name: "Suwnica", Description: "Belki podsuwnicowe, fundamenty.", BaseRbh: 40, InputType: storage.InputCount},
					{ID: "el_ind_zone", Name: "Wydzielona strefa pożarowa", Description: "Ściany oddzielenia ppoż, bramy.", BaseRbh: 30, InputType: storage.InputCount},
				},
			},
			{
				ID:   "g_ind_logistics",
				Name: "Logistyka",
				Elements: []storage.FunctionalElement{
					{ID: "el_ind_dock", Name: "Dok przeładunkowy", Description: "Rampa, uszczelnienie, detale.", BaseRbh: 15, InputType: storage.InputCount},
					{ID: "el_ind_gate", Name: "Brama \"0\"", Description: "Wjazd z poziomu terenu.", BaseRbh: 10, InputType: storage.InputCount},
					{ID: "el_ind_roads", Name: "Układ drogowy TIR", Description: "Place manewrowe, promienie skrętu.", BaseRbh: 60, InputType: storage.InputBoolean},
				},
			},
			{
				ID:   "g_ind_install",
				Name: "Instalacje Przemysłowe",
				Elements: []storage.FunctionalElement{
					{ID: "el_ind_sprinkler", Name: "Instalacja tryskaczowa", Description: "Koordynacja zbiornika i pompowni.", BaseRbh: 40, InputType: storage.InputBoolean},
					{ID: "el_ind_ex", Name: "Strefy zagrożenia wybuchem (EX)", Description: "Specjalistyczne rozwiązania.", BaseRbh: 80, InputType: storage.InputBoolean},
				},
			},
		},
	},
}

func intPtr(v int) *int {
	return &v
}
