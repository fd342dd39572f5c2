package workout

import "strings"

type LibraryExercise struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	VideoURL   string `json:"videoUrl"`
	IsStandard bool   `json:"isStandard"`
}

const (
	CategoryChest     = "Peito"
	CategoryBack      = "Costas"
	CategoryLegs      = "Pernas"
	CategoryShoulders = "Ombros"
	CategoryArms      = "Braços"
	CategoryCore      = "Abdômen"
	CategoryCardio    = "Cardio"
)

var standardExercises = []LibraryExercise{
	{ID: "std-supino-reto", Name: "Supino Reto", Category: CategoryChest},
	{ID: "std-supino-inclinado", Name: "Supino Inclinado", Category: CategoryChest},
	{ID: "std-crucifixo", Name: "Crucifixo", Category: CategoryChest},
	{ID: "std-flexao", Name: "Flexão de Braço", Category: CategoryChest},

	{ID: "std-puxada-frente", Name: "Puxada Frente", Category: CategoryBack},
	{ID: "std-remada-curvada", Name: "Remada Curvada", Category: CategoryBack},
	{ID: "std-remada-baixa", Name: "Remada Baixa", Category: CategoryBack},
	{ID: "std-barra-fixa", Name: "Barra Fixa", Category: CategoryBack},

	{ID: "std-agachamento", Name: "Agachamento Livre", Category: CategoryLegs},
	{ID: "std-leg-press", Name: "Leg Press 45", Category: CategoryLegs},
	{ID: "std-cadeira-extensora", Name: "Cadeira Extensora", Category: CategoryLegs},
	{ID: "std-mesa-flexora", Name: "Mesa Flexora", Category: CategoryLegs},
	{ID: "std-stiff", Name: "Stiff", Category: CategoryLegs},
	{ID: "std-panturrilha", Name: "Panturrilha em Pé", Category: CategoryLegs},

	{ID: "std-desenvolvimento", Name: "Desenvolvimento com Halteres", Category: CategoryShoulders},
	{ID: "std-elevacao-lateral", Name: "Elevação Lateral", Category: CategoryShoulders},
	{ID: "std-elevacao-frontal", Name: "Elevação Frontal", Category: CategoryShoulders},

	{ID: "std-rosca-direta", Name: "Rosca Direta", Category: CategoryArms},
	{ID: "std-rosca-martelo", Name: "Rosca Martelo", Category: CategoryArms},
	{ID: "std-triceps-pulley", Name: "Tríceps Pulley", Category: CategoryArms},
	{ID: "std-triceps-testa", Name: "Tríceps Testa", Category: CategoryArms},

	{ID: "std-prancha", Name: "Prancha", Category: CategoryCore},
	{ID: "std-abdominal-supra", Name: "Abdominal Supra", Category: CategoryCore},

	{ID: "std-esteira", Name: "Esteira", Category: CategoryCardio},
	{ID: "std-bicicleta", Name: "Bicicleta Ergométrica", Category: CategoryCardio},
}

// StandardExercises returns a copy of the built-in catalog.
func StandardExercises() []LibraryExercise {
	out := make([]LibraryExercise, len(standardExercises))
	copy(out, standardExercises)
	for i := range out {
		out[i].IsStandard = true
	}
	return out
}

// MergeExercises appends trainer-added exercises to the built-in catalog,
// skipping any whose name already exists (case-insensitive).
func MergeExercises(standard, custom []LibraryExercise) []LibraryExercise {
	seen := make(map[string]bool, len(standard)+len(custom))
	out := make([]LibraryExercise, 0, len(standard)+len(custom))

	for _, ex := range standard {
		key := nameKey(ex.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ex)
	}

	for _, ex := range custom {
		key := nameKey(ex.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		ex.IsStandard = false
		out = append(out, ex)
	}

	return out
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
