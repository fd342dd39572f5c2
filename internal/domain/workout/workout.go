package workout

import "time"

// PlannedExercise é um exercício dentro de um dia do treino.
type PlannedExercise struct {
	Name     string `json:"name"`
	Sets     string `json:"sets,omitempty"`
	Reps     string `json:"reps,omitempty"`
	Load     string `json:"load,omitempty"`
	Rest     string `json:"rest,omitempty"`
	Notes    string `json:"notes,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// SplitDay is one entry of a split: a label ("Treino A") bound to a day name
// ("Segunda").
type SplitDay struct {
	Label     string            `json:"label"`
	Day       string            `json:"day"`
	Exercises []PlannedExercise `json:"exercises,omitempty"`
}

// Split keeps the order the trainer defined.
type Split []SplitDay

// Program is the workout assigned to a student.
type Program struct {
	Name       string `json:"name,omitempty"`
	TemplateID string `json:"templateId,omitempty"`
	Split      Split  `json:"split"`
}

type WorkoutFolder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TrainerID string    `json:"trainerId"`
	CreatedAt time.Time `json:"createdAt"`
}

type WorkoutTemplate struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Category           string `json:"category"`
	TrainerID          string `json:"trainerId"`
	FolderID           string `json:"folderId,omitempty"`
	Split              Split  `json:"split"`
	Frequency          string `json:"frequency"`
	Goal               string `json:"goal"`
	Difficulty         string `json:"difficulty"`
	AISuggestedChanges string `json:"aiSuggestedChanges"`
}

// GroupByFolder agrupa modelos por pasta. Modelos cuja pasta não existe mais
// (ou sem pasta) ficam sob a chave "".
func GroupByFolder(folders []WorkoutFolder, templates []WorkoutTemplate) map[string][]WorkoutTemplate {
	known := make(map[string]bool, len(folders))
	for _, f := range folders {
		known[f.ID] = true
	}

	out := make(map[string][]WorkoutTemplate)
	for _, t := range templates {
		key := t.FolderID
		if !known[key] {
			key = ""
		}
		out[key] = append(out[key], t)
	}
	return out
}
