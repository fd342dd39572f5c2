package roster

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/workout"
)

// HistoryEntry records a completed workout. Date is either ISO
// (2006-01-02 / RFC 3339) or dd/mm/yyyy.
type HistoryEntry struct {
	Date  string `json:"date"`
	Label string `json:"label,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type StudentFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
	Date string `json:"date"`
}

type Student struct {
	ID        string `json:"id"`
	TrainerID string `json:"trainerId,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`

	Cpf       string `json:"cpf"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Whatsapp  string `json:"whatsapp"`

	BirthDate string  `json:"birthDate"`
	Gender    string  `json:"gender"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`

	Program *workout.Program `json:"program,omitempty"`
	History []HistoryEntry   `json:"history"`

	BillingDay int     `json:"billingDay"`
	MonthlyFee float64 `json:"monthlyFee"`
	IsActive   bool    `json:"isActive"`

	Files []StudentFile `json:"files"`

	// Preenchidos só quando o join com o treinador funciona.
	TrainerName      string `json:"trainerName,omitempty"`
	TrainerAvatar    string `json:"trainerAvatar,omitempty"`
	TrainerInstagram string `json:"trainerInstagram,omitempty"`
	TrainerWhatsapp  string `json:"trainerWhatsapp,omitempty"`
}

// UnmarshalJSON treats a missing isActive as true.
func (s *Student) UnmarshalJSON(b []byte) error {
	type plain Student
	p := plain{IsActive: true}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = Student(p)
	return nil
}

// Split returns the program split, or nil when no program is assigned.
func (s Student) Split() workout.Split {
	if s.Program == nil {
		return nil
	}
	return s.Program.Split
}

// ClearTrainerDisplay drops the denormalized trainer fields.
func (s *Student) ClearTrainerDisplay() {
	s.TrainerName = ""
	s.TrainerAvatar = ""
	s.TrainerInstagram = ""
	s.TrainerWhatsapp = ""
}

type Trainer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Avatar  string `json:"avatar"`

	Instagram string `json:"instagram"`
	Whatsapp  string `json:"whatsapp"`

	SubscriptionStatus  string     `json:"subscriptionStatus"`
	SubscriptionEndDate *time.Time `json:"subscriptionEndDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

const (
	SubscriptionTrial    = "trial"
	SubscriptionActive   = "active"
	SubscriptionExpired  = "expired"
	SubscriptionCanceled = "canceled"
)

func (t Trainer) DisplayName() string {
	return strings.TrimSpace(t.Name + " " + t.Surname)
}

// SubscriptionValid reports whether the trainer may use paid features at now.
func (t Trainer) SubscriptionValid(now time.Time) bool {
	switch t.SubscriptionStatus {
	case SubscriptionActive, SubscriptionTrial:
		return t.SubscriptionEndDate == nil || now.Before(*t.SubscriptionEndDate)
	}
	return false
}
