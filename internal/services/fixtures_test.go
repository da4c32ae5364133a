package services_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func newCouple(name string, budget int, categories ...string) *models.UserDB {
	wedding := time.Date(2027, time.June, 12, 0, 0, 0, 0, time.UTC)
	return &models.UserDB{
		UserID:           uuid.New(),
		Email:            name + "@example.com",
		CoupleName:       name,
		WeddingDate:      &wedding,
		Location:         "Austin, TX",
		Budget:           budget,
		VendorCategories: categories,
		EmailVerified:    true,
		ProfileCompleted: true,
		ProfileVisible:   true,
		AllowMessages:    true,
	}
}

func hashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func newMatch(initiator, receiver uuid.UUID, status models.MatchStatus) *models.MatchDB {
	return &models.MatchDB{
		MatchID:     uuid.New(),
		InitiatorID: initiator,
		ReceiverID:  receiver,
		Status:      status,
	}
}
