package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service *service
	ctx     context.Context
	picked  []int
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.picked = nil

	svc, err := NewService(&Config{
		Picker: func(n int) int {
			s.picked = append(s.picked, n)
			return n - 1
		},
	})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetStartMessage() {
	output, err := s.service.GetStartMessage(s.ctx, &GetStartMessageInput{
		MonsterName: "Sand Slime",
		TotalCups:   8,
	})
	s.Require().NoError(err)
	s.Equal("Sand Slime blocks the oasis. 8 cups stand between you and victory.", output.Message)
	s.Equal([]int{len(startLines)}, s.picked)
}

func (s *MessagingServiceTestSuite) TestGetDrinkMessage() {
	accepted, err := s.service.GetDrinkMessage(s.ctx, &GetDrinkMessageInput{Accepted: true, CupsLeft: 3})
	s.Require().NoError(err)
	s.Equal("Refreshing. Only 3 cups remain.", accepted.Message)

	limited, err := s.service.GetDrinkMessage(s.ctx, &GetDrinkMessageInput{RateLimited: true})
	s.Require().NoError(err)
	s.Equal(cooldownLines[len(cooldownLines)-1], limited.Message)

	idle, err := s.service.GetDrinkMessage(s.ctx, &GetDrinkMessageInput{})
	s.Require().NoError(err)
	s.Equal(idleLines[len(idleLines)-1], idle.Message)

	late, err := s.service.GetDrinkMessage(s.ctx, &GetDrinkMessageInput{Expired: true})
	s.Require().NoError(err)
	s.Equal("The monster already fled into the dunes.", late.Message)
}

func (s *MessagingServiceTestSuite) TestGetOutcomeMessage() {
	won, err := s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{Status: models.SessionStatusWon})
	s.Require().NoError(err)
	s.Equal("VICTORY!", won.Title)
	s.Equal("You defeated the monster!", won.Message)
	s.Equal("CLAIM TROPHY", won.Action)

	lost, err := s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{Status: models.SessionStatusLost})
	s.Require().NoError(err)
	s.Equal("DEFEAT", lost.Title)
	s.Equal("The monster escaped...", lost.Message)
	s.Equal("TRY AGAIN", lost.Action)

	_, err = s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{Status: models.SessionStatusRunning})
	s.ErrorIs(err, ErrNotFinished)
}

func (s *MessagingServiceTestSuite) TestChoose_OutOfRangePicker() {
	svc, err := NewService(&Config{Picker: func(int) int { return 99 }})
	s.Require().NoError(err)
	s.Equal(victoryLines[0], svc.choose(victoryLines))
}
