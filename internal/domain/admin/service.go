package admin

import (
	"context"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/logs"
)

type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Team struct {
	Team []TeamMember `json:"team"`
}

type Service struct {
	Logs *logs.Service
}

func NewService(logsSvc *logs.Service) *Service {
	return &Service{Logs: logsSvc}
}

func (s *Service) GetTeam() *Team {
	return &Team{
		Team: []TeamMember{
			{Name: "Team Member 1", Role: "Developer"},
			{Name: "Team Member 2", Role: "Developer"},
		},
	}
}

func (s *Service) GetLogs(ctx context.Context, filters logs.Filters) ([]*logs.Entry, error) {
	return s.Logs.Recent(ctx, filters)
}
