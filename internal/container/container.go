package container

import (
	app "debris-analyzer/internal/application"
	"debris-analyzer/internal/domain/port"
)

type Container struct {
	UserService     *app.UserService
	AnalysisService *app.AnalysisService
	PlanningService *app.PlanningService
	Describer       port.Describer
}

func New(userRepo port.UserRepository, detector port.DebrisDetector, describer port.Describer) *Container {
	return &Container{
		UserService:     app.NewUserService(userRepo),
		AnalysisService: app.NewAnalysisService(detector),
		PlanningService: app.NewPlanningService(),
		Describer:       describer,
	}
}
