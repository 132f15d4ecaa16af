package service

import "github.com/alexanderramin/studyplan/internal/app"

type LearnerService interface {
	app.LearnerUseCase
}

type SubjectService interface {
	app.SubjectUseCase
}

type StudyService interface {
	app.StudyPlanUseCase
}

type ReportService interface {
	app.ReportUseCase
}

type SnapshotService interface {
	app.SnapshotUseCase
}
