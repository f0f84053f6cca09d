package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	GigService    *GigService
	SystemService *SystemService
}
