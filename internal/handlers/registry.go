package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	GigHandler    *GigHandler
	SystemHandler *SystemHandler
}
