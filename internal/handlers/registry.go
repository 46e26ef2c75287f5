package handlers

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	HealthHandler      *HealthHandler
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	CompanyHandler     *CompanyHandler
	JobHandler         *JobHandler
	ProfileHandler     *ProfileHandler
	ApplicationHandler *ApplicationHandler
	FilterHandler      *FilterHandler
	UploadHandler      *UploadHandler
}
