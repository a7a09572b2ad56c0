package main

import (
	"talentsched/core/logger"
	"talentsched/core/server"
)

// @title TalentSched API
// @version 1.0
// @description Interview scheduling service: slot search, conflict detection and multi-criteria slot selection.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@talentsched.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
