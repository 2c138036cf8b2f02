package handlers

import (
	"net/http"

	"villagestay/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/host/applications
func SubmitHostApplication(c *gin.Context) {
	var app models.HostApplication
	if !BindJSONOrError(c, &app) {
		return
	}

	saved, err := hostSvc(c).SubmitApplication(app)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"application": saved,
		"message":     "application received, our team will get back to you",
	})
}
