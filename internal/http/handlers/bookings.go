package handlers

import (
	"net/http"

	"villagestay/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings
func GetBookings(c *gin.Context) {
	list, err := bookingSvc(c).List(middleware.OwnerKey(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": list,
		"count":    len(list),
	})
}

// GET /api/bookings/:ref
func GetBookingByRef(c *gin.Context) {
	b, err := bookingSvc(c).Get(middleware.OwnerKey(c), c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PUT /api/bookings/:ref/cancel
func CancelBooking(c *gin.Context) {
	b, err := bookingSvc(c).Cancel(middleware.OwnerKey(c), c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": b,
		"message": "booking cancelled",
	})
}

// GET /api/bookings/:ref/invoice
func GetBookingInvoicePDF(c *gin.Context) {
	pdf, filename, err := docsSvc(c).GenerateInvoice(middleware.OwnerKey(c), c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
