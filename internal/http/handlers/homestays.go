package handlers

import (
	"net/http"
	"strconv"

	"villagestay/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/homestays?q=&state=&max_price=&guests=
func GetHomestays(c *gin.Context) {
	filter := repositories.CatalogFilter{
		Query: c.Query("q"),
		State: c.Query("state"),
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			RespondError(c, http.StatusBadRequest, "max_price must be a non-negative number", err)
			return
		}
		filter.MaxPrice = v
	}
	if raw := c.Query("guests"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			RespondError(c, http.StatusBadRequest, "guests must be a non-negative number", err)
			return
		}
		filter.MinGuests = v
	}

	list := repositories.HomestayCatalog{}.List(filter)
	c.JSON(http.StatusOK, gin.H{
		"homestays": list,
		"count":     len(list),
	})
}

// GET /api/homestays/:id
func GetHomestayByID(c *gin.Context) {
	stay, err := repositories.HomestayCatalog{}.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stay)
}
