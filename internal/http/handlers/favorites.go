package handlers

import (
	"net/http"

	"villagestay/internal/domain/models"
	"villagestay/internal/http/middleware"
	"villagestay/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/favorites returns the owner's saved homestays, resolved
// against the catalog. Ids of listings that no longer exist are kept in
// the set but omitted here.
func GetFavorites(c *gin.Context) {
	ids, err := favoritesSet().List(middleware.OwnerKey(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	catalog := repositories.HomestayCatalog{}
	out := make([]models.Homestay, 0, len(ids))
	for _, id := range ids {
		if stay, err := catalog.GetByID(id); err == nil {
			out = append(out, stay)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"favorites": out,
		"ids":       ids,
		"count":     len(out),
	})
}

// POST /api/favorites/:homestayID
func AddFavorite(c *gin.Context) {
	id := c.Param("homestayID")
	catalog := repositories.HomestayCatalog{}
	if _, err := catalog.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := favoritesSet().Add(middleware.OwnerKey(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"homestay_id": id, "favorite": true})
}

// DELETE /api/favorites/:homestayID
func RemoveFavorite(c *gin.Context) {
	id := c.Param("homestayID")
	if err := favoritesSet().Remove(middleware.OwnerKey(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"homestay_id": id, "favorite": false})
}
