package api

import (
	"errors"
	"net/http"

	resdto "komani-booking/internal/handler/dto/response"
	"komani-booking/internal/handler/httperr"
	"komani-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TourHandler struct {
	tourQueries queries.TourQueries
}

func NewTourHandler(tourQueries queries.TourQueries) *TourHandler {
	return &TourHandler{tourQueries: tourQueries}
}

// @Summary List tours
// @Description Full catalog with localized titles and inclusion lists
// @Tags tours
// @Produce json
// @Param locale query string false "Display locale (en|sq)"
// @Success 200 {array} resdto.TourResponse
// @Router /tours [get]
func (h *TourHandler) List(c *gin.Context) {
	views, err := h.tourQueries.List(c.Request.Context(), c.Query("locale"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTourViews(views))
}

// @Summary Get tour
// @Description One catalog entry by slug
// @Tags tours
// @Produce json
// @Param slug path string true "Tour slug"
// @Param locale query string false "Display locale (en|sq)"
// @Success 200 {object} resdto.TourResponse
// @Failure 404 {object} httperr.Response
// @Router /tours/{slug} [get]
func (h *TourHandler) Get(c *gin.Context) {
	view, err := h.tourQueries.BySlug(c.Request.Context(), c.Param("slug"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, queries.ErrTourNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tour not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTourView(view))
}
