package controllers

import (
	"errors"
	"net/http"

	"github.com/Narug1fps/cardapio-sub000/services"
	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation and illegal transitions → 400, unknown ids → 404, everything
// else → a generic 500 the operator may retry manually.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Operation failed")
	}
}
