// Prometheus ERP/internal/handlers/handler_utils.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prometheus-erp/internal/services"
)

// respondError переводит ошибку ядра в HTTP-ответ.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var stateErr *services.InvalidStateError
	var ruleErr *services.BusinessRuleViolation
	var imbalanceErr *services.AccountingImbalanceError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, gin.H{"error": stateErr.Error()})
	case errors.As(err, &ruleErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ruleErr.Error()})
	case errors.As(err, &imbalanceErr):
		// Нарушение инварианта учета - это ошибка программы, не клиента.
		c.JSON(http.StatusInternalServerError, gin.H{"error": imbalanceErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
	}
}

// parseID читает числовой идентификатор из параметра маршрута.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный идентификатор"})
		return 0, false
	}
	return uint(id), true
}
