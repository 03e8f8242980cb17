// Prometheus ERP/internal/handlers/journal_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"prometheus-erp/models"
)

// JournalHandler - чтение проводок главной книги.
type JournalHandler struct {
	db *gorm.DB
}

// NewJournalHandler создает обработчик проводок.
func NewJournalHandler(db *gorm.DB) *JournalHandler {
	return &JournalHandler{db: db}
}

// ListJournalEntriesHandler отдает проводки, опционально по ссылке на
// документ (номер счета или платежа).
func (h *JournalHandler) ListJournalEntriesHandler(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Preload("Lines").
		Preload("Lines.Account").
		Order("created_at DESC")
	if reference := c.Query("reference"); reference != "" {
		q = q.Where("reference = ?", reference)
	}

	var entries []models.JournalEntry
	if err := q.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить проводки"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetJournalEntryHandler отдает одну проводку со строками.
func (h *JournalHandler) GetJournalEntryHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var entry models.JournalEntry
	err := h.db.WithContext(c.Request.Context()).
		Preload("Lines").
		Preload("Lines.Account").
		First(&entry, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Проводка не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить проводку"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
