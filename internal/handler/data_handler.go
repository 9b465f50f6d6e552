package handler

import (
	"net/http"
	"time"

	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
	"github.com/KailasVS666/Inventory-Management-System/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DataFileView describes one persisted collection
type DataFileView struct {
	Name     string     `json:"name"`
	Exists   bool       `json:"exists"`
	Size     int64      `json:"size"`
	SizeText string     `json:"size_text,omitempty"`
	ModTime  *time.Time `json:"mod_time,omitempty"`
}

// DataInfo reports existence and size of every collection
func (h *Handler) DataInfo(c echo.Context) error {
	log := logger.FromContext(c)

	infos, err := h.inv.DataInfo(c.Request().Context())
	if err != nil {
		return fail(c, log, "Failed to describe data files", err)
	}
	views := make([]DataFileView, len(infos))
	for i, info := range infos {
		views[i] = DataFileView{Name: info.Name, Exists: info.Exists}
		if info.Exists {
			mod := info.ModTime
			views[i].Size = info.Size
			views[i].SizeText = persistence.FormatSize(info.Size)
			views[i].ModTime = &mod
		}
	}
	return c.JSON(http.StatusOK, views)
}

// SaveAll writes every collection
func (h *Handler) SaveAll(c echo.Context) error {
	log := logger.FromContext(c)

	if err := h.inv.SaveAll(c.Request().Context()); err != nil {
		return fail(c, log, "Failed to save data", err)
	}
	log.Info("All data saved", zap.String("username", session(c).Username))
	return c.JSON(http.StatusOK, map[string]string{"status": "saved"})
}

// DeleteData removes one persisted collection
func (h *Handler) DeleteData(c echo.Context) error {
	log := logger.FromContext(c)

	if err := h.inv.DeleteData(c.Request().Context(), c.Param("name")); err != nil {
		return fail(c, log, "Failed to delete data file", err)
	}
	return c.NoContent(http.StatusNoContent)
}
