package handlers

import (
	"errors"
	"net/http"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GroupHandler struct {
	svc service.InventoryService
	log *zap.Logger
}

func NewGroupHandler(svc service.InventoryService, log *zap.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, log: log}
}

func (h *GroupHandler) ListIncoming(c *gin.Context) {
	page, limit := parsePagination(c)

	groups, pg, err := h.svc.ListIncomingGroups(c.Request.Context(), page, limit)
	if err != nil {
		h.log.Error("Ошибка при получении партий прихода", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.FailWith("Error fetching incoming groups", err))
		return
	}

	c.JSON(http.StatusOK, dto.OKPage(dto.IncomingGroupsFromService(groups), pageToDTO(pg)))
}

func (h *GroupHandler) DeleteIncoming(c *gin.Context) {
	groupName := c.Param("groupName")

	result, err := h.svc.DeleteIncomingGroup(c.Request.Context(), groupName)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("Incoming group not found or no products in this group"))
			return
		}
		h.log.Error("Ошибка при удалении партии прихода", zap.String("group", groupName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.FailWith("Error deleting incoming group", err))
		return
	}

	deleted := make([]dto.DeletedProduct, 0, len(result.DeletedProducts))
	for _, p := range result.DeletedProducts {
		deleted = append(deleted, dto.DeletedProduct{
			ID:           p.ID,
			Title:        p.Title,
			SerialNumber: p.SerialNumber,
		})
	}

	c.JSON(http.StatusOK, dto.OKMessage(
		"Incoming group and all associated products deleted successfully",
		dto.DeletedGroup{
			GroupName:            result.GroupName,
			DeletedProductsCount: result.DeletedProductsCount,
			DeletedProducts:      deleted,
		},
	))
}

func (h *GroupHandler) ListTypes(c *gin.Context) {
	page, limit := parsePagination(c)

	groups, pg, err := h.svc.ListTypeGroups(c.Request.Context(), page, limit)
	if err != nil {
		h.log.Error("Ошибка при получении групп по типам", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.FailWith("Error fetching type groups", err))
		return
	}

	c.JSON(http.StatusOK, dto.OKPage(dto.TypeGroupsFromService(groups), pageToDTO(pg)))
}
