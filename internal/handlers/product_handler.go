package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	svc service.InventoryService
	log *zap.Logger
}

func NewProductHandler(svc service.InventoryService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

// parsePagination читает page/limit из query, дефолты 1/10.
func parsePagination(c *gin.Context) (int, int) {
	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	limit := 10
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	return page, limit
}

func pageToDTO(p service.Page) dto.Pagination {
	return dto.Pagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	products, pg, err := h.svc.ListProducts(c.Request.Context(), service.ProductListFilter{
		Type:          c.Query("type"),
		Specification: c.Query("specification"),
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		h.log.Error("Ошибка при получении списка товаров", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.FailWith("Error fetching products", err))
		return
	}

	c.JSON(http.StatusOK, dto.OKPage(dto.ProductsFromService(products), pageToDTO(pg)))
}

func (h *ProductHandler) Filters(c *gin.Context) {
	opts, err := h.svc.GetFilterOptions(c.Request.Context())
	if err != nil {
		h.log.Error("Ошибка при получении фильтров", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.FailWith("Error fetching filter options", err))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.FilterOptions{
		Types:          opts.Types,
		Specifications: opts.Specifications,
		Groups:         opts.Groups,
	}))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Некорректное тело запроса создания товара", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.Fail("Missing required fields: title, type, serialNumber, date, incomingGroup, username"))
		case errors.Is(err, service.ErrNoPositivePrice):
			c.JSON(http.StatusBadRequest, dto.Fail("At least one price must be provided"))
		case errors.Is(err, service.ErrSerialNumberTaken):
			h.log.Warn("Дубликат серийного номера", zap.Int64("serialNumber", req.SerialNumber))
			c.JSON(http.StatusBadRequest, dto.Fail(fmt.Sprintf("Product with serial number %d already exists", req.SerialNumber)))
		default:
			h.log.Error("Ошибка при создании товара", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.FailWith("Error creating product", err))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Product created successfully", dto.ProductFromService(*product)))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid product ID"))
		return
	}

	deleted, err := h.svc.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("Product not found"))
			return
		}
		h.log.Error("Ошибка при удалении товара", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.FailWith("Error deleting product", err))
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Product deleted successfully", dto.DeletedProduct{
		ID:           deleted.ID,
		Title:        deleted.Title,
		SerialNumber: deleted.SerialNumber,
	}))
}
