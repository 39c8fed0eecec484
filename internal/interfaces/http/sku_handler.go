package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sku-inventory-api/internal/application/catalog"
	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/pkg/metrics"
)

// SKUHandler maneja las peticiones HTTP del catálogo de SKUs (protegido).
type SKUHandler struct {
	uc       *catalog.SKUUseCase
	lowStock *catalog.LowStockUseCase
	metrics  *metrics.HTTPMetrics
}

// NewSKUHandler construye el handler. m puede ser nil.
func NewSKUHandler(uc *catalog.SKUUseCase, lowStock *catalog.LowStockUseCase, m *metrics.HTTPMetrics) *SKUHandler {
	return &SKUHandler{uc: uc, lowStock: lowStock, metrics: m}
}

// Create godoc
// @Summary      Crear SKU
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSKURequest  true  "Datos del SKU"
// @Success      201   {object}  dto.SKUResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/skus [post]
func (h *SKUHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSKURequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	h.observe("create", err)
	if err != nil {
		return writeError(c, err, skuResource)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar SKUs con filtros
// @Description  category, warehouse y supplier aceptan la clave repetida o valores separados por coma.
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Texto en name, sku o barcode"
// @Param        category   query  string  false  "Categorías"
// @Param        warehouse  query  string  false  "IDs de bodega"
// @Param        supplier   query  string  false  "IDs de proveedor"
// @Param        minStock   query  number  false  "Stock mínimo (inclusive)"
// @Param        maxStock   query  number  false  "Stock máximo (inclusive)"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.SKUListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/skus [get]
func (h *SKUHandler) List(c *fiber.Ctx) error {
	q := dto.SKUListQuery{
		Search:    c.Query("search"),
		Category:  queryValues(c, "category"),
		Warehouse: queryValues(c, "warehouse"),
		Supplier:  queryValues(c, "supplier"),
		MinStock:  c.Query("minStock"),
		MaxStock:  c.Query("maxStock"),
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err, skuResource)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener SKU por ID
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del SKU"
// @Success      200  {object}  dto.SKUResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [get]
func (h *SKUHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, skuResource)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar SKU
// @Description  sku, initialStock y currentStock no se modifican. Si se envía version y no coincide, responde 409.
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del SKU"
// @Param        body  body  dto.UpdateSKURequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SKUResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [put]
func (h *SKUHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSKURequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	h.observe("update", err)
	if err != nil {
		return writeError(c, err, skuResource)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar SKU
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del SKU"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [delete]
func (h *SKUHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.UserContext(), c.Params("id"))
	h.observe("delete", err)
	if err != nil {
		return writeError(c, err, skuResource)
	}
	return c.JSON(dto.MessageResponse{Message: "SKU removed"})
}

// Categories godoc
// @Summary      Categorías distintas, ordenadas
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/skus/categories [get]
func (h *SKUHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return writeError(c, err, skuResource)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      SKUs bajo su punto de reorden
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SKUResponse
// @Router       /api/skus/low-stock [get]
func (h *SKUHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.lowStock.List(c.UserContext())
	if err != nil {
		return writeError(c, err, skuResource)
	}
	return c.JSON(out)
}

// LowStockReport godoc
// @Summary      Reporte PDF de stock bajo
// @Tags         skus
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/skus/low-stock/report.pdf [get]
func (h *SKUHandler) LowStockReport(c *fiber.Ctx) error {
	pdf, err := h.lowStock.Report(c.UserContext())
	if err != nil {
		return writeError(c, err, skuResource)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="low-stock.pdf"`)
	return c.Send(pdf)
}

func (h *SKUHandler) observe(op string, err error) {
	if h.metrics != nil {
		h.metrics.ObserveSKUOperation(op, err)
	}
}

// queryValues devuelve todas las repeticiones de una clave de la query string.
func queryValues(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, string(v))
	}
	return out
}
