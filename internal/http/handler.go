package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/switchbox-service/internal/domain/dto"
	"github.com/guttosm/switchbox-service/internal/domain/model"
	"github.com/guttosm/switchbox-service/internal/i18n"
	"github.com/guttosm/switchbox-service/internal/service"
)

// ProjectHandler provides HTTP handlers for project and box routes.
type ProjectHandler struct {
	store   *service.ProjectStore
	catalog service.Catalog
}

// NewProjectHandler creates a new ProjectHandler instance.
func NewProjectHandler(store *service.ProjectStore, catalog service.Catalog) *ProjectHandler {
	return &ProjectHandler{
		store:   store,
		catalog: catalog,
	}
}

// GetProject handles GET /api/project requests.
//
// @Summary      Get project state
// @Description  Returns the full project: client name, boxes with module accounting, and complementary products.
// @Tags         Project
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Project state"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/project [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	builder := NewResponseBuilder(c)

	boxes := h.store.Boxes()
	views := make([]dto.BoxResponse, 0, len(boxes))
	for _, box := range boxes {
		views = append(views, dto.NewBoxResponse(box, service.UsedModules(box), service.RemainingModules(box)))
	}

	builder.SuccessOK(dto.ProjectResponse{
		ClientName:    h.store.ClientName(),
		Boxes:         views,
		Complementary: h.store.ComplementaryProducts(),
	})
}

// SetClient handles PUT /api/project/client requests.
//
// @Summary      Set client name
// @Description  Sets the client name used in summary exports.
// @Tags         Project
// @Accept       json
// @Produce      json
// @Param        request body dto.SetClientRequest true "Client name"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/project/client [put]
func (h *ProjectHandler) SetClient(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SetClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.store.SetClientName(req.ClientName)
	builder.SuccessOK(gin.H{"client_name": req.ClientName})
}

// ResetProject handles POST /api/project/reset requests.
//
// @Summary      Reset project
// @Description  Clears the client name, all boxes and all complementary products.
// @Tags         Project
// @Produce      json
// @Success      200 {object} dto.SuccessResponse
// @Router       /api/project/reset [post]
func (h *ProjectHandler) ResetProject(c *gin.Context) {
	builder := NewResponseBuilder(c)
	h.store.Reset()
	builder.SuccessOK(gin.H{"status": "reset"})
}

// CreateBox handles POST /api/boxes requests.
//
// @Summary      Add a box
// @Description  Adds a new installation box to the project. The box type and module capacity pairing is validated against the supported capacities.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreateBoxRequest true "Box definition"
// @Success      201 {object} dto.SuccessResponse "Created box"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid box type or capacity"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/boxes [post]
func (h *ProjectHandler) CreateBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateBoxRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	box, err := h.store.AddBox(model.BoxData{
		Name:           req.Name,
		Area:           req.Area,
		Description:    req.Description,
		BoxType:        model.BoxType(req.BoxType),
		ModuleCapacity: req.ModuleCapacity,
		Color:          req.Color,
	})
	if err != nil {
		switch err {
		case service.ErrInvalidBoxType:
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidBoxType, err)
		case service.ErrInvalidCapacity:
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidCapacity, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessCreated(dto.NewBoxResponse(box, 0, box.ModuleCapacity))
}

// ListBoxes handles GET /api/boxes requests.
//
// @Summary      List boxes
// @Description  Returns all boxes in creation order with their module accounting.
// @Tags         Boxes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Boxes"
// @Router       /api/boxes [get]
func (h *ProjectHandler) ListBoxes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	boxes := h.store.Boxes()
	views := make([]dto.BoxResponse, 0, len(boxes))
	for _, box := range boxes {
		views = append(views, dto.NewBoxResponse(box, service.UsedModules(box), service.RemainingModules(box)))
	}
	builder.SuccessOK(views)
}

// GetBox handles GET /api/boxes/:id requests.
//
// @Summary      Get a box
// @Description  Returns a single box with its installed products and module accounting.
// @Tags         Boxes
// @Produce      json
// @Param        id path string true "Box ID"
// @Success      200 {object} dto.SuccessResponse "Box"
// @Failure      404 {object} dto.ErrorResponse "Box not found"
// @Router       /api/boxes/{id} [get]
func (h *ProjectHandler) GetBox(c *gin.Context) {
	builder := NewResponseBuilder(c)

	box, ok := h.store.BoxByID(c.Param("id"))
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(dto.NewBoxResponse(box, service.UsedModules(box), service.RemainingModules(box)))
}

// UpdateBox handles PUT /api/boxes/:id requests.
//
// @Summary      Update box metadata
// @Description  Updates box name, area, description, type, capacity or color. Installed products are never changed by this endpoint.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        id path string true "Box ID"
// @Param        request body dto.UpdateBoxRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated box"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Box not found"
// @Router       /api/boxes/{id} [put]
func (h *ProjectHandler) UpdateBox(c *gin.Context) {
	builder := NewResponseBuilder(c)
	boxID := c.Param("id")

	var req dto.UpdateBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if !h.store.UpdateBox(boxID, model.BoxData{
		Name:           req.Name,
		Area:           req.Area,
		Description:    req.Description,
		BoxType:        model.BoxType(req.BoxType),
		ModuleCapacity: req.ModuleCapacity,
		Color:          req.Color,
	}) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	box, _ := h.store.BoxByID(boxID)
	builder.SuccessOK(dto.NewBoxResponse(box, service.UsedModules(box), service.RemainingModules(box)))
}

// DeleteBox handles DELETE /api/boxes/:id requests.
//
// @Summary      Delete a box
// @Description  Removes a box and everything installed in it. Deleting an unknown box is a no-op.
// @Tags         Boxes
// @Produce      json
// @Param        id path string true "Box ID"
// @Success      200 {object} dto.SuccessResponse
// @Router       /api/boxes/{id} [delete]
func (h *ProjectHandler) DeleteBox(c *gin.Context) {
	builder := NewResponseBuilder(c)
	h.store.DeleteBox(c.Param("id"))
	builder.SuccessOK(gin.H{"status": "deleted"})
}

// AddProduct handles POST /api/boxes/:id/products requests.
//
// @Summary      Install a product in a box
// @Description  Installs a catalog product into a box. Re-adding an existing SKU increments its quantity; only the added modules are checked against the remaining capacity. Products that declare no module size are rejected.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        id path string true "Box ID"
// @Param        request body dto.AddProductRequest true "SKU and quantity"
// @Success      200 {object} dto.SuccessResponse "Updated box"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or product not installable"
// @Failure      404 {object} dto.ErrorResponse "Box or product not found"
// @Failure      409 {object} dto.ErrorResponse "Conflict - not enough module space"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/boxes/{id}/products [post]
func (h *ProjectHandler) AddProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)
	boxID := c.Param("id")

	req, err := BuildRequestAndValidate[dto.AddProductRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	box, ok := h.store.BoxByID(boxID)
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	product, err := h.catalog.BySKU(c.Request.Context(), req.SKU)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}
	if product == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}
	if !product.IsBoxCompatible() {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyProductNotInstallable, nil)
		return
	}

	if !h.store.AddProduct(boxID, *product, req.Quantity) {
		h.capacityExceeded(c, builder, boxID)
		return
	}

	box, _ = h.store.BoxByID(boxID)
	builder.SuccessOK(dto.NewBoxResponse(box, service.UsedModules(box), service.RemainingModules(box)))
}

// UpdateProductQuantity handles PUT /api/boxes/:id/products/:sku requests.
//
// @Summary      Set an installed product's quantity
// @Description  Sets the absolute quantity of an installed product. Only the module delta is checked, so decreasing always succeeds. Quantity 0 removes the product from the box.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        id path string true "Box ID"
// @Param        sku path string true "Product SKU"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse "Updated box"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid quantity"
// @Failure      404 {object} dto.ErrorResponse "Box or product line not found"
// @Failure      409 {object} dto.ErrorResponse "Conflict - not enough module space"
// @Router       /api/boxes/{id}/products/{sku} [put]
func (h *ProjectHandler) UpdateProductQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	boxID := c.Param("id")
	sku := c.Param("sku")

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		return
	}

	box, ok := h.store.BoxByID(boxID)
	if !ok || box.LineBySKU(sku) < 0 {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	if !h.store.UpdateProductQuantity(boxID, sku, req.Quantity) {
		h.capacityExceeded(c, builder, boxID)
		return
	}

	box, _ = h.store.BoxByID(boxID)
	builder.SuccessOK(dto.NewBoxResponse(box, service.UsedModules(box), service.RemainingModules(box)))
}

// RemoveProduct handles DELETE /api/boxes/:id/products/:sku requests.
//
// @Summary      Remove a product from a box
// @Description  Removes the product line unconditionally. Removing an unknown line is a no-op.
// @Tags         Boxes
// @Produce      json
// @Param        id path string true "Box ID"
// @Param        sku path string true "Product SKU"
// @Success      200 {object} dto.SuccessResponse
// @Router       /api/boxes/{id}/products/{sku} [delete]
func (h *ProjectHandler) RemoveProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)
	h.store.RemoveProduct(c.Param("id"), c.Param("sku"))
	builder.SuccessOK(gin.H{"status": "removed"})
}

// AddComplementary handles POST /api/complementary requests.
//
// @Summary      Add a complementary product
// @Description  Adds a non-installable product (cable, conduit, glue) to the project. Complementary products carry no capacity constraint.
// @Tags         Complementary
// @Accept       json
// @Produce      json
// @Param        request body dto.AddComplementaryRequest true "SKU and quantity"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Product not found in catalog"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/complementary [post]
func (h *ProjectHandler) AddComplementary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddComplementaryRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	product, err := h.catalog.BySKU(c.Request.Context(), req.SKU)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}
	if product == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	h.store.AddComplementaryProduct(model.ComplementaryProduct{
		SKU:         product.SKU,
		Name:        product.Name,
		Quantity:    req.Quantity,
		Area:        req.Area,
		Description: req.Description,
	})
	builder.SuccessOK(gin.H{"complementary_products": h.store.ComplementaryProducts()})
}

// ListComplementary handles GET /api/complementary requests.
//
// @Summary      List complementary products
// @Tags         Complementary
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Complementary products"
// @Router       /api/complementary [get]
func (h *ProjectHandler) ListComplementary(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.store.ComplementaryProducts())
}

// RemoveComplementary handles DELETE /api/complementary/:sku requests.
//
// @Summary      Remove a complementary product
// @Description  Removes the complementary product line unconditionally. Removing an unknown SKU is a no-op.
// @Tags         Complementary
// @Produce      json
// @Param        sku path string true "Product SKU"
// @Success      200 {object} dto.SuccessResponse
// @Router       /api/complementary/{sku} [delete]
func (h *ProjectHandler) RemoveComplementary(c *gin.Context) {
	builder := NewResponseBuilder(c)
	h.store.RemoveComplementaryProduct(c.Param("sku"))
	builder.SuccessOK(gin.H{"complementary_products": h.store.ComplementaryProducts()})
}

// capacityExceeded writes the 409 conflict response carrying the remaining
// module count for the box.
func (h *ProjectHandler) capacityExceeded(c *gin.Context, builder *ResponseBuilder, boxID string) {
	locale := i18n.GetLocale(c)
	format := i18n.GetTranslator().Translate(i18n.ErrKeyCapacityExceeded, locale)
	remaining := h.store.RemainingModules(boxID)
	builder.ErrorWithMessage(http.StatusConflict, fmt.Sprintf(format, remaining), nil)
}
