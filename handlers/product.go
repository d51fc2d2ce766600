package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"catalogapi/models"
	"catalogapi/service"
	"catalogapi/utils"
)

// Error codes surfaced in the response envelope.
const (
	CodeProductIDRequired     = "PRODUCT_ID_REQUIRED"
	CodeProductNotFound       = "PRODUCT_NOT_FOUND"
	CodeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
	CodeInternalServerError   = "INTERNAL_SERVER_ERROR"
)

// ProductHandler exposes the catalog operations over HTTP.
type ProductHandler struct {
	products *service.ProductService
	log      zerolog.Logger
}

func NewProductHandler(products *service.ProductService, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

// GetProducts lists one page of the catalog. Addressing is either
// limit/offset or limit/page; an explicit non-zero offset wins over
// page, otherwise offset = (page-1)*limit.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	payload := utils.GetPayload(c)

	limit := payload.Int(10, "limit")
	if limit <= 0 {
		limit = 10
	}
	page := payload.Int(1, "page")
	if page <= 0 {
		page = 1
	}
	offset := payload.Int(0, "offset")
	if offset <= 0 {
		offset = (page - 1) * limit
	}
	search := payload.String("search", "q")

	products, total, err := h.products.GetProducts(c.Request.Context(), limit, offset, search)
	if err != nil {
		h.log.Error().Err(err).Msg("get products")
		utils.Respond(c, false, http.StatusInternalServerError, nil, nil, CodeInternalServerError)
		return
	}

	var searchEcho *string
	if search != "" {
		searchEcho = &search
	}
	pagination := &models.Pagination{
		Page:       offset/limit + 1,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
		Search:     searchEcho,
	}

	utils.Respond(c, true, http.StatusOK, products, pagination, "")
}

// GetProduct fetches a single product by id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	payload := utils.GetPayload(c)

	productID := payload.String("productId", "product_id")
	if productID == "" {
		utils.Respond(c, false, http.StatusBadRequest, nil, nil, CodeProductIDRequired)
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), productID)
	if errors.Is(err, service.ErrProductNotFound) {
		utils.Respond(c, false, http.StatusNotFound, nil, nil, CodeProductNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("get product")
		utils.Respond(c, false, http.StatusInternalServerError, nil, nil, CodeInternalServerError)
		return
	}

	utils.Respond(c, true, http.StatusOK, product, nil, "")
}

// CreateProduct adds a new product. Title and a non-zero price are
// required; the other fields are optional.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	payload := utils.GetPayload(c)

	title := payload.String("product_title")
	price, priceOK := payload.Float("product_price")
	if title == "" || !priceOK || price == 0 {
		utils.Respond(c, false, http.StatusBadRequest, nil, nil, CodeMissingRequiredFields)
		return
	}

	input := models.CreateProductInput{
		ProductTitle: title,
		ProductPrice: price,
	}
	if value, ok := payload.Lookup("product_description"); ok {
		s := utils.StringValue(value)
		input.ProductDescription = &s
	}
	if value, ok := payload.Lookup("product_image"); ok {
		s := utils.StringValue(value)
		input.ProductImage = &s
	}
	if value, ok := payload.Lookup("product_category"); ok {
		s := utils.StringValue(value)
		input.ProductCategory = &s
	}

	product, err := h.products.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.log.Error().Err(err).Msg("create product")
		utils.Respond(c, false, http.StatusInternalServerError, nil, nil, CodeInternalServerError)
		return
	}

	utils.Respond(c, true, http.StatusCreated, product, nil, "")
}

// UpdateProduct applies a partial update. Only supplied fields change;
// an empty field set returns the product untouched.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	payload := utils.GetPayload(c)

	productID := payload.String("productId", "product_id")
	if productID == "" {
		utils.Respond(c, false, http.StatusBadRequest, nil, nil, CodeProductIDRequired)
		return
	}

	input := models.UpdateProductInput{}
	if title := payload.String("product_title"); title != "" {
		input.ProductTitle = &title
	}
	if price, ok := payload.Float("product_price"); ok {
		input.ProductPrice = &price
	}
	if value, ok := payload.Lookup("product_description"); ok {
		s := utils.StringValue(value)
		input.ProductDescription = &s
	}
	if value, ok := payload.Lookup("product_image"); ok {
		s := utils.StringValue(value)
		input.ProductImage = &s
	}
	if value, ok := payload.Lookup("product_category"); ok {
		s := utils.StringValue(value)
		input.ProductCategory = &s
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), productID, input)
	if errors.Is(err, service.ErrProductNotFound) {
		utils.Respond(c, false, http.StatusNotFound, nil, nil, CodeProductNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("update product")
		utils.Respond(c, false, http.StatusInternalServerError, nil, nil, CodeInternalServerError)
		return
	}

	utils.Respond(c, true, http.StatusOK, product, nil, "")
}

// DeleteProduct removes a product. A missing row is a 404, not an
// internal error.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	payload := utils.GetPayload(c)

	productID := payload.String("productId", "product_id")
	if productID == "" {
		utils.Respond(c, false, http.StatusBadRequest, nil, nil, CodeProductIDRequired)
		return
	}

	err := h.products.DeleteProduct(c.Request.Context(), productID)
	if errors.Is(err, service.ErrProductNotFound) {
		utils.Respond(c, false, http.StatusNotFound, nil, nil, CodeProductNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("delete product")
		utils.Respond(c, false, http.StatusInternalServerError, nil, nil, CodeInternalServerError)
		return
	}

	utils.Respond(c, true, http.StatusOK, gin.H{"message": "Product deleted successfully"}, nil, "")
}
