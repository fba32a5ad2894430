package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
	"github.com/SscSPs/crypto_wallet_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to cryptocurrencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to cryptocurrencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	admin.POST("/cryptocurrencies", h.createCurrency)

	currencies := rg.Group("/cryptocurrencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:currencyID", h.getCurrency)
	}
}

// createCurrency godoc
// @Summary Create a new cryptocurrency
// @Description Adds a new cryptocurrency to the system (admin operation)
// @Tags cryptocurrencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Cryptocurrency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name already exists"
// @Failure 500 {object} map[string]string "Failed to create cryptocurrency"
// @Router /admin/cryptocurrencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create cryptocurrency", slog.String("name", req.Name))

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create cryptocurrency")
		return
	}

	logger.Info("Cryptocurrency created successfully", slog.Int64("currency_id", createdCurrency.CurrencyID))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(createdCurrency))
}

// getCurrency godoc
// @Summary Get a cryptocurrency by ID
// @Tags cryptocurrencies
// @Produce  json
// @Param   currencyID path int true "Cryptocurrency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Cryptocurrency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve cryptocurrency"
// @Router /cryptocurrencies/{currencyID} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID, ok := parseIDParam(c, "currencyID")
	if !ok {
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		respondWithError(c, logger.With(slog.Int64("currency_id", currencyID)), err, "Failed to retrieve cryptocurrency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List all cryptocurrencies
// @Tags cryptocurrencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list cryptocurrencies"
// @Router /cryptocurrencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list cryptocurrencies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
