package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
	"github.com/SscSPs/crypto_wallet_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type walletHandler struct {
	walletService   portssvc.WalletSvcFacade
	transferService portssvc.TransferSvc
}

func newWalletHandler(ws portssvc.WalletSvcFacade, ts portssvc.TransferSvc) *walletHandler {
	return &walletHandler{
		walletService:   ws,
		transferService: ts,
	}
}

// registerWalletRoutes registers wallet queries, admin funding and transfers.
func registerWalletRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup, walletService portssvc.WalletSvcFacade, transferService portssvc.TransferSvc) {
	h := newWalletHandler(walletService, transferService)

	admin.POST("/wallets", h.fundWallet)
	rg.GET("/wallets/:userID/:currencyID", h.getWallet)
	rg.POST("/transfers", h.transfer)
}

// fundWallet godoc
// @Summary Fund a wallet
// @Description Credits a user's wallet in a cryptocurrency, creating the wallet on first funding (admin operation)
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   funding body dto.FundWalletRequest true "Funding details"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Unknown user or cryptocurrency"
// @Failure 500 {object} map[string]string "Failed to fund wallet"
// @Router /admin/wallets [post]
func (h *walletHandler) fundWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FundWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.walletService.FundWallet(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to fund wallet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// getWallet godoc
// @Summary Get a wallet
// @Tags wallets
// @Produce  json
// @Param   userID path int true "User ID"
// @Param   currencyID path int true "Cryptocurrency ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} map[string]string "Invalid IDs"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 500 {object} map[string]string "Failed to retrieve wallet"
// @Router /wallets/{userID}/{currencyID} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}
	currencyID, ok := parseIDParam(c, "currencyID")
	if !ok {
		return
	}

	wallet, err := h.walletService.GetWallet(c.Request.Context(), userID, currencyID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve wallet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// transfer godoc
// @Summary Transfer between wallets
// @Description Debits the source wallet and credits the destination wallet, converting through the rate table when the currencies differ
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient balance"
// @Failure 404 {object} map[string]string "Exchange rate or destination user not found"
// @Failure 500 {object} map[string]string "Transfer failed"
// @Router /transfers [post]
func (h *walletHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.transferService.Transfer(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Transfer failed")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}
