package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/crypto_wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_ledger/internal/dto"
	"github.com/SscSPs/crypto_wallet_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func registerReportingRoutes(admin *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}
	admin.GET("/total-balances", h.totalBalances)
}

// totalBalances godoc
// @Summary Total balance per cryptocurrency
// @Description Sums every wallet balance grouped by cryptocurrency, ordered by cryptocurrency ID (admin operation)
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.CurrencyTotalResponse
// @Failure 500 {object} map[string]string "Failed to compute total balances"
// @Router /admin/total-balances [get]
func (h *reportingHandler) totalBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.TotalBalancePerCurrency(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute total balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToTotalBalancesResponse(totals))
}
