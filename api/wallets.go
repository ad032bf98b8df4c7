package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/harishrd0x/flight-reservation-system/internal/service/wallet"
)

type WalletHandler struct {
	service wallet.WalletUseCase
}

// amount accepts both a JSON number and a string so callers never go
// through binary floating point on their side.
type addFundsRequest struct {
	Amount json.Number `json:"amount"`
}

type transactionResponse struct {
	ID              int64  `json:"id"`
	BookingID       *int64 `json:"booking_id,omitempty"`
	Amount          string `json:"amount"`
	TransactionType string `json:"transaction_type"`
	Description     string `json:"description"`
	CreatedAt       string `json:"created_at"`
}

type walletResponse struct {
	ID           int64                 `json:"id"`
	UserID       int64                 `json:"user_id"`
	Balance      string                `json:"balance"`
	Transactions []transactionResponse `json:"transactions,omitempty"`
}

func NewWalletHandler(service wallet.WalletUseCase) *WalletHandler {
	return &WalletHandler{service: service}
}

func (h *WalletHandler) get(c *gin.Context) {
	w, transactions, err := h.service.GetWallet(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWalletResponse(w, transactions))
}

func (h *WalletHandler) addFunds(c *gin.Context) {
	var req addFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := h.service.AddFunds(c.Request.Context(), currentUserID(c), req.Amount.String())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Funds added", "wallet": toWalletResponse(w, nil)})
}

func toWalletResponse(w *domain.Wallet, transactions []domain.PaymentTransaction) *walletResponse {
	if w == nil {
		return nil
	}
	resp := &walletResponse{
		ID:      w.ID,
		UserID:  w.UserID,
		Balance: w.Balance.StringFixed(2),
	}
	for _, t := range transactions {
		resp.Transactions = append(resp.Transactions, transactionResponse{
			ID:              t.ID,
			BookingID:       t.BookingID,
			Amount:          t.Amount.StringFixed(2),
			TransactionType: string(t.TransactionType),
			Description:     t.Description,
			CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
