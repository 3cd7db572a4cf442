package stripewebhooks

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"

	"gallery-app/database"
	salesapi "gallery-app/internal/api/sales"
	"gallery-app/internal/infra/logger"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
	"go.uber.org/zap"
)

func StripeWebhook(c *gin.Context) {
	endpointSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		logger.L().Warn("stripe signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		if err := handleCheckoutCompleted(&session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})

	default:
		// Unhandled event types are acknowledged so Stripe stops
		// retrying them.
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	}
}

// handleCheckoutCompleted resolves the sale from the session metadata
// (falling back to the stored session id) and marks it paid. MarkPaid
// is idempotent for already-paid sales, so webhook retries are safe.
func handleCheckoutCompleted(session *stripe.CheckoutSession) error {
	var saleID uint
	if raw, ok := session.Metadata["sale_id"]; ok {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
			saleID = uint(n)
		}
	}

	if saleID == 0 {
		s, err := salesapi.FindBySession(database.DB, session.ID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				logger.L().Warn("checkout session with no matching sale",
					zap.String("session_id", session.ID))
				return nil
			}
			return err
		}
		saleID = s.ID
	}

	if _, err := salesapi.MarkPaid(database.DB, saleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) || errors.Is(err, repo.ErrConflict) {
			logger.L().Warn("checkout completed for unusable sale",
				zap.Uint("sale_id", saleID), zap.Error(err))
			return nil
		}
		return err
	}

	logger.L().Info("sale paid via stripe checkout", zap.Uint("sale_id", saleID))
	return nil
}

func readStripeBody(c *gin.Context, limit int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	return io.ReadAll(c.Request.Body)
}
