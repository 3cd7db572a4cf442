package sales

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/domain/sales"
	"gallery-app/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// POST /admin/sales/:id/checkout
// Creates a Stripe Checkout session for a pending sale and stores its
// id on the sale; the webhook completes the transition to paid.
func CreateCheckoutSession(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	s, err := GetByID(database.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sale"})
		return
	}
	if s.Status != sales.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Sale is not pending"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(s.BuyerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("eur"),
				UnitAmount: stripe.Int64(int64(s.Price * 100)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("Artwork #%d", s.ArtworkID)),
				},
			},
		}},
		SuccessURL: stripe.String(config.CORS_ORIGIN + "/purchase/success"),
		CancelURL:  stripe.String(config.CORS_ORIGIN + "/purchase/cancelled"),
		Metadata: map[string]string{
			"sale_id": fmt.Sprint(s.ID),
		},
	}

	session, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	if err := SetStripeSession(database.DB, s.ID, session.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout_url": session.URL, "session_id": session.ID})
}
