package handlers

import (
	"net/http"

	"villagestay/internal/checkout"
	"villagestay/internal/domain"
	"villagestay/internal/domain/models"
	"villagestay/internal/http/middleware"
	"villagestay/internal/repositories"
	"villagestay/internal/utils"

	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	HomestayID   string `json:"homestay_id"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	Guests       int    `json:"guests"`
	DiscountCode string `json:"discount_code"`
}

// POST /api/quote prices a stay without opening a session.
func GetQuote(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	stay, err := repositories.HomestayCatalog{}.GetByID(req.HomestayID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	in, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "check_in must be YYYY-MM-DD", err)
		return
	}
	out, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "check_out must be YYYY-MM-DD", err)
		return
	}

	nights, err := domain.Nights(in, out)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if nights < 1 {
		RespondDomainError(c, domain.InvalidRangeError{
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
			Msg:      "stay must be at least one night",
		})
		return
	}

	discountPercent := 0
	if req.DiscountCode != "" {
		discountPercent, err = domain.LookupDiscount(req.DiscountCode)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	bd, err := domain.ComputeBreakdown(stay.PerNight, nights, discountPercent)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"homestay_id": stay.ID,
		"per_night":   stay.PerNight,
		"nights":      nights,
		"guests":      req.Guests,
		"breakdown":   bd,
	})
}

type startCheckoutRequest struct {
	HomestayID string `json:"homestay_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
}

func sessionView(s *checkout.Session) gin.H {
	stay := s.Homestay()
	checkIn, checkOut, nights, guests := s.Stay()
	code, pct := s.Discount()

	view := gin.H{
		"session_id": s.ID,
		"step":       s.Step().String(),
		"homestay": gin.H{
			"id":        stay.ID,
			"title":     stay.Title,
			"village":   stay.Location.Village,
			"state":     stay.Location.State,
			"per_night": stay.PerNight,
		},
		"check_in":  utils.FormatDate(checkIn),
		"check_out": utils.FormatDate(checkOut),
		"nights":    nights,
		"guests":    guests,
	}
	if s.Step() >= checkout.StepSummary {
		view["guest_info"] = s.GuestInfo()
	}
	if code != "" {
		view["discount_code"] = code
		view["discount_percent"] = pct
	}
	if bd, err := s.Breakdown(); err == nil {
		view["breakdown"] = bd
	}
	if b, ok := s.Booking(); ok {
		view["booking"] = b
	}
	return view
}

// POST /api/checkout
func StartCheckout(c *gin.Context) {
	var req startCheckoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	sess, err := checkoutSvc(c).Start(middleware.OwnerKey(c), req.HomestayID, req.CheckIn, req.CheckOut, req.Guests)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionView(sess))
}

// GET /api/checkout/:id
func GetCheckout(c *gin.Context) {
	sess, err := checkoutSvc(c).Get(middleware.OwnerKey(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// POST /api/checkout/:id/guest-info
func SubmitGuestInfo(c *gin.Context) {
	var info models.GuestInfo
	if !BindJSONOrError(c, &info) {
		return
	}

	sess, err := checkoutSvc(c).Get(middleware.OwnerKey(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := sess.SubmitGuestInfo(info); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

type discountRequest struct {
	Code string `json:"code"`
}

// POST /api/checkout/:id/discount
func ApplyDiscount(c *gin.Context) {
	var req discountRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	sess, err := checkoutSvc(c).Get(middleware.OwnerKey(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := sess.ApplyDiscount(req.Code); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// POST /api/checkout/:id/proceed
func ProceedCheckout(c *gin.Context) {
	sess, err := checkoutSvc(c).Get(middleware.OwnerKey(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := sess.Proceed(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// POST /api/checkout/:id/back
func BackCheckout(c *gin.Context) {
	sess, err := checkoutSvc(c).Get(middleware.OwnerKey(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := sess.Back(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

type payRequest struct {
	Method string `json:"method"`
}

// POST /api/checkout/:id/pay
func PayCheckout(c *gin.Context) {
	var req payRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := checkoutSvc(c).Pay(c.Request.Context(), middleware.OwnerKey(c), c.Param("id"), req.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": booking,
		"message": "booking confirmed",
	})
}
