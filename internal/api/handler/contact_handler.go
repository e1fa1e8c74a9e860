package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/brightline/tutoring-platform/internal/core/domain"
	"github.com/brightline/tutoring-platform/internal/core/ports"
)

// contactPath is the public contact page the form redirects back to.
const contactPath = "/contact"

// RateLimiter throttles the unauthenticated contact form. A nil limiter
// disables throttling.
type RateLimiter interface {
	Allow(ctx context.Context, scope, clientKey string) (bool, error)
}

type ContactHandler struct {
	contactService ports.ContactService
	limiter        RateLimiter
	logger         zerolog.Logger
}

func NewContactHandler(contactService ports.ContactService, limiter RateLimiter, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		limiter:        limiter,
		logger:         logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Submit accepts a public contact form submission. Delivery happens inline
// but its outcome never changes the response: once the record is stored the
// submission is accepted.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Param        name     formData  string  true  "Name"
// @Param        email    formData  string  true  "Email"
// @Param        phone    formData  string  true  "Phone"
// @Param        message  formData  string  true  "Message"
// @Success      303
// @Failure      422  {object}  fieldErrorsResponse
// @Failure      429  {object}  errorResponse
// @Router       /contact-forms [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(ctx, "contact_form", c.RealIP())
		if err != nil {
			// A broken limiter must not take the form down with it.
			h.logger.Warn().Err(err).Msg("rate limit check failed, allowing request")
		} else if !allowed {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many submissions, try again later"})
		}
	}

	var req contactFormRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.contactService.Submit(ctx, ports.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	if !result.Accepted() {
		return c.JSON(http.StatusUnprocessableEntity, fieldErrorsResponse{Errors: result.FieldErrors})
	}

	notice := url.QueryEscape("Thank you for your message! We will contact you soon via WhatsApp.")
	return c.Redirect(http.StatusSeeOther, contactPath+"?notice="+notice)
}

// ListSubmissions returns submissions with their delivery status.
// Administrator only.
//
// @Summary      List contact submissions
// @Tags         contact
// @Produce      json
// @Param        delivery_state  query     string  false  "Filter by delivery state"
// @Param        page            query     int     false  "Page number (1-based)"
// @Param        limit           query     int     false  "Page size"
// @Success      200  {object}  submissionListResponse
// @Failure      403  {object}  errorResponse
// @Router       /contact-submissions [get]
func (h *ContactHandler) ListSubmissions(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	filter := ports.ListSubmissionsFilter{
		DeliveryState: domain.DeliveryState(c.QueryParam("delivery_state")),
		Page:          intQueryParam(c, "page", 1),
		Limit:         intQueryParam(c, "limit", 20),
	}

	subs, total, err := h.contactService.List(c.Request().Context(), actor, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, submissionListResponse{Submissions: subs, Total: total})
}

// GetSubmission returns one submission with its delivery status.
// Administrator only.
//
// @Summary      Get a contact submission
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  domain.ContactSubmission
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /contact-submissions/{id} [get]
func (h *ContactHandler) GetSubmission(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	sub, err := h.contactService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}
