package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coinapi/models"
	"coinapi/service"
)

// Appended to lookup failures on the single-user endpoint, matching the
// original service's wording.
const capitalizationHint = "Username capitalization matters! For example, jason != Jason"

// UserHandler translates HTTP requests into service calls. All inputs are
// path parameters; success bodies are JSON for user payloads and plain text
// for transfer summaries, errors are plain text.
type UserHandler struct {
	users     service.UserService
	transfers service.TransferService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users service.UserService, transfers service.TransferService) *UserHandler {
	return &UserHandler{users: users, transfers: transfers}
}

// CreateUser handles POST /users/:userName
func (h *UserHandler) CreateUser(c *gin.Context) {
	name := c.Param("userName")

	user, err := h.users.CreateUser(c.Request.Context(), name)
	if err != nil {
		var dup *service.DuplicateNameError
		if errors.As(err, &dup) {
			c.String(http.StatusBadRequest, dup.Error())
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	doc, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GetUser handles GET /users/:userName
func (h *UserHandler) GetUser(c *gin.Context) {
	name := c.Param("userName")

	user, err := h.users.GetUser(c.Request.Context(), name)
	if err != nil {
		var notFound *service.UserNotFoundError
		if errors.As(err, &notFound) {
			c.String(http.StatusNotFound, "%s %s", notFound.Error(), capitalizationHint)
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

// Transfer handles PUT /users/:userName/:toUserName/:coinsToTransfer
func (h *UserHandler) Transfer(c *gin.Context) {
	fromName := c.Param("userName")
	toName := c.Param("toUserName")
	rawAmount := c.Param("coinsToTransfer")

	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "%s is not a valid whole number of coins", rawAmount)
		return
	}

	result, err := h.transfers.Transfer(c.Request.Context(), fromName, toName, amount)
	if err != nil {
		c.String(transferErrorStatus(err), err.Error())
		return
	}

	c.String(http.StatusOK, "%s", transferSummary(result))
}

// transferErrorStatus maps transfer errors to HTTP status codes
func transferErrorStatus(err error) int {
	var (
		bothNotFound *service.BothUsersNotFoundError
		notFound     *service.UserNotFoundError
		insufficient *service.InsufficientBalanceError
		negative     *service.NegativeAmountError
	)
	switch {
	case errors.As(err, &bothNotFound), errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &insufficient), errors.As(err, &negative):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// transferSummary renders the two-line before/after balance summary
func transferSummary(r *models.TransferResult) string {
	return fmt.Sprintf(
		"%s previously had %d coins, now they have %d coins.\n%s previously had %d coins, now they have %d coins.",
		r.From.UserName, r.FromBefore, r.From.CoinBalance,
		r.To.UserName, r.ToBefore, r.To.CoinBalance,
	)
}
