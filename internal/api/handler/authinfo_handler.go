package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petcare-mx/platform/internal/core/domain"
	"github.com/petcare-mx/platform/internal/core/ports"
)

// AuthInfoHandler serves the internal endpoints the auth service calls
// during login. They are unauthenticated and must only be reachable on
// the internal network.
type AuthInfoHandler struct {
	accounts ports.AccountService
}

func NewAuthInfoHandler(accounts ports.AccountService) *AuthInfoHandler {
	return &AuthInfoHandler{accounts: accounts}
}

type authInfoView struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	EncodedPassword string `json:"encoded_password"`
	Role            string `json:"role"`
}

type authProfileView struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name,omitempty"`
	LastName       string `json:"last_name"`
	SecondLastName string `json:"second_last_name,omitempty"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email"`
	Address        string `json:"address,omitempty"`
}

// GetAuthInfo returns the credential record for a username, or 204 when
// no account matches.
//
// @Summary      Get authentication info by username
// @Tags         auth-info
// @Produce      json
// @Param        username  path      string  true  "Login username"
// @Success      200       {object}  authInfoView
// @Success      204       "no account with that username"
// @Router       /api/petcare/auth-info/{username} [get]
func (h *AuthInfoHandler) GetAuthInfo(c echo.Context) error {
	cred, err := h.accounts.AuthInfo(c.Request().Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}

	return c.JSON(http.StatusOK, authInfoView{
		ID:              cred.ID,
		Username:        cred.Identity,
		EncodedPassword: cred.PasswordHash,
		Role:            string(cred.Role),
	})
}

// GetAuthProfile returns the profile linked to a credential's numeric
// id, or 204 when the id is unknown.
//
// @Summary      Get profile by account id
// @Tags         auth-info
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  authProfileView
// @Success      204  "no account with that id"
// @Router       /api/petcare/auth-info/details/{id} [get]
func (h *AuthInfoHandler) GetAuthProfile(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	profile, err := h.accounts.AuthProfile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}

	return c.JSON(http.StatusOK, authProfileView{
		ID:             profile.ID,
		FirstName:      profile.FirstName,
		MiddleName:     profile.MiddleName,
		LastName:       profile.LastName,
		SecondLastName: profile.SecondLastName,
		PhoneNumber:    profile.PhoneNumber,
		Email:          profile.Email,
		Address:        profile.Address,
	})
}
