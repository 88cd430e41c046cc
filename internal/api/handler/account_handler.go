package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petcare-mx/platform/internal/core/domain"
	"github.com/petcare-mx/platform/internal/core/ports"
)

// AccountHandler exposes owner and veterinarian account operations.
// One handler serves both kinds; each route binds a role tag.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// RegisterOwner handles POST /api/petcare/register/user.
//
// @Summary      Register a pet owner
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerProfileRequest  true  "Owner registration"
// @Success      201   {object}  registeredResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      409   {object}  api.ErrorResponse
// @Router       /api/petcare/register/user [post]
func (h *AccountHandler) RegisterOwner(c echo.Context) error {
	var req registerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.Register(c.Request().Context(), toRegisterInput(req, domain.RoleOwner, nil))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registeredResponse{
		ID:      account.Credential.ID,
		Message: "user registered successfully",
	})
}

// RegisterVet handles POST /api/petcare/register/vet.
//
// @Summary      Register a veterinarian
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerVetRequest  true  "Veterinarian registration"
// @Success      201   {object}  registeredResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      409   {object}  api.ErrorResponse
// @Router       /api/petcare/register/vet [post]
func (h *AccountHandler) RegisterVet(c echo.Context) error {
	var req registerVetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.Register(c.Request().Context(), toRegisterInput(req.registerProfileRequest, domain.RoleVet, &req.Vet))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registeredResponse{
		ID:      account.Credential.ID,
		Message: "veterinarian registered successfully",
	})
}

// List returns all accounts of the given role as summaries.
//
// @Summary      List accounts by kind
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  accountSummaryResponse
// @Router       /api/petcare/users [get]
func (h *AccountHandler) List(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		summaries, err := h.accounts.List(c.Request().Context(), role)
		if err != nil {
			return err
		}

		out := make([]accountSummaryResponse, 0, len(summaries))
		for _, s := range summaries {
			out = append(out, accountSummaryResponse{ID: s.ID, FullName: s.FullName})
		}
		return c.JSON(http.StatusOK, out)
	}
}

// GetSummary returns the id + full-name view of an account.
//
// @Summary      Get account summary by id
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  accountSummaryResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/petcare/user/{id} [get]
func (h *AccountHandler) GetSummary(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}

		summary, err := h.accounts.GetSummary(c.Request().Context(), role, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, accountSummaryResponse{ID: summary.ID, FullName: summary.FullName})
	}
}

// GetDetail returns the full profile view of an account.
//
// @Summary      Get account detail by id
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  accountDetailResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/petcare/user/details/{id} [get]
func (h *AccountHandler) GetDetail(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}

		detail, err := h.accounts.GetDetail(c.Request().Context(), role, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, accountDetailResponse{
			ID:          detail.ID,
			FullName:    detail.FullName,
			Email:       detail.Email,
			PhoneNumber: detail.PhoneNumber,
			Address:     detail.Address,
			Vet:         toVetResponse(detail.Vet),
		})
	}
}

// Exists reports whether an account of the given role exists.
//
// @Summary      Check whether an account exists
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  accountExistsResponse
// @Router       /api/petcare/user/exists/{id} [get]
func (h *AccountHandler) Exists(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}

		exists, err := h.accounts.Exists(c.Request().Context(), role, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, accountExistsResponse{Exists: exists})
	}
}

func toRegisterInput(req registerProfileRequest, role domain.Role, vet *vetCredentialsRequest) ports.RegisterAccountInput {
	input := ports.RegisterAccountInput{
		Identity: req.Username,
		Password: req.Password,
		Role:     role,
		Profile: ports.ProfileInput{
			FirstName:      req.FirstName,
			MiddleName:     req.MiddleName,
			LastName:       req.LastName,
			SecondLastName: req.SecondLastName,
			PhoneNumber:    req.PhoneNumber,
			Email:          req.Email,
			Address:        req.Address,
		},
	}
	if vet != nil {
		input.Vet = &ports.VetInput{
			LicenseNumber:     vet.LicenseNumber,
			ProfessionalTitle: vet.ProfessionalTitle,
			Institution:       vet.Institution,
			Specialty:         vet.Specialty,
		}
	}
	return input
}

// pathID parses a numeric path parameter, rejecting non-numeric values
// before any service call.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
