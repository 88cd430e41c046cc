package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petcare-mx/platform/internal/core/ports"
)

// PetHandler handles HTTP requests for pet operations.
type PetHandler struct {
	pets ports.PetService
}

func NewPetHandler(pets ports.PetService) *PetHandler {
	return &PetHandler{pets: pets}
}

// Create handles POST /api/petcare/pet.
//
// @Summary      Register a new pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPetRequest  true  "Pet details"
// @Success      201   {object}  petCreatedResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      404   {object}  api.ErrorResponse
// @Failure      409   {object}  api.ErrorResponse
// @Router       /api/petcare/pet [post]
func (h *PetHandler) Create(c echo.Context) error {
	var req createPetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller, err := callerClaims(c)
	if err != nil {
		return err
	}

	pet, err := h.pets.Create(c.Request().Context(), ports.CreatePetInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		BirthDate:   req.BirthDate,
		WeightKg:    req.WeightKg,
		Gender:      req.Gender,
		OwnerID:     req.OwnerID,
		CallerToken: caller.Token,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, petCreatedResponse{
		ID:      pet.ID,
		Message: "pet registered successfully",
	})
}

// Exists handles GET /api/petcare/pet/exists/:name.
//
// @Summary      Check whether a pet name is registered
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Pet name"
// @Success      200   {object}  petExistsResponse
// @Router       /api/petcare/pet/exists/{name} [get]
func (h *PetHandler) Exists(c echo.Context) error {
	exists, err := h.pets.Exists(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, petExistsResponse{Exists: exists})
}

// ListByOwner handles GET /api/petcare/pets/user/:id.
//
// @Summary      List an owner's pets with their assigned vets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Owner account id"
// @Success      200  {array}  petWithVetResponse
// @Router       /api/petcare/pets/user/{id} [get]
func (h *PetHandler) ListByOwner(c echo.Context) error {
	ownerID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := callerClaims(c)
	if err != nil {
		return err
	}

	items, err := h.pets.ListByOwner(c.Request().Context(), ownerID, caller.Token)
	if err != nil {
		return err
	}

	out := make([]petWithVetResponse, 0, len(items))
	for _, item := range items {
		resp := petWithVetResponse{
			Pet: petSummaryResponse{ID: item.Pet.ID, Name: item.Pet.Name, Species: item.Pet.Species},
		}
		if item.Vet != nil {
			resp.Vet = &accountSummaryResponse{ID: item.Vet.ID, FullName: item.Vet.FullName}
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, out)
}

// ListByVet handles GET /api/petcare/pets/vet/:id.
//
// @Summary      List a vet's assigned pets with their owners
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Vet account id"
// @Success      200  {array}  petWithOwnerResponse
// @Router       /api/petcare/pets/vet/{id} [get]
func (h *PetHandler) ListByVet(c echo.Context) error {
	vetID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := callerClaims(c)
	if err != nil {
		return err
	}

	items, err := h.pets.ListByVet(c.Request().Context(), vetID, caller.Token)
	if err != nil {
		return err
	}

	out := make([]petWithOwnerResponse, 0, len(items))
	for _, item := range items {
		out = append(out, petWithOwnerResponse{
			Pet:   petSummaryResponse{ID: item.Pet.ID, Name: item.Pet.Name, Species: item.Pet.Species},
			Owner: accountSummaryResponse{ID: item.Owner.ID, FullName: item.Owner.FullName},
		})
	}
	return c.JSON(http.StatusOK, out)
}

// DetailForOwner handles GET /api/petcare/pet/:petId/user/:userId.
//
// @Summary      Get a pet's detail together with its owner's detail
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        petId   path      int  true  "Pet id"
// @Param        userId  path      int  true  "Owner account id"
// @Success      200     {object}  petOwnerDetailResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /api/petcare/pet/{petId}/user/{userId} [get]
func (h *PetHandler) DetailForOwner(c echo.Context) error {
	petID, err := pathID(c, "petId")
	if err != nil {
		return err
	}
	ownerID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	caller, err := callerClaims(c)
	if err != nil {
		return err
	}

	detail, err := h.pets.DetailForOwner(c.Request().Context(), petID, ownerID, caller.Token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, petOwnerDetailResponse{
		Pet:   toPetDetailResponse(detail.Pet),
		Owner: toAccountDetailResponse(detail.Owner),
	})
}

// DetailForVet handles GET /api/petcare/pet/:petId/vet/:vetId.
//
// @Summary      Get a pet's detail together with its vet's detail
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        petId  path      int  true  "Pet id"
// @Param        vetId  path      int  true  "Vet account id"
// @Success      200    {object}  petVetDetailResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/petcare/pet/{petId}/vet/{vetId} [get]
func (h *PetHandler) DetailForVet(c echo.Context) error {
	petID, err := pathID(c, "petId")
	if err != nil {
		return err
	}
	vetID, err := pathID(c, "vetId")
	if err != nil {
		return err
	}
	caller, err := callerClaims(c)
	if err != nil {
		return err
	}

	detail, err := h.pets.DetailForVet(c.Request().Context(), petID, vetID, caller.Token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, petVetDetailResponse{
		Pet: toPetDetailResponse(detail.Pet),
		Vet: toAccountDetailResponse(detail.Vet),
	})
}

// AssignVet handles PUT /api/petcare/pet/:petId/vet/:vetId.
//
// @Summary      Assign a veterinarian to a pet
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        petId  path  int  true  "Pet id"
// @Param        vetId  path  int  true  "Vet account id"
// @Success      204    "assigned"
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/petcare/pet/{petId}/vet/{vetId} [put]
func (h *PetHandler) AssignVet(c echo.Context) error {
	petID, err := pathID(c, "petId")
	if err != nil {
		return err
	}
	vetID, err := pathID(c, "vetId")
	if err != nil {
		return err
	}
	caller, err := callerClaims(c)
	if err != nil {
		return err
	}

	if err := h.pets.AssignVet(c.Request().Context(), petID, vetID, caller.Token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
