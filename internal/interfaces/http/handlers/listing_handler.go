package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"homeconnect.backend/internal/domain/entities"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/internal/interfaces/http/middleware"
	"homeconnect.backend/internal/interfaces/http/response"
	"homeconnect.backend/internal/usecases"
)

// ListingHandler handles property catalog endpoints
type ListingHandler struct {
	listingUsecase *usecases.ListingUsecase
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingUsecase *usecases.ListingUsecase) *ListingHandler {
	return &ListingHandler{
		listingUsecase: listingUsecase,
	}
}

// List returns listings matching the optional query filters
// GET /api/listings?type=&listingType=&state=&maxPrice=
func (h *ListingHandler) List(c *gin.Context) {
	filters := entities.ListingFilters{
		Type:        c.Query("type"),
		ListingType: c.Query("listingType"),
		State:       c.Query("state"),
	}

	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("maxPrice must be a number"))
			return
		}
		filters.MaxPrice = &maxPrice
	}

	listings, err := h.listingUsecase.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count":    len(listings),
		"listings": listings,
	})
}

// Get returns a single listing
// GET /api/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	listing, err := h.listingUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Listing not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": listing})
}

// Create stores a new listing owned by the caller
// POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	listing, err := h.listingUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Owner not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Listing created successfully",
		"listing": listing,
	})
}

// Update patches a listing owned by the caller
// PUT /api/listings/:id
func (h *ListingHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.UpdateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	listing, err := h.listingUsecase.Update(c.Request.Context(), userID, c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Listing not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"listing": listing,
	})
}

// Delete removes a listing owned by the caller
// DELETE /api/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	if err := h.listingUsecase.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Listing not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}

// MyListings returns all listings owned by the caller
// GET /api/my-listings
func (h *ListingHandler) MyListings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	listings, err := h.listingUsecase.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count":    len(listings),
		"listings": listings,
	})
}
