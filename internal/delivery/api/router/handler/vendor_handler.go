package handler

import (
	"net/http"
	"strconv"

	"tiffin/internal/delivery/api/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
}

// VendorHandler serves the public catalogue and the vendor's own profile.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
}

func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{vendorUC: params.VendorUC}
}

// ListVendorsQuery holds the catalogue filters. Unknown sort values fall back to rating.
type ListVendorsQuery struct {
	Search      string `query:"search" validate:"max=100"`
	CuisineType string `query:"cuisineType"`
	DietType    string `query:"dietType"`
	PriceMin    string `query:"priceMin" validate:"omitempty,numeric"`
	PriceMax    string `query:"priceMax" validate:"omitempty,numeric"`
	Location    string `query:"location"`
	Lat         string `query:"lat" validate:"omitempty,latitude"`
	Lng         string `query:"lng" validate:"omitempty,longitude"`
	SortBy      string `query:"sortBy"`
	SortOrder   string `query:"sortOrder"`
	Page        int    `query:"page" validate:"gte=0"`
	Limit       int    `query:"limit" validate:"gte=0"`
}

type UpdateVendorRequest struct {
	PersonalInfo         *entity.VendorPersonalInfo   `json:"personalInfo"`
	BusinessInfo         *entity.VendorBusinessInfo   `json:"businessInfo"`
	Pricing              *entity.VendorPricing        `json:"pricing"`
	Availability         *entity.VendorAvailability   `json:"availability"`
	Location             *entity.Coordinates          `json:"location"`
	SubscriptionSettings *entity.SubscriptionSettings `json:"subscriptionSettings"`
}

// ListVendors is the public vendor catalogue.
func (h *VendorHandler) ListVendors(c echo.Context) error {
	var query ListVendorsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	// The validator has already checked that these parse
	result, err := h.vendorUC.ListVendors(c.Request().Context(), usecase.VendorListQuery{
		Search:      query.Search,
		CuisineType: query.CuisineType,
		DietType:    query.DietType,
		PriceMin:    optionalFloat(query.PriceMin),
		PriceMax:    optionalFloat(query.PriceMax),
		Location:    query.Location,
		Lat:         optionalFloat(query.Lat),
		Lng:         optionalFloat(query.Lng),
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
		Page:        query.Page,
		Limit:       query.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *VendorHandler) GetPublicProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	vendor, err := h.vendorUC.GetPublicProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

func (h *VendorHandler) GetOwnProfile(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	vendor, err := h.vendorUC.GetOwnProfile(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

func (h *VendorHandler) UpdateOwnProfile(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req UpdateVendorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vendor, err := h.vendorUC.UpdateOwnProfile(c.Request().Context(), principal.ID, usecase.UpdateVendorInput{
		PersonalInfo:         req.PersonalInfo,
		BusinessInfo:         req.BusinessInfo,
		Pricing:              req.Pricing,
		Availability:         req.Availability,
		Location:             req.Location,
		SubscriptionSettings: req.SubscriptionSettings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Profile updated successfully")
}

func (h *VendorHandler) GetDashboardStats(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	stats, err := h.vendorUC.GetDashboardStats(c.Request().Context(), principal.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func optionalFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &f
}
