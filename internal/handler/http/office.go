package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/setting"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// OfficeHandler serves the office registry and the geo-fencing switch.
type OfficeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	GetGeoFencing(w http.ResponseWriter, r *http.Request)
	UpdateGeoFencing(w http.ResponseWriter, r *http.Request)
}

type officeHandlerImpl struct {
	officeService  office.OfficeService
	settingService setting.SettingService
}

func NewOfficeHandler(officeService office.OfficeService, settingService setting.SettingService) OfficeHandler {
	return &officeHandlerImpl{
		officeService:  officeService,
		settingService: settingService,
	}
}

// List handles GET /offices
func (h *officeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	offices, err := h.officeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, offices)
}

// Create handles POST /offices
func (h *officeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req office.CreateOfficeRequest
	if !decodeJSON(w, r, "CreateOffice", &req) {
		return
	}

	created, err := h.officeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office created successfully", created)
}

// Update handles PUT /offices/{id}
func (h *officeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req office.UpdateOfficeRequest
	if !decodeJSON(w, r, "UpdateOffice", &req) {
		return
	}

	updated, err := h.officeService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office updated successfully", updated)
}

// Delete handles DELETE /offices/{id}
func (h *officeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.officeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office deleted successfully", nil)
}

// GetGeoFencing handles GET /settings/attendance-geo-fencing
func (h *officeHandlerImpl) GetGeoFencing(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.GetGeoFencing(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateGeoFencing handles PATCH /settings/attendance-geo-fencing
func (h *officeHandlerImpl) UpdateGeoFencing(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req setting.UpdateGeoFencingRequest
	if !decodeJSON(w, r, "UpdateGeoFencing", &req) {
		return
	}

	result, err := h.settingService.UpdateGeoFencing(r.Context(), session.Email, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geo-fencing setting updated", result)
}
