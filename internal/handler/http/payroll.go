package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	// PDF downloads one payslip for its owner or for ADMIN/HR
	PDF(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Generate handles POST /payslips/generate
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req payroll.GeneratePayslipRequest
	if !decodeJSON(w, r, "GeneratePayslip", &req) {
		return
	}

	result, err := h.payrollService.Generate(r.Context(), session, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated successfully", result)
}

// Delete handles DELETE /payslips/{employeeId}/{month}/{year}
func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	err = h.payrollService.Delete(r.Context(), session, chi.URLParam(r, "employeeId"), chi.URLParam(r, "month"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted successfully", nil)
}

// ListForEmployee handles GET /payslips/{employeeId}
func (h *payrollHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.ListForEmployee(r.Context(), session, chi.URLParam(r, "employeeId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine handles GET /payslips/me
func (h *payrollHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.ListMine(r.Context(), session)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PDF handles GET /payslips/pdf/{payslipId}
func (h *payrollHandlerImpl) PDF(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	file, err := h.payrollService.PDF(r.Context(), session, chi.URLParam(r, "payslipId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file)
}
