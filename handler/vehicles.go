package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/apollomotors/vehicleapi/data/dto"
	"github.com/apollomotors/vehicleapi/service"
)

func (h *Handler) createVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateVehicleRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		if fields, ok := fieldTypeError(err); ok {
			h.failedValidationResponse(w, r, fields)
		} else {
			h.badRequestResponse(w, r, err)
		}
		return
	}
	vehicle, err := h.service.CreateVehicle(requestBody)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.failedValidationResponse(w, r, verr.Fields)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.duplicateRecordResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/vehicle/%s", vehicle.VIN))
	err = h.encodeJSON(w, http.StatusCreated, vehicle, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vin := h.readVINParam(r)
	vehicle, err := h.service.GetVehicle(vin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, vehicle, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.ListVehicles()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, vehicles, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) updateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateVehicleRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		if fields, ok := fieldTypeError(err); ok {
			h.failedValidationResponse(w, r, fields)
		} else {
			h.badRequestResponse(w, r, err)
		}
		return
	}
	vin := h.readVINParam(r)
	vehicle, err := h.service.UpdateVehicle(vin, requestBody)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.As(err, &verr):
			h.failedValidationResponse(w, r, verr.Fields)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, vehicle, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vin := h.readVINParam(r)
	err := h.service.DeleteVehicle(vin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
