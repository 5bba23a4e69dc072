package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/vehicle", h.listVehiclesHandler)
	router.HandlerFunc(http.MethodPost, "/vehicle", h.createVehicleHandler)
	router.HandlerFunc(http.MethodGet, "/vehicle/:vin", h.showVehicleHandler)
	router.HandlerFunc(http.MethodPut, "/vehicle/:vin", h.updateVehicleHandler)
	router.HandlerFunc(http.MethodDelete, "/vehicle/:vin", h.deleteVehicleHandler)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.metrics(h.enableCORS(h.rateLimit(router))))
}
