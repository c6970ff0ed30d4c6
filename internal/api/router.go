package api

import (
	"go-funnel-dashboard/internal/api/handler"
	"go-funnel-dashboard/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-funnel-dashboard/docs" // swagger docs registration
)

// RegisterRoutes wires every API endpoint onto the router.
func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/datasets/normalize", handler.NormalizeDataset)
	r.POST("/api/v1/specs/validate", handler.ValidateSpec)
	r.POST("/api/v1/specs/infer", handler.InferSpec)

	r.GET("/api/v1/runs", handler.ListRuns)
	// More specific routes first
	r.GET("/api/v1/runs/*/warnings", handler.GetRunWarnings)
	r.GET("/api/v1/runs/*", handler.GetRun)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
