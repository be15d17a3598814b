package api

import (
	"flexbi-engine/internal/api/handler"
	"flexbi-engine/pkg/router"
)

func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/datasets", handler.UploadDataset)
	r.GET("/api/v1/datasets", handler.ListDatasets)
	// More specific routes first
	r.GET("/api/v1/datasets/*/profile", handler.GetProfile)
	r.GET("/api/v1/datasets/*/columns", handler.GetColumns)
	r.GET("/api/v1/datasets/*/suggestion", handler.GetSuggestion)
	r.GET("/api/v1/datasets/*/aggregate", handler.GetAggregate)
	r.GET("/api/v1/datasets/*/chart", handler.GetChart)
	r.GET("/api/v1/datasets/*/trend", handler.GetTrend)
	r.GET("/api/v1/datasets/*/correlations", handler.GetCorrelations)
	r.GET("/api/v1/datasets/*/runs", handler.ListRuns)
	r.POST("/api/v1/datasets/*/forecast", handler.ForecastColumn)
	r.POST("/api/v1/datasets/*/export", handler.ExportAggregation)
	r.GET("/api/v1/download/*", handler.DownloadFile)
	// Generic dataset routes last
	r.GET("/api/v1/datasets/*", handler.GetDataset)
	r.DELETE("/api/v1/datasets/*", handler.DeleteDataset)
}
