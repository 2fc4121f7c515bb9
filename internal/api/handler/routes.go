package handler

import (
	"net/http"

	"github.com/vfg2006/ad-server-api/internal/api/handler/router"
	"github.com/vfg2006/ad-server-api/internal/usecases/delivering"
	"github.com/vfg2006/ad-server-api/internal/usecases/reporting"
	"github.com/vfg2006/ad-server-api/internal/usecases/tracking"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
	}
}

func Ads(service delivering.Deliverer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ad",
			Method:  http.MethodGet,
			Handler: GetAd(service),
		},
	}
}

func Clicks(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/api/click",
			Method:  http.MethodPost,
			Handler: TrackClick(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/reports/avg-revenue",
			Method:  http.MethodGet,
			Handler: GetAvgRevenue(service),
		},
		{
			Path:    "/reports/ctr",
			Method:  http.MethodGet,
			Handler: GetCTR(service),
		},
	}
}
