package main

import (
	"fmt"
	"net/http"
	"os"

	"varscanner/api/contexts"
	gam "varscanner/api/middleware"
	"varscanner/api/models"
	serviceInfo "varscanner/api/models/constants/service-info"
	"varscanner/api/mvc"
	annotationsMvc "varscanner/api/mvc/annotations"
	serviceInfoMvc "varscanner/api/mvc/service-info"
	annotationsService "varscanner/api/services/annotations"
	reportingService "varscanner/api/services/reporting"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tAnnotations Path : %s \n"+
		"\tReporting Enabled : %t\n"+
		"\tReporting At : %s\n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.AnnotationsPath,
		cfg.Reporting.Enabled,
		cfg.Reporting.At,
		cfg.Api.Port)
	// --

	// Service Singletons
	// -- the annotation store is loaded exactly once, before any
	//    traffic is served ; a missing or malformed resource is fatal
	as, asErr := annotationsService.NewAnnotationService(&cfg)
	if asErr != nil {
		fmt.Println(asErr)
		os.Exit(2)
	}
	if cfg.Reporting.Enabled {
		reportingService.NewReportingService(as, &cfg)
	}

	// Instantiate Server
	e := echo.New()

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with "custom VarScanner" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			vc := &contexts.VarScannerContext{
				Context:           c,
				Config:            &cfg,
				AnnotationService: as,
			}
			return h(vc)
		}
	})

	// Global Middleware
	e.Use(gam.AttachRequestId)

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Health
	e.GET("/health", mvc.HealthCheck)

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Annotations
	e.POST("/predict", annotationsMvc.PredictVariantAnnotations)
	e.GET("/annotations/overview", annotationsMvc.GetAnnotationsOverview)

	// -- Metrics
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
