package reportingService

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"varscanner/api/models"
	annotationsService "varscanner/api/services/annotations"
)

type (
	ReportingService struct {
		Initialized       bool
		Config            *models.Config
		AnnotationService *annotationsService.AnnotationService
	}
)

func NewReportingService(as *annotationsService.AnnotationService, cfg *models.Config) *ReportingService {
	rs := &ReportingService{
		Initialized:       false,
		Config:            cfg,
		AnnotationService: as,
	}

	rs.Init()

	return rs
}

func (rs *ReportingService) Init() {
	// initialization if necessary
	if !rs.Initialized {
		// - spin up a go routine that periodically logs an
		//   overview of the loaded annotation store ; the store
		//   itself never changes, so this is purely a liveness /
		//   visibility aid for operators tailing the service logs
		go func() {
			// setup cron job
			s := gocron.NewScheduler(time.UTC)

			s.Every(1).Days().At(rs.Config.Reporting.At).Do(func() {
				fmt.Printf("[%s] - Running annotation store report..\n", time.Now())

				overview := rs.AnnotationService.Overview()
				overviewJson, marshallErr := json.Marshal(overview)
				if marshallErr != nil {
					fmt.Printf("[%s] - Error marshalling overview : %v..\n", time.Now(), marshallErr)
					return
				}

				fmt.Printf("[%s] - Annotation store overview : %s\n", time.Now(), string(overviewJson))
			})

			// starts the scheduler in blocking mode, which blocks
			// the current execution path
			s.StartBlocking()
		}()

		rs.Initialized = true
		fmt.Println("Reporting Service Initialized ..")
	}
}
