package common

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"varscanner/api/models"
	annotationsService "varscanner/api/services/annotations"

	yaml "gopkg.in/yaml.v2"
)

const (
	HealthPath              string = "%s/health"
	PredictPath             string = "%s/predict"
	AnnotationsOverviewPath string = "%s/annotations/overview"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	// resolve the annotations path relative to this file so tests
	// pass regardless of which package directory they run from
	if cfg.Api.AnnotationsPath != "" && !path.IsAbs(cfg.Api.AnnotationsPath) {
		cfg.Api.AnnotationsPath = path.Join(folderpath, cfg.Api.AnnotationsPath)
	}

	return &cfg
}

func InitAnnotationService(cfg *models.Config) *annotationsService.AnnotationService {
	as, err := annotationsService.NewAnnotationService(cfg)
	if err != nil {
		processError(err)
	}

	return as
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}
