package models

type Config struct {
	Debug          bool   `yaml:"debug" envconfig:"VARSCANNER_DEBUG"`
	SemVer         string `yaml:"semVer" envconfig:"VARSCANNER_SEMVER" default:"0.0.1"`
	ServiceContact string `yaml:"serviceContact" envconfig:"VARSCANNER_SERVICE_CONTACT" default:"mailto:info@varscanner.local"`

	Api struct {
		Port            string `yaml:"port" envconfig:"VARSCANNER_API_INTERNAL_PORT" default:"5000"`
		Url             string `yaml:"url" envconfig:"VARSCANNER_API_URL"`
		AnnotationsPath string `yaml:"annotationsPath" envconfig:"VARSCANNER_ANNOTATIONS_PATH" default:"./data/stubs/annotations.json"`
	} `yaml:"api"`

	Reporting struct {
		Enabled bool   `yaml:"enabled" envconfig:"VARSCANNER_REPORTING_ENABLED"`
		At      string `yaml:"at" envconfig:"VARSCANNER_REPORTING_AT" default:"04:00:00"`
	} `yaml:"reporting"`
}
