package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "VarScanner API"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the VarScanner genomic variant interpretation API!"
	SERVICE_DESCRIPTION ServiceInfo = "Variant annotation and interpretation service backed by a static annotation table."

	SERVICE_ARTIFACT    ServiceInfo = "varscanner"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.varscanner:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
)
