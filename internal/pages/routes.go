package pages

import (
	"fmt"
	"strconv"
	"strings"
)

// Route identifies the page a controller action navigates to. RouteStay
// means the current page keeps control.
type Route string

const (
	RouteStay        Route = ""
	RouteLogin       Route = "login"
	RouteDashboard   Route = "dashboard"
	RouteAppointment Route = "appointment"
	RouteExit        Route = "exit"
)

// PatientRoute addresses the detail page of one patient.
func PatientRoute(id int) Route {
	return Route(fmt.Sprintf("patient/%d", id))
}

// FHIRRoute addresses the FHIR viewer page of one patient.
func FHIRRoute(id int) Route {
	return Route(fmt.Sprintf("fhir/%d", id))
}

// Split breaks a route into its page name and numeric argument. id is zero
// for routes without one.
func (r Route) Split() (name string, id int) {
	name, arg, found := strings.Cut(string(r), "/")
	if !found {
		return name, 0
	}
	id, _ = strconv.Atoi(arg)
	return name, id
}
