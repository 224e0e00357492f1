package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stealthcompany.com/medrec-client/internal/pages"
)

func browseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactive session against the clinical record backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sh := newSignalHandler()
			sh.handleSignals(ctx, cancel)
			defer sh.stop()

			shell := &browseShell{
				app: app,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			return shell.run(ctx)
		},
	}
}

// browseShell walks the page graph: each page handler runs until it hands
// back the next route, and the loop follows it.
type browseShell struct {
	app *App
	in  *bufio.Scanner
	out io.Writer
}

func (s *browseShell) run(ctx context.Context) error {
	route := pages.RouteDashboard
	if _, ok := pages.Guard(s.app.store); !ok {
		route = pages.RouteLogin
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		name, id := route.Split()
		switch name {
		case "login":
			route = s.loginPage(ctx)
		case "dashboard":
			route = s.dashboardPage(ctx)
		case "patient":
			route = s.patientPage(ctx, id)
		case "appointment":
			route = s.appointmentPage(ctx)
		case "fhir":
			route = s.fhirPage(ctx, id)
		case "exit":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			return fmt.Errorf("unknown route %q", route)
		}
	}
}

// readLine returns false on EOF or a cancelled context.
func (s *browseShell) readLine(ctx context.Context, prompt string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *browseShell) loginPage(ctx context.Context) pages.Route {
	page := pages.NewLoginPage(s.app.api, s.app.store)

	for {
		username, ok := s.readLine(ctx, "Username: ")
		if !ok {
			return pages.RouteExit
		}
		password, ok := s.readLine(ctx, "Password: ")
		if !ok {
			return pages.RouteExit
		}

		route := page.Submit(ctx, username, password)
		renderDoc(s.out, page.Doc())
		if route != pages.RouteStay {
			return route
		}
	}
}

func (s *browseShell) dashboardPage(ctx context.Context) pages.Route {
	page := pages.NewDashboardPage(s.app.api, s.app.store)
	if route := page.Load(); route != pages.RouteStay {
		return route
	}

	fmt.Fprintln(s.out, "Commands: search <term> | open <n> | appointment | logout | quit")

	for {
		line, ok := s.readLine(ctx, "> ")
		if !ok {
			return pages.RouteExit
		}

		command, rest, _ := strings.Cut(line, " ")
		switch command {
		case "search":
			route := page.Search(ctx, rest)
			renderDoc(s.out, page.Doc())
			if route != pages.RouteStay {
				return route
			}
		case "open":
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				fmt.Fprintln(s.out, pages.MsgInvalidSelection)
				continue
			}
			if route := page.Open(n); route != pages.RouteStay {
				return route
			}
			fmt.Fprintln(s.out, pages.MsgInvalidSelection)
		case "appointment":
			return page.GoToAppointment()
		case "logout":
			fmt.Fprintln(s.out, "Logged out.")
			return page.Logout()
		case "quit":
			return pages.RouteExit
		case "":
		default:
			fmt.Fprintln(s.out, "Unknown command:", command)
		}
	}
}

func (s *browseShell) patientPage(ctx context.Context, id int) pages.Route {
	page := pages.NewPatientPage(s.app.api, s.app.store, id)
	if route := page.Load(ctx); route != pages.RouteStay {
		return route
	}
	renderDoc(s.out, page.Doc())

	fmt.Fprintln(s.out, "Commands: diagnose <text> | fhir | back | quit")

	for {
		line, ok := s.readLine(ctx, "> ")
		if !ok {
			return pages.RouteExit
		}

		command, rest, _ := strings.Cut(line, " ")
		switch command {
		case "diagnose":
			route := page.UpdateDiagnosis(ctx, rest)
			renderDoc(s.out, page.Doc())
			if route != pages.RouteStay {
				return route
			}
		case "fhir":
			return page.OpenFHIR()
		case "back":
			return page.GoBack()
		case "quit":
			return pages.RouteExit
		case "":
		default:
			fmt.Fprintln(s.out, "Unknown command:", command)
		}
	}
}

func (s *browseShell) appointmentPage(ctx context.Context) pages.Route {
	page := pages.NewAppointmentPage(s.app.api, s.app.store)
	if route := page.Load(); route != pages.RouteStay {
		return route
	}

	idText, ok := s.readLine(ctx, "Patient ID: ")
	if !ok {
		return pages.RouteExit
	}
	date, ok := s.readLine(ctx, "Date (YYYY-MM-DDTHH:MM): ")
	if !ok {
		return pages.RouteExit
	}
	description, ok := s.readLine(ctx, "Description: ")
	if !ok {
		return pages.RouteExit
	}

	id, err := strconv.Atoi(idText)
	if err != nil {
		fmt.Fprintln(s.out, pages.MsgInvalidPatientID)
		return pages.RouteDashboard
	}

	route := page.Create(ctx, id, date, description)
	renderDoc(s.out, page.Doc())
	if route != pages.RouteStay {
		return route
	}
	return pages.RouteDashboard
}

func (s *browseShell) fhirPage(ctx context.Context, id int) pages.Route {
	page := pages.NewFHIRViewerPage(s.app.api, s.app.store, id)
	if route := page.Load(ctx); route != pages.RouteStay {
		return route
	}
	renderDoc(s.out, page.Doc())

	line, ok := s.readLine(ctx, "Press enter to go back (or quit): ")
	if !ok || line == "quit" {
		return pages.RouteExit
	}
	return page.GoBack()
}
