package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stealthcompany.com/medrec-client/internal/pages"
)

func loginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			if username == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Username: ")
				line, _ := reader.ReadString('\n')
				username = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, _ := reader.ReadString('\n')
				password = strings.TrimSpace(line)
			}

			page := pages.NewLoginPage(app.api, app.store)
			route := page.Submit(cmd.Context(), username, password)
			renderDoc(cmd.OutOrStdout(), page.Doc())
			if route == pages.RouteDashboard {
				fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewDashboardPage(app.api, app.store)
			page.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func searchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search patients by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewDashboardPage(app.api, app.store)
			if page.Load() == pages.RouteLogin {
				fmt.Fprintln(cmd.OutOrStdout(), notLoggedIn)
				return nil
			}
			page.Search(cmd.Context(), strings.Join(args, " "))
			renderDoc(cmd.OutOrStdout(), page.Doc())
			return nil
		},
	}
}

func patientCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "patient <id>",
		Short: "Show a patient record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}
			page := pages.NewPatientPage(app.api, app.store, id)
			if page.Load(cmd.Context()) == pages.RouteLogin {
				fmt.Fprintln(cmd.OutOrStdout(), notLoggedIn)
				return nil
			}
			renderDoc(cmd.OutOrStdout(), page.Doc())
			return nil
		},
	}
}

func diagnoseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose <id> <diagnosis...>",
		Short: "Update a patient's diagnosis (doctors only)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}
			page := pages.NewPatientPage(app.api, app.store, id)
			if page.Load(cmd.Context()) == pages.RouteLogin {
				fmt.Fprintln(cmd.OutOrStdout(), notLoggedIn)
				return nil
			}
			page.UpdateDiagnosis(cmd.Context(), strings.Join(args[1:], " "))
			renderDoc(cmd.OutOrStdout(), page.Doc())
			return nil
		},
	}
}

func appointmentCmd(app *App) *cobra.Command {
	var date, description string

	cmd := &cobra.Command{
		Use:   "appointment <patient-id>",
		Short: "Create an appointment for a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}
			page := pages.NewAppointmentPage(app.api, app.store)
			if page.Load() == pages.RouteLogin {
				fmt.Fprintln(cmd.OutOrStdout(), notLoggedIn)
				return nil
			}
			page.Create(cmd.Context(), id, date, description)
			renderDoc(cmd.OutOrStdout(), page.Doc())
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "appointment date, e.g. 2026-09-01T10:00")
	cmd.Flags().StringVarP(&description, "description", "m", "", "appointment description")

	return cmd
}

func fhirCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fhir <id>",
		Short: "Show the FHIR Patient resource for a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id %q", args[0])
			}
			page := pages.NewFHIRViewerPage(app.api, app.store, id)
			if page.Load(cmd.Context()) == pages.RouteLogin {
				fmt.Fprintln(cmd.OutOrStdout(), notLoggedIn)
				return nil
			}
			renderDoc(cmd.OutOrStdout(), page.Doc())
			return nil
		},
	}
}
