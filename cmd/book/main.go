// Command book walks the booking wizard against a running API from the
// terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harramos25/GlamBook/internal/apiclient"
	"github.com/harramos25/GlamBook/internal/config"
	"github.com/harramos25/GlamBook/internal/frontend"
	"github.com/harramos25/GlamBook/internal/logger"
	"github.com/harramos25/GlamBook/internal/timezone"
	"github.com/harramos25/GlamBook/internal/viewmodel"
)

func main() {
	cfg := config.Load()
	logger.Init("glambook-book", cfg.Env, "warn")
	timezone.SetSalon(cfg.SalonTimezone)

	var (
		apiURL   = flag.String("api", cfg.APIBaseURL, "API base URL")
		services = flag.String("services", "", "comma-separated service ids")
		stylist  = flag.String("stylist", viewmodel.AnyStylistID, "stylist id, or \"any\"")
		date     = flag.String("date", "", "YYYY-MM-DD, defaults to today")
		clock    = flag.String("time", "", "HH:MM, one of the offered slots")
		name     = flag.String("name", "", "client name")
		email    = flag.String("email", "", "client email")
		phone    = flag.String("phone", "", "client phone")
		notes    = flag.String("notes", "", "optional notes")
		list     = flag.Bool("list", false, "print services, stylists and slots, then exit")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	w := frontend.NewWizard(apiclient.New(*apiURL))
	w.Load(ctx)

	svcs := w.Services()
	if !svcs.Ready() {
		fail("could not load services: %v", svcs.Err)
	}

	if *list || *services == "" {
		printCatalog(w)
		return
	}

	if err := w.SelectServices(strings.Split(*services, ",")); err != nil {
		fail("services: %v", err)
	}
	if err := w.SelectStylist(*stylist); err != nil {
		fail("stylist: %v", err)
	}

	day, err := pickDay(*date)
	if err != nil {
		fail("date: %v", err)
	}
	if err := w.SelectDateTime(day, *clock); err != nil {
		fail("time: %v", err)
	}

	printSummary(w.Summary())

	b, err := w.Submit(ctx, frontend.Contact{
		Name:  *name,
		Email: *email,
		Phone: *phone,
		Notes: *notes,
	})
	if err != nil {
		fail("booking failed: %v", err)
	}

	fmt.Printf("\nBooking confirmed: %s (%s)\n", b.ID, b.Status)
}

// pickDay accepts only days inside the booking window.
func pickDay(s string) (time.Time, error) {
	days := frontend.NextDays(timezone.Now(), frontend.BookingWindowDays)
	if s == "" {
		return days[0].Date, nil
	}

	d, err := time.ParseInLocation("2006-01-02", s, timezone.Location(timezone.Salon()))
	if err != nil {
		return time.Time{}, err
	}
	for _, day := range days {
		if day.Date.Equal(d) {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s is outside the next %d days", s, frontend.BookingWindowDays)
}

func printCatalog(w *frontend.Wizard) {
	fmt.Println("Services:")
	for _, s := range w.Services().Data {
		fmt.Printf("  %-4s %-26s %-6s $%6.2f  %3d min\n", s.ID, s.Name, s.Category, s.Price, s.Duration)
	}

	fmt.Println("\nStylists:")
	for _, c := range w.StylistChoices() {
		fmt.Printf("  %-4s %-14s %s\n", c.ID, c.Name, c.Role)
	}

	fmt.Println("\nSlots:")
	for _, g := range frontend.TimeSlots() {
		fmt.Printf("  %-10s %s\n", g.Label, strings.Join(g.Times, " "))
	}
}

func printSummary(s frontend.Summary) {
	fmt.Printf("Services:  %s\n", strings.Join(s.ServiceNames, ", "))
	fmt.Printf("Stylist:   %s\n", s.StylistName)
	fmt.Printf("When:      %s at %s\n", s.Date.Format("Mon Jan 2"), s.Time)
	fmt.Printf("Duration:  %d min\n", s.TotalDuration)
	fmt.Printf("Total:     $%.2f\n", s.TotalPrice)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
