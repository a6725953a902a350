// Command console signs in as the salon admin and prints the dashboard:
// KPIs, recent bookings and one day of the stylist timeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harramos25/GlamBook/internal/apiclient"
	"github.com/harramos25/GlamBook/internal/config"
	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/frontend"
	"github.com/harramos25/GlamBook/internal/logger"
	"github.com/harramos25/GlamBook/internal/timezone"
)

func main() {
	cfg := config.Load()
	logger.Init("glambook-console", cfg.Env, "warn")

	var (
		apiURL   = flag.String("api", cfg.APIBaseURL, "API base URL")
		email    = flag.String("email", cfg.AdminEmail, "admin email")
		password = flag.String("password", cfg.AdminPassword, "admin password")
		tz       = flag.String("tz", cfg.SalonTimezone, "timezone that decides which day is today")
		date     = flag.String("date", "", "YYYY-MM-DD, defaults to today")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	day := timezone.NowIn(*tz)
	if *date != "" {
		d, err := time.Parse("2006-01-02", *date)
		if err != nil {
			fail("date: %v", err)
		}
		day = d
	}

	client := apiclient.New(*apiURL)
	login, err := client.Login(ctx, *email, *password)
	if err != nil {
		fail("login failed: %v", err)
	}
	fmt.Printf("Signed in as %s (%s)\n\n", login.Name, login.Role)

	console := frontend.NewConsole(client.WithToken(login.Token))
	console.Refresh(ctx)
	console.ShowDay(ctx, day)

	printStats(console.Stats)
	printCalendar(console.Calendar)
}

func printStats(l frontend.Loadable[*dto.DashboardStats]) {
	if !l.Ready() {
		fmt.Printf("Stats: %s (%v)\n\n", l.State, l.Err)
		return
	}

	s := l.Data
	fmt.Printf("Revenue:        $%.2f\n", s.TotalRevenue)
	fmt.Printf("Bookings:       %d\n", s.TotalBookings)
	fmt.Printf("Clients:        %d\n", s.TotalUsers)
	fmt.Printf("Average ticket: $%.2f\n\n", s.AverageTicket)

	fmt.Println("Recent bookings:")
	for _, b := range s.RecentBookings {
		fmt.Printf("  %s %s  %-22s %-14s $%.2f\n",
			b.Date.UTC().Format("2006-01-02"), b.Time, b.Service.Name, b.User.Name, b.Service.Price)
	}
	fmt.Println()
}

func printCalendar(l frontend.Loadable[*dto.CalendarDay]) {
	if !l.Ready() {
		fmt.Printf("Calendar: %s (%v)\n", l.State, l.Err)
		return
	}

	day := l.Data
	fmt.Printf("Schedule for %s:\n", day.Date)
	for _, row := range day.Rows {
		fmt.Printf("  %s\n", row.StylistName)
		if len(row.Blocks) == 0 {
			fmt.Println("    (free)")
		}
		for _, b := range row.Blocks {
			fmt.Printf("    %s  %-22s %s (%d min)\n", b.Time, b.ServiceName, b.ClientName, b.Duration)
		}
	}
	if day.Skipped > 0 {
		fmt.Printf("  %d booking(s) could not be placed\n", day.Skipped)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
