package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/summit-invite/internal/calendar"
	"github.com/pfrederiksen/summit-invite/internal/event"
)

func main() {
	evt := event.Summit2025()
	evt.Title = "Test Summit; Calendar, Import\\Check"
	evt.Description = "Line one\nLine two with a long tail so the DESCRIPTION property needs folding past 75 octets."

	icsContent, err := calendar.GenerateICS(evt, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating calendar: %v\n", err)
		os.Exit(1)
	}

	path, err := calendar.WriteFile(".", "test-summit-event", icsContent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", path)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("3. Or run: summit-invite verify", path)
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
