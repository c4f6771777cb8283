package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/rendezvous/internal/location"
	tp "github.com/julianstephens/rendezvous/internal/timeperiod"
)

func calendar(events ...string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//rendezvous//test//EN\r\n")
	for _, e := range events {
		b.WriteString("BEGIN:VEVENT\r\n")
		b.WriteString(strings.ReplaceAll(strings.TrimSpace(e), "\n", "\r\n"))
		b.WriteString("\r\nEND:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

// 2026-03-02 is a Monday.
func TestParseCalendar(t *testing.T) {
	doc := calendar(
		`UID:lecture
DTSTAMP:20260301T000000Z
DTSTART:20260302T090000Z
DTEND:20260302T110000Z
RRULE:FREQ=WEEKLY;BYDAY=MO,WE
SUMMARY:Lecture`,
		`UID:lab
DTSTAMP:20260301T000000Z
DTSTART:20260302T103000Z
DTEND:20260302T120000Z
SUMMARY:Lab`,
		`UID:lunch
DTSTAMP:20260301T000000Z
DTSTART:20260303T120000Z
DTEND:20260303T133000Z
TRANSP:TRANSPARENT
LOCATION:frontier
SUMMARY:Lunch`,
		`UID:holiday
DTSTAMP:20260301T000000Z
DTSTART;VALUE=DATE:20260306
DTEND;VALUE=DATE:20260307
SUMMARY:Holiday`,
		`UID:late
DTSTAMP:20260301T000000Z
DTSTART:20260305T230000Z
DTEND:20260306T010000Z
SUMMARY:Late shift`,
	)

	sched, err := ParseCalendar(strings.NewReader(doc), CalendarOptions{
		Location: time.UTC,
		Catalog:  location.DefaultCatalog(),
	})
	if err != nil {
		t.Fatalf("ParseCalendar() failed: %v", err)
	}

	wantBusy := []tp.Period{
		tp.MustNew(tp.KindBusy, tp.At(9, 0), tp.At(12, 0), tp.Monday),
		tp.MustNew(tp.KindBusy, tp.At(9, 0), tp.At(11, 0), tp.Wednesday),
		tp.MustNew(tp.KindBusy, tp.At(23, 0), tp.EndOfDay, tp.Thursday),
	}
	if len(sched.Busy) != len(wantBusy) {
		t.Fatalf("Busy = %v, want %v", sched.Busy, wantBusy)
	}
	for i := range wantBusy {
		if sched.Busy[i] != wantBusy[i] {
			t.Errorf("Busy[%d] = %s, want %s", i, sched.Busy[i], wantBusy[i])
		}
	}

	if len(sched.Visits) != 1 {
		t.Fatalf("Visits = %+v, want one", sched.Visits)
	}
	v := sched.Visits[0]
	if v.Location.Name != "Frontier" || v.Location.Region != "Kent Ridge" {
		t.Errorf("visit location = %+v, want catalog Frontier", v.Location)
	}
	if want := tp.MustNew(tp.KindWindow, tp.At(12, 0), tp.At(13, 30), tp.Tuesday); v.Period != want {
		t.Errorf("visit period = %s, want %s", v.Period, want)
	}

	if sched.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 (the all-day event)", sched.Skipped)
	}
}

func TestParseCalendarConvertsZone(t *testing.T) {
	doc := calendar(`UID:tz
DTSTAMP:20260301T000000Z
DTSTART:20260302T010000Z
DTEND:20260302T020000Z`)

	sgt := time.FixedZone("SGT", 8*60*60)
	sched, err := ParseCalendar(strings.NewReader(doc), CalendarOptions{Location: sgt})
	if err != nil {
		t.Fatalf("ParseCalendar() failed: %v", err)
	}
	want := tp.MustNew(tp.KindBusy, tp.At(9, 0), tp.At(10, 0), tp.Monday)
	if len(sched.Busy) != 1 || sched.Busy[0] != want {
		t.Errorf("Busy = %v, want [%s]", sched.Busy, want)
	}
}

func TestParseCalendarDailyRule(t *testing.T) {
	doc := calendar(`UID:daily
DTSTAMP:20260301T000000Z
DTSTART:20260304T080000Z
DTEND:20260304T083000Z
RRULE:FREQ=DAILY;COUNT=3`)

	sched, err := ParseCalendar(strings.NewReader(doc), CalendarOptions{Location: time.UTC})
	if err != nil {
		t.Fatalf("ParseCalendar() failed: %v", err)
	}
	wantDays := []tp.Day{tp.Wednesday, tp.Thursday, tp.Friday}
	if len(sched.Busy) != len(wantDays) {
		t.Fatalf("Busy = %v, want one entry per day in %v", sched.Busy, wantDays)
	}
	for i, d := range wantDays {
		if sched.Busy[i].Day() != d {
			t.Errorf("Busy[%d].Day() = %s, want %s", i, sched.Busy[i].Day(), d)
		}
	}
}

func TestParseCalendarRejectsGarbage(t *testing.T) {
	if _, err := ParseCalendar(strings.NewReader("not a calendar"), CalendarOptions{}); err == nil {
		t.Error("ParseCalendar() should fail on malformed input")
	}
}
