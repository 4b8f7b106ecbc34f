// Package calendar renders event descriptors as iCalendar (RFC 5545)
// documents, writes them to .ics files and reads them back.
package calendar
