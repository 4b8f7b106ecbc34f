// Package storage persists the outcome of an automation run as a JSON file
// (automation_results.json by default).
package storage
