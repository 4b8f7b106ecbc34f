// Package signup drives a headless browser through the website's email
// signup form.
//
// Form fields are found with Locators: small strategies that look at the
// rendered page and either return a CSS selector for a matching element or
// report that nothing matched. A missing field is an ordinary outcome and turns
// into a skipped step, never an error. Nothing is retried.
package signup
